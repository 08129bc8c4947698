package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
)

// ErrNotFound возвращается, когда запись с указанным идентификатором отсутствует
var ErrNotFound = errors.New("record not found")

// querier объединяет *sql.DB и *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// dialect описывает различия между PostgreSQL и SQLite
type dialect struct {
	name     string
	idColumn string
	numbered bool // плейсхолдеры вида $1 вместо ?
}

var (
	postgresDialect = dialect{name: "postgres", idColumn: "BIGSERIAL PRIMARY KEY", numbered: true}
	sqliteDialect   = dialect{name: "sqlite", idColumn: "INTEGER PRIMARY KEY AUTOINCREMENT"}
)

// rebind заменяет плейсхолдеры ? на нумерованные для PostgreSQL
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RecordStorage хранит записи транспортной сети в PostgreSQL или SQLite.
type RecordStorage struct {
	db      *sql.DB // Подключение к базе данных
	q       querier // db либо открытая транзакция
	dialect dialect
}

// NewPostgresStorage создает новый экземпляр RecordStorage и устанавливает подключение к PostgreSQL.
// DSN должен быть в формате: "host=... port=... user=... password=... dbname=... sslmode=..."
func NewPostgresStorage(dsn string) (*RecordStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &RecordStorage{db: db, q: db, dialect: postgresDialect}, nil
}

// Open открывает хранилище записей по имени драйвера: "postgres" (source задает DSN)
// или "sqlite" (source задает путь к файлу).
func Open(driver, source string) (*RecordStorage, error) {
	switch driver {
	case postgresDialect.name:
		return NewPostgresStorage(source)
	case sqliteDialect.name:
		return NewSQLiteStorage(source)
	}
	return nil, fmt.Errorf("unsupported storage driver %q", driver)
}

// Close закрывает подключение к базе данных.
func (rs *RecordStorage) Close() error {
	return rs.db.Close()
}

// Dialect возвращает имя используемой СУБД
func (rs *RecordStorage) Dialect() string {
	return rs.dialect.name
}

// Ping проверяет доступность базы данных.
func (rs *RecordStorage) Ping(ctx context.Context) error {
	return rs.db.PingContext(ctx)
}

// RunInTx выполняет fn в одной транзакции. Хранилище, переданное в fn, пишет через транзакцию.
// Если fn возвращает ошибку, транзакция откатывается.
func (rs *RecordStorage) RunInTx(ctx context.Context, fn func(tx *RecordStorage) error) error {
	tx, err := rs.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&RecordStorage{db: rs.db, q: tx, dialect: rs.dialect}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (rs *RecordStorage) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return rs.q.ExecContext(ctx, rs.dialect.rebind(query), args...)
}

func (rs *RecordStorage) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return rs.q.QueryContext(ctx, rs.dialect.rebind(query), args...)
}

func (rs *RecordStorage) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return rs.q.QueryRowContext(ctx, rs.dialect.rebind(query), args...)
}
