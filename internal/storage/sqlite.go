package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// NewSQLiteStorage открывает хранилище в файле SQLite. Путь ":memory:" создает базу в памяти.
func NewSQLiteStorage(path string) (*RecordStorage, error) {
	if path == "" {
		path = "travel.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// одно соединение: база в памяти существует только внутри него, а SQLite все равно сериализует запись
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &RecordStorage{db: db, q: db, dialect: sqliteDialect}, nil
}
