package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicate возвращается, когда вставка нарушает ограничение уникальности
var ErrDuplicate = errors.New("record already exists")

// pqUniqueViolation - код SQLSTATE unique_violation
const pqUniqueViolation = "23505"

// insertError оборачивает ошибку вставки, помечая нарушения уникальности как ErrDuplicate.
func insertError(kind string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("failed to insert %s: %w: %w", kind, ErrDuplicate, err)
	}
	return fmt.Errorf("failed to insert %s: %w", kind, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			// без расширенных кодов остается только текст
			return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
		}
	}
	return false
}
