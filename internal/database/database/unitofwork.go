package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// SaveResult is the outcome of an atomic save of a single tracked row.
type SaveResult int

const (
	// SaveApplied means the row was written.
	SaveApplied SaveResult = iota
	// SaveConflict means no row matched the write: it was removed or no
	// longer satisfied the write condition when the statement ran.
	SaveConflict
)

// String returns a readable name for logs.
func (r SaveResult) String() string {
	if r == SaveConflict {
		return "conflict"
	}
	return "applied"
}

// ResultOf converts an executed gorm statement into a SaveResult.
// Statement errors are returned unchanged.
func ResultOf(tx *gorm.DB) (SaveResult, error) {
	if tx.Error != nil {
		return SaveConflict, tx.Error
	}
	if tx.RowsAffected == 0 {
		return SaveConflict, nil
	}
	return SaveApplied, nil
}

// IsUniqueViolation reports whether err was raised by a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite reports constraint failures only through the message.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
