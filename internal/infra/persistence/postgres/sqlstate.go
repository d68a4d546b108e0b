package postgres

import (
	"pawpost/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL condition codes the repositories translate into domain errors
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
	sqlStateInvalidTextEncoding = "22P02"
)

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// rejectedRow reports whether the row failed a column constraint
func rejectedRow(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	switch sqlState(err) {
	case sqlStateNotNullViolation, sqlStateCheckViolation:
		return true
	default:
		return false
	}
}

// malformedKey reports whether a key literal could not be parsed, e.g. a bad uuid
func malformedKey(err error) bool {
	return sqlState(err) == sqlStateInvalidTextEncoding
}
