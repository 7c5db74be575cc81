package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE Postgres reports for unique-index
// conflicts.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation
// involving the given column. This is the only place that inspects raw
// driver error internals; callers work with repository.ConflictError.
func isUniqueViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != uniqueViolation {
		return false
	}
	return strings.Contains(pgErr.ConstraintName, column)
}
