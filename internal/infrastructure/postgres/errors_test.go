package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolationEmailConstraint(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "citizens_email_unique"}
	require.True(t, isUniqueViolation(err, "email"))
}

func TestIsUniqueViolationWrapped(t *testing.T) {
	err := fmt.Errorf("insert citizen: %w", &pgconn.PgError{Code: "23505", ConstraintName: "partners_email_key"})
	require.True(t, isUniqueViolation(err, "email"))
}

func TestIsUniqueViolationOtherConstraint(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "citizens_pkey"}
	require.False(t, isUniqueViolation(err, "email"))
}

func TestIsUniqueViolationOtherCode(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "citizens_email_unique"}
	require.False(t, isUniqueViolation(err, "email"))
}

func TestIsUniqueViolationPlainError(t *testing.T) {
	require.False(t, isUniqueViolation(errors.New("connection refused"), "email"))
}
