// Package sqlconfig holds helpers shared by the table packages: Postgres
// error translation and common column handling.
package sqlconfig

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/carson-networks/prefin/internal/apperr"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation reports whether err is a Postgres unique violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// ConstraintName returns the violated constraint of a Postgres error, if any.
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

// TranslateError maps driver errors onto the apperr taxonomy. what names the
// record for messages, e.g. "budget".
func TranslateError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return apperr.NotFound(what)
	case IsUniqueViolation(err):
		return apperr.Conflict(what+" already exists", err)
	}
	return fmt.Errorf("%s: %w", what, err)
}
