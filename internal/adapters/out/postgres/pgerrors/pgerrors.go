// Package pgerrors translates store constraint violations into the errs family.
package pgerrors

import (
	"errors"
	"fmt"
	"strings"

	"eshift/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// Translate turns foreign key and unique violations into a ConflictError for paramName.
// Other errors are returned unchanged.
func Translate(err error, paramName string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolation:
			return errs.NewConflictErrorWithCause(paramName, referenceReason, withConstraint(pgErr.ConstraintName, err))
		case uniqueViolation:
			return errs.NewConflictErrorWithCause(paramName, "already exists", err)
		}
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated), isSQLite(err, "FOREIGN KEY constraint failed"):
		return errs.NewConflictErrorWithCause(paramName, referenceReason, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), isSQLite(err, "UNIQUE constraint failed"):
		return errs.NewConflictErrorWithCause(paramName, "already exists", err)
	}

	return err
}

const referenceReason = "referenced row is missing or still in use"

// withConstraint keeps the constraint name in the cause, which is logged but never shown to clients.
func withConstraint(constraint string, err error) error {
	if constraint == "" {
		return err
	}
	return fmt.Errorf("constraint %s: %w", constraint, err)
}

// SQLite reports constraint violations only through the message text.
func isSQLite(err error, fragment string) bool {
	return strings.Contains(err.Error(), fragment)
}
