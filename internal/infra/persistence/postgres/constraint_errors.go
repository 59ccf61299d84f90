package postgres

import (
	"strings"

	"timesheet/internal/domain/repository"
	"timesheet/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// GORM's TranslateError maps unique violations to ErrDuplicatedKey
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}

	return false
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}

	return false
}

// translateTeamMemberConflict attributes a unique violation on the
// team_members table to the column that caused it. When the driver does
// not surface a constraint name, the generic conflict sentinel is
// returned so callers can still treat the write as a duplicate.
func translateTeamMemberConflict(err error) error {
	if !isUniqueConstraintViolation(err) {
		return err
	}

	name := constraintName(err)
	switch {
	case strings.Contains(name, "username"):
		return repository.ErrUsernameConflict
	case strings.Contains(name, "email"):
		return repository.ErrEmailConflict
	default:
		return repository.ErrUniqueConflict
	}
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.ToLower(pgErr.ConstraintName)
	}

	// Fallback: the translated GORM error keeps the original message,
	// which names the violated index.
	return strings.ToLower(err.Error())
}
