package postgres

import (
	"errors"
	"fortune/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraints declared by the migrations.
const (
	fortunesUserDayConstraint  = "fortunes_user_day_unique"
	usersUsernameConstraint    = "users_username_unique"
	usersEmailConstraint       = "users_email_unique"
	usersDisplayNameConstraint = "users_display_name_unique"
)

// uniqueViolation returns the name of the violated constraint when err is a
// PostgreSQL unique violation.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}

	return pgErr.ConstraintName, true
}

// userDuplicate maps a unique violation on the users table to the colliding field.
func userDuplicate(constraint string) *storage.DuplicateError {
	switch constraint {
	case usersUsernameConstraint:
		return &storage.DuplicateError{Field: "username"}
	case usersEmailConstraint:
		return &storage.DuplicateError{Field: "email"}
	case usersDisplayNameConstraint:
		return &storage.DuplicateError{Field: "display_name"}
	default:
		return &storage.DuplicateError{}
	}
}
