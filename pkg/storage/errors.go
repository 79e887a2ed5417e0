package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyClaimed is returned when a draw already exists for the same user
	// and business day. It is produced by the storage uniqueness constraint, never
	// by a read-before-write check.
	ErrAlreadyClaimed = errors.New("draw already claimed for business day")
	// ErrDuplicate is matched by every DuplicateError.
	ErrDuplicate = errors.New("duplicate value")
)

// DuplicateError reports that a write collided with a unique constraint other
// than the draw ledger key. Field names the colliding attribute.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return ErrDuplicate.Error()
	}

	return "duplicate " + e.Field
}

// Is makes errors.Is(err, ErrDuplicate) match any DuplicateError.
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate } //nolint: errorlint
