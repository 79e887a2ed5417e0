package storage

import (
	"context"
	"fortune/pkg/domain"
	"time"
)

// UserStorage persists accounts.
type UserStorage interface {
	// StoreUser inserts a new user and returns it with generated fields filled.
	// A collision on username, email or display name yields a *DuplicateError.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user or nil when not found.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByUsername looks a user up case-insensitively and returns nil when not found.
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// TouchUser sets last_active_at to at.
	TouchUser(ctx context.Context, ID domain.UserID, at time.Time) error
}
