package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// ParseUserID parses the canonical textual form of a user ID.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err //nolint: wrapcheck
	}

	return UserID(id), nil
}

// UserStatus gates whether a user may write to the draw ledger.
type UserStatus string

const (
	// UserStatusActive users may draw and have their draws persisted.
	UserStatusActive UserStatus = "active"
	// UserStatusInactive users have read-only access.
	UserStatusInactive UserStatus = "inactive"
)

// UserRole is the authorization role of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is a registered account.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Username is the lower-cased login name. It is unique.
	Username string `json:"username"`
	// DisplayName is the name shown to other users. It is unique case-insensitively.
	DisplayName string `json:"displayName"`
	// Email is the lower-cased email address. It is unique.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	Role   UserRole   `json:"role"`
	Status UserStatus `json:"status"`

	// PasswordChangedAt invalidates every token issued before it.
	PasswordChangedAt time.Time `json:"-"`
	// LastActiveAt is refreshed asynchronously by the activity worker.
	LastActiveAt time.Time `json:"lastActiveAt"`
	// CreatedAt is the registration time.
	CreatedAt time.Time `json:"createdAt"`
}

// Active reports whether the user may persist draws.
func (u *User) Active() bool {
	return u != nil && u.Status == UserStatusActive
}
