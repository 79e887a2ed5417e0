// Package account registers users, checks their credentials and issues the
// access tokens the API authenticates with.
//
//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
package account

import (
	"context"
	"fortune/pkg/domain"
	"time"
)

// Registration is the input of Service.Register.
type Registration struct {
	Username string
	Email    string
	Password string
}

// Session is returned on successful registration or login.
type Session struct {
	AccessToken string
	TokenType   string
	User        *domain.User
}

type Service interface {
	// Register creates an active user and signs a token for it. Collisions on
	// username, email or display name are bad requests naming the field.
	Register(ctx context.Context, registration Registration) (*Session, error)
	// Login checks the credentials and signs a token.
	Login(ctx context.Context, username, password string) (*Session, error)
	// Identify resolves the subject of a verified token. Tokens issued before
	// the user's last password change are rejected.
	Identify(ctx context.Context, userID domain.UserID, issuedAt time.Time) (*domain.User, error)
}

// Activity records that a user did something.
type Activity interface {
	Touch(ctx context.Context, userID domain.UserID)
}
