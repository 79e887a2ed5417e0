package account

import (
	"context"
	"errors"
	"fmt"
	"fortune/pkg/domain"
	"fortune/pkg/logger"
	"fortune/pkg/serrors"
	"fortune/pkg/storage"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 6
)

// Options configure password hashing and the clock.
type Options struct {
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

type service struct {
	users    storage.UserStorage
	signer   *Signer
	activity Activity
	options  Options

	// dummyHash is compared against when the username is unknown so that a
	// missing user costs as much as a wrong password.
	dummyHash []byte
}

func (s *service) now() time.Time {
	if s.options.Now != nil {
		return s.options.Now()
	}

	return time.Now()
}

func validate(r Registration) error {
	n := utf8.RuneCountInString(r.Username)
	if n < minUsernameLength || n > maxUsernameLength {
		return serrors.With(serrors.ErrBadRequest,
			"username must be between %d and %d characters", minUsernameLength, maxUsernameLength)
	}
	if strings.TrimSpace(r.Username) != r.Username {
		return serrors.With(serrors.ErrBadRequest, "username must not start or end with spaces")
	}
	if addr, err := mail.ParseAddress(r.Email); err != nil || addr.Address != r.Email {
		return serrors.With(serrors.ErrBadRequest, "invalid email")
	}
	if utf8.RuneCountInString(r.Password) < minPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at least %d characters", minPasswordLength)
	}

	return nil
}

func (s *service) Register(ctx context.Context, r Registration) (*Session, error) {
	if err := validate(r); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), s.options.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid password")
		}

		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	// tokens carry iat in whole seconds, a sub-second password_changed_at would
	// invalidate the token issued below
	now := s.now().UTC().Truncate(time.Second)
	user, err := s.users.StoreUser(ctx, domain.User{
		Username:          strings.ToLower(r.Username),
		DisplayName:       r.Username,
		Email:             strings.ToLower(r.Email),
		PasswordHash:      string(hash),
		Role:              domain.UserRoleUser,
		Status:            domain.UserStatusActive,
		PasswordChangedAt: now,
		LastActiveAt:      now,
	})
	if err != nil {
		var dup *storage.DuplicateError
		if errors.As(err, &dup) {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "%s already exists", duplicateSubject(dup.Field))
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not store user")
	}

	logger.Info(ctx, "user registered", zap.Stringer("userID", user.ID))

	return s.session(user, now)
}

func duplicateSubject(field string) string {
	switch field {
	case "username":
		return "username"
	case "email":
		return "email"
	case "display_name":
		return "display name"
	default:
		return "account"
	}
}

func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.UserByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not look up user")
	}

	hash := s.dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "incorrect username or password")
	}

	s.activity.Touch(ctx, user.ID)

	return s.session(user, s.now())
}

func (s *service) Identify(ctx context.Context, userID domain.UserID, issuedAt time.Time) (*domain.User, error) {
	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not look up user")
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "unknown user")
	}
	if issuedAt.Before(user.PasswordChangedAt.Truncate(time.Second)) {
		return nil, serrors.With(serrors.ErrUnauthorized, "token was issued before the last password change")
	}

	return user, nil
}

func (s *service) session(user *domain.User, now time.Time) (*Session, error) {
	token, err := s.signer.Sign(user.ID, now)
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return &Session{AccessToken: token, TokenType: TokenType, User: user}, nil
}

type nopActivity struct{}

func (nopActivity) Touch(context.Context, domain.UserID) {}

// New creates a Service. A nil activity disables activity tracking.
func New(users storage.UserStorage, signer *Signer, activity Activity, options Options) (Service, error) {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}
	if activity == nil {
		activity = nopActivity{}
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("not a real password"), options.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not prepare password hashing: %w", err)
	}

	return &service{
		users:     users,
		signer:    signer,
		activity:  activity,
		options:   options,
		dummyHash: dummy,
	}, nil
}
