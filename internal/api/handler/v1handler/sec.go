package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"fortune/internal/config"
	"fortune/pkg/domain"
	"fortune/pkg/logger"
	"fortune/pkg/serrors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type ctxKey string

const (
	// UserIDKey holds the domain.UserID of a verified token.
	UserIDKey ctxKey = "userID"
	// IssuedAtKey holds the iat claim of a verified token.
	IssuedAtKey ctxKey = "issuedAt"
	// UserKey holds the *domain.User the token resolved to.
	UserKey ctxKey = "user"
)

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	PublicKey string
	// Issuer is required as the iss claim when not empty.
	Issuer string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
		Issuer:    cfg.JWT.Issuer,
	}
}

// SecHandler verifies RS256 bearer tokens.
type SecHandler struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}

	return &SecHandler{
		key:    key,
		parser: jwt.NewParser(parserOpts...),
	}, nil
}

// HandleBearerAuth verifies token and stores its subject and issue time in the
// returned context.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "could not validate credentials")
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "could not validate credentials")
	}

	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, IssuedAtKey, issuedAt)

	return ctx, nil
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
// ok is false when the header is absent.
func bearerToken(r *http.Request) (string, bool, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false, nil
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", true, serrors.With(serrors.ErrUnauthorized, "could not validate credentials")
	}

	return strings.TrimSpace(token), true, nil
}

// verify runs HandleBearerAuth on the request's token, if any.
func (s SecHandler) verify(r *http.Request) (context.Context, bool, error) {
	token, present, err := bearerToken(r)
	if !present || err != nil {
		return r.Context(), present, err
	}

	ctx, err := s.HandleBearerAuth(r.Context(), token)

	return ctx, true, err
}

// Optional lets anonymous requests through. Requests carrying a token that
// does not verify are treated as anonymous as well.
func (s SecHandler) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, present, err := s.verify(r)
		if err != nil {
			logger.Debug(r.Context(), "ignoring invalid bearer token", zap.Error(err))
			next.ServeHTTP(w, r)

			return
		}
		if present {
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

// Required rejects requests without a valid token with 401.
func (s SecHandler) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, present, err := s.verify(r)
		if err == nil && !present {
			err = serrors.With(serrors.ErrUnauthorized, "could not validate credentials")
		}
		if err != nil {
			writeError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the subject of the verified token, if any.
func GetUserIDFromContext(ctx context.Context) (domain.UserID, bool) {
	id, ok := ctx.Value(UserIDKey).(domain.UserID)

	return id, ok
}

// GetUserFromContext returns the user the request is authenticated as, or nil.
func GetUserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(UserKey).(*domain.User)

	return user
}

// identify resolves the verified subject into a user. With required unset a
// subject that no longer resolves downgrades the request to anonymous.
func (h Handler) identify(required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			userID, ok := GetUserIDFromContext(ctx)
			if !ok {
				next.ServeHTTP(w, r)

				return
			}

			issuedAt, _ := ctx.Value(IssuedAtKey).(time.Time)
			user, err := h.deps.Account.Identify(ctx, userID, issuedAt)
			if err != nil {
				if required || !isUnauthorized(err) {
					writeError(ctx, w, err)

					return
				}
				logger.Debug(ctx, "token subject rejected, continuing anonymously", zap.Error(err))
				next.ServeHTTP(w, r)

				return
			}

			ctx = logger.WithFields(ctx, zap.String("userId", user.ID.String()))
			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, UserKey, user)))
		})
	}
}

func isUnauthorized(err error) bool {
	return serrors.KindOf(err) == serrors.ErrUnauthorized
}
