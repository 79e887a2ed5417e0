package account

import (
	"crypto/rsa"
	"fmt"
	"fortune/pkg/domain"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the scheme clients put in front of the access token.
const TokenType = "bearer"

// Signer issues RS256 access tokens.
type Signer struct {
	key    *rsa.PrivateKey
	ttl    time.Duration
	issuer string
}

// NewSigner parses the PEM encoded private key.
func NewSigner(privateKeyPEM string, ttl time.Duration, issuer string) (*Signer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &Signer{key: key, ttl: ttl, issuer: issuer}, nil
}

// Sign returns a token for subject issued at now. iat has second resolution.
func (s *Signer) Sign(subject domain.UserID, now time.Time) (string, error) {
	now = now.UTC().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}
