package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fortune/internal/api/handler/v1handler"
	"fortune/pkg/domain"
	"fortune/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(1*time.Hour))

	ctx, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.NoError(t, err)

	// verify user id stored in context
	v := ctx.Value(v1handler.UserIDKey)
	require.NotNil(t, v, "expected userID in context")
	got, ok := v.(domain.UserID)
	require.True(t, ok, "userID in context has wrong type: %T", v)
	require.Equal(t, domain.UserID(uid), got)

	iat, ok := ctx.Value(v1handler.IssuedAtKey).(time.Time)
	require.True(t, ok)
	require.Equal(t, now.Unix(), iat.Unix())
}

func TestHandleBearerAuth_InvalidSignature(t *testing.T) {
	// handler uses pub from key A, but token signed with key B
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	privOther, _ := genRSAKeys(t)
	now := time.Now()
	tkn := signJWTRS256(t, privOther, uuid.NewString(), now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_ExpiredToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	tkn := signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-1*time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_InvalidSubject(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	// non-UUID subject
	tkn := signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_WrongAlgorithm(t *testing.T) {
	// create handler with RSA public key, but sign token with HS256
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	_, err = sh.HandleBearerAuth(context.Background(), signed)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestHandleBearerAuth_Issuer(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM, Issuer: "fortune"})
	require.NoError(t, err)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(t, err)

	_, err = sh.HandleBearerAuth(context.Background(), signed)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	claims.Issuer = "fortune"
	signed, err = jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(t, err)

	_, err = sh.HandleBearerAuth(context.Background(), signed)
	require.NoError(t, err)
}

func TestHandleBearerAuth_MissingExpiry(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	claims := jwt.RegisteredClaims{
		Subject:  uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(t, err)

	_, err = sh.HandleBearerAuth(context.Background(), signed)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

// subjectEcho writes the verified subject, or "anonymous".
var subjectEcho = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	id, ok := v1handler.GetUserIDFromContext(r.Context())
	if !ok {
		_, _ = w.Write([]byte("anonymous"))

		return
	}
	_, _ = w.Write([]byte(id.String()))
})

func TestSecHandler_Optional(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	h := sh.Optional(subjectEcho)

	uid := uuid.New()
	now := time.Now()
	valid := signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))
	expired := signJWTRS256(t, priv, uid.String(), now.Add(-2*time.Hour), now.Add(-time.Hour))

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", "anonymous"},
		{"valid token", "Bearer " + valid, uid.String()},
		{"lower case scheme", "bearer " + valid, uid.String()},
		{"expired token", "Bearer " + expired, "anonymous"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "anonymous"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/fortune/draw", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestSecHandler_Required(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	h := sh.Required(subjectEcho)

	uid := uuid.New()
	now := time.Now()
	valid := signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, uid.String(), rec.Body.String())

	for _, header := range []string{"", "Bearer", "Bearer not.a.jwt"} {
		req = httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"could not validate credentials"}`, rec.Body.String())
	}
}
