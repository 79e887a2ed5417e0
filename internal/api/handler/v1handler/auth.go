package v1handler

import (
	"fortune/internal/account"
	"fortune/internal/fortune"
	"fortune/pkg/serrors"
	"mime"
	"net/http"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserProfile `json:"user"`
}

// Register creates an account and signs the caller in.
func (h Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	session, err := h.deps.Account.Register(ctx, account.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, TokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		User:        DomainUserToProfile(session.User, &fortune.Today{}),
	})
}

// Login exchanges credentials for an access token. The body is either an
// OAuth2 password form or a JSON object.
func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := parseLogin(w, r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	session, err := h.deps.Account.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	today, err := h.deps.Fortune.Today(ctx, session.User)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, TokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		User:        DomainUserToProfile(session.User, today),
	})
}

func parseLogin(w http.ResponseWriter, r *http.Request) (LoginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		var req LoginRequest
		err := decodeJSON(r, &req)

		return req, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return LoginRequest{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid form body")
	}

	return LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, nil
}
