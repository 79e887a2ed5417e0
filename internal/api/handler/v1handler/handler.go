package v1handler

import (
	"context"
	"errors"
	"fortune/internal/account"
	"fortune/internal/fortune"
	"fortune/pkg/logger"
	"fortune/pkg/serrors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies. Every v1 payload is a handful of short strings.
const maxBodyBytes = 64 << 10

// Deps are the services behind the v1 API.
type Deps struct {
	Fortune fortune.Service
	Account account.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var kindStatus = map[serrors.Kind]int{
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrInternal:     http.StatusInternalServerError,
	serrors.ErrTimeout:      http.StatusGatewayTimeout,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
	serrors.ErrRateLimited:  http.StatusTooManyRequests,
}

// NewError maps err to a status code and a client safe body. Internal and
// unavailable errors are logged with their full chain.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	kind, msg := serrors.Public(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(ctx, "request failed", zap.Error(err), zap.String("kind", kind.Error()))
	case kind == serrors.ErrUnauthorized:
		logger.Debug(ctx, "request unauthorized", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := newError(ctx, err)
	if res.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeJSON(ctx, w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}

// decodeJSON decodes a single JSON object from the request body into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is empty")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
