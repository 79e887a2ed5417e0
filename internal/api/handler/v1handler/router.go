package v1handler

import (
	"fortune/pkg/controller"
	"fortune/pkg/serrors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterOptions carry the per client rate limiters of the auth endpoints. A
// nil limiter disables limiting for its route.
type RouterOptions struct {
	RegisterLimiter *controller.RateLimiter
	LoginLimiter    *controller.RateLimiter
}

func limit(l *controller.RateLimiter) func(http.Handler) http.Handler {
	if l == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return l.Middleware
}

// Routes returns the v1 API. Paths are relative to the /v1 mount point.
func (h *Handler) Routes(sec *SecHandler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(r.Context(), w, serrors.KindOnly(serrors.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "method " + r.Method + " not allowed",
		})
	})

	r.Route("/auth", func(r chi.Router) {
		r.With(limit(opts.RegisterLimiter)).Post("/register", h.Register)
		r.With(limit(opts.LoginLimiter)).Post("/login", h.Login)
	})

	r.Route("/fortune", func(r chi.Router) {
		r.With(sec.Optional, h.identify(false)).Post("/draw", h.Draw)
		r.Get("/leaderboard", h.Leaderboard)
	})

	r.Route("/users", func(r chi.Router) {
		r.With(sec.Required, h.identify(true)).Get("/me", h.Me)
		r.Get("/{username}", h.PublicProfile)
		r.Get("/{username}/fortune-history", h.History)
	})

	return r
}
