package v1handler

import (
	"fortune/internal/fortune"
	"fortune/pkg/domain"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// UserProfile is the authenticated user's own view of their account.
type UserProfile struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	DisplayName      string     `json:"display_name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	Status           string     `json:"status"`
	RegistrationDate time.Time  `json:"registration_date"`
	LastActiveDate   *time.Time `json:"last_active_date"`

	TotalDraws    int64   `json:"total_draws"`
	HasDrawnToday bool    `json:"has_drawn_today"`
	TodaysFortune *string `json:"todays_fortune"`
}

// PublicUserProfile is what anyone may see of an account.
type PublicUserProfile struct {
	Username         string     `json:"username"`
	DisplayName      string     `json:"display_name"`
	Status           string     `json:"status"`
	RegistrationDate time.Time  `json:"registration_date"`
	LastActiveDate   *time.Time `json:"last_active_date"`

	TotalDraws    int64   `json:"total_draws"`
	HasDrawnToday bool    `json:"has_drawn_today"`
	TodaysFortune *string `json:"todays_fortune"`
}

type MeResponse struct {
	User       UserProfile `json:"user"`
	NextDrawAt *time.Time  `json:"next_draw_at,omitempty"`
}

// DomainUserToProfile renders user with its draw status. A nil today renders
// as a user who never drew.
func DomainUserToProfile(user *domain.User, today *fortune.Today) UserProfile {
	p := UserProfile{
		ID:               user.ID.String(),
		Username:         user.Username,
		DisplayName:      user.DisplayName,
		Email:            user.Email,
		Role:             string(user.Role),
		Status:           string(user.Status),
		RegistrationDate: user.CreatedAt.UTC(),
	}
	if !user.LastActiveAt.IsZero() {
		t := user.LastActiveAt.UTC()
		p.LastActiveDate = &t
	}
	if today != nil {
		p.TotalDraws = today.TotalDraws
		p.HasDrawnToday = today.HasDrawnToday
		if today.HasDrawnToday {
			v := string(today.TodaysFortune)
			p.TodaysFortune = &v
		}
	}

	return p
}

// Me returns the caller's profile and today's draw status.
func (h Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := GetUserFromContext(ctx)
	today, err := h.deps.Fortune.Today(ctx, user)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	res := MeResponse{User: DomainUserToProfile(user, today)}
	if today.NextDrawAt != nil {
		next := today.NextDrawAt.UTC()
		res.NextDrawAt = &next
	}

	writeJSON(ctx, w, http.StatusOK, res)
}

func DomainUserToPublicProfile(user *domain.User, today *fortune.Today) PublicUserProfile {
	p := DomainUserToProfile(user, today)

	return PublicUserProfile{
		Username:         p.Username,
		DisplayName:      p.DisplayName,
		Status:           p.Status,
		RegistrationDate: p.RegistrationDate,
		LastActiveDate:   p.LastActiveDate,
		TotalDraws:       p.TotalDraws,
		HasDrawnToday:    p.HasDrawnToday,
		TodaysFortune:    p.TodaysFortune,
	}
}

// PublicProfile returns a user's public profile and today's draw status.
func (h Handler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, today, err := h.deps.Fortune.Profile(ctx, chi.URLParam(r, "username"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainUserToPublicProfile(user, today))
}
