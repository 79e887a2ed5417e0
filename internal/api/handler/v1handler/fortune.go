package v1handler

import (
	"fortune/pkg/domain"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type DrawResponse struct {
	Fortune domain.Outcome `json:"fortune"`
}

type HistoryItem struct {
	CreatedAt time.Time      `json:"created_at"`
	Value     domain.Outcome `json:"value"`
}

func DomainDrawEntriesToHistory(entries []domain.DrawEntry) []HistoryItem {
	out := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryItem{
			CreatedAt: e.CreatedAt.UTC(),
			Value:     e.Value,
		})
	}

	return out
}

// Draw hands out today's fortune. Anonymous callers get a fresh one every time.
func (h Handler) Draw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	outcome, err := h.deps.Fortune.Draw(ctx, GetUserFromContext(ctx))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DrawResponse{Fortune: outcome})
}

// Leaderboard lists who drew what in the current business day.
func (h Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groups, err := h.deps.Fortune.Leaderboard(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if groups == nil {
		groups = []domain.LeaderboardGroup{}
	}

	writeJSON(ctx, w, http.StatusOK, groups)
}

// History lists a user's draws over the history window, oldest first.
func (h Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entries, err := h.deps.Fortune.History(ctx, chi.URLParam(r, "username"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainDrawEntriesToHistory(entries))
}
