// Package fortune orchestrates daily draws, draw history and the leaderboard.
//
//go:generate mockgen -package mockfortune -source=interface.go -destination=mock/mockfortune.go *
package fortune

import (
	"context"
	"fortune/pkg/domain"
	"time"
)

// Today summarizes a user's standing in the current business day.
type Today struct {
	TotalDraws    int64
	HasDrawnToday bool
	// TodaysFortune is empty until the user has drawn.
	TodaysFortune domain.Outcome
	// NextDrawAt is set once the user has drawn and is the next reset instant.
	NextDrawAt *time.Time
}

type Service interface {
	// Draw returns today's fortune. A nil user gets a fresh fortune that is
	// never persisted. An active user gets the fortune claimed for the current
	// business day, claiming one first if needed. Inactive users are forbidden.
	Draw(ctx context.Context, user *domain.User) (domain.Outcome, error)
	// Leaderboard groups the current business day's draws by outcome.
	Leaderboard(ctx context.Context) ([]domain.LeaderboardGroup, error)
	// History returns the draws of username within the history window, oldest first.
	History(ctx context.Context, username string) ([]domain.DrawEntry, error)
	// Today reports the draw status of user for the current business day.
	Today(ctx context.Context, user *domain.User) (*Today, error)
	// Profile is the public view of username: the account and its draw status.
	// Viewing a profile is not activity of its owner.
	Profile(ctx context.Context, username string) (*domain.User, *Today, error)
}

// Board is the leaderboard read side.
type Board interface {
	Day(ctx context.Context, dayStart time.Time) ([]domain.LeaderboardGroup, error)
	Invalidate(ctx context.Context, dayStart time.Time)
}

// Activity records that a user did something.
type Activity interface {
	Touch(ctx context.Context, userID domain.UserID)
}
