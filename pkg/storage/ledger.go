package storage

import (
	"context"
	"fortune/pkg/domain"
	"time"
)

// LedgerStorage persists draw ledger entries. Implementations must declare
// (user_id, business_day_start) as a compound unique key so that InsertDraw is
// race free without any application level locking.
type LedgerStorage interface {
	// InsertDraw creates the entry and returns it as stored. When an entry for the
	// same user and business day already exists, ErrAlreadyClaimed is returned and
	// nothing is written.
	InsertDraw(ctx context.Context, entry domain.DrawEntry) (*domain.DrawEntry, error)
	// DrawByDay returns the entry of the user for the business day starting at
	// dayStart, or nil when the user has not drawn.
	DrawByDay(ctx context.Context, userID domain.UserID, dayStart time.Time) (*domain.DrawEntry, error)
	// DrawsInWindow returns every entry of the user whose created_at lies in
	// [start, end). No particular order is guaranteed.
	DrawsInWindow(ctx context.Context, userID domain.UserID, start, end time.Time) ([]domain.DrawEntry, error)
	// CountDraws returns how many entries the user has in total.
	CountDraws(ctx context.Context, userID domain.UserID) (int64, error)
	// LeaderboardEntries returns every entry of the business day starting at
	// dayStart joined with its owner's username.
	LeaderboardEntries(ctx context.Context, dayStart time.Time) ([]domain.LeaderboardEntry, error)
}
