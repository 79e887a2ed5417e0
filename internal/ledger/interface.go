// Package ledger owns the one-draw-per-user-per-business-day record.
//
//go:generate mockgen -package mockledger -source=interface.go -destination=mock/mockledger.go *
package ledger

import (
	"context"
	"fortune/pkg/domain"
	"time"
)

// Ledger answers whether a user has drawn in a business day and atomically
// claims the draw. Concurrent claims for the same day resolve to a single entry.
type Ledger interface {
	// HasDrawn returns the entry for the business day starting at dayStart, or nil.
	HasDrawn(ctx context.Context, userID domain.UserID, dayStart time.Time) (*domain.DrawEntry, error)
	// Claim records value as the user's draw for the business day. When another
	// request won the day first, the winning entry is returned with claimed=false.
	Claim(ctx context.Context,
		userID domain.UserID,
		dayStart time.Time,
		value domain.Outcome,
		createdAt time.Time) (*domain.DrawEntry, bool, error)
	// FetchWindow returns the user's entries created in [start, end), oldest first.
	FetchWindow(ctx context.Context, userID domain.UserID, start, end time.Time) ([]domain.DrawEntry, error)
	// Count returns the number of entries the user has ever claimed.
	Count(ctx context.Context, userID domain.UserID) (int64, error)
}
