package ledger

import (
	"context"
	"errors"
	"fortune/pkg/domain"
	"fortune/pkg/serrors"
	"fortune/pkg/storage"
	"sort"
	"time"
)

// ledger is the storage backed Ledger.
type ledger struct {
	storage storage.LedgerStorage
}

func (l ledger) HasDrawn(ctx context.Context, userID domain.UserID, dayStart time.Time) (*domain.DrawEntry, error) {
	entry, err := l.storage.DrawByDay(ctx, userID, dayStart)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not look up draw")
	}

	return entry, nil
}

// Claim never checks before writing. The unique key on (user, day) decides the
// winner and the loser re-reads the stored entry.
func (l ledger) Claim(ctx context.Context,
	userID domain.UserID,
	dayStart time.Time,
	value domain.Outcome,
	createdAt time.Time) (*domain.DrawEntry, bool, error) {
	if !value.Valid() {
		return nil, false, serrors.With(serrors.ErrInternal, "invalid outcome %q", value)
	}

	entry, err := l.storage.InsertDraw(ctx, domain.DrawEntry{
		UserID:           userID,
		BusinessDayStart: dayStart,
		Value:            value,
		CreatedAt:        createdAt,
	})
	if err == nil {
		return entry, true, nil
	}
	if !errors.Is(err, storage.ErrAlreadyClaimed) {
		return nil, false, serrors.Wrap(serrors.ErrUnavailable, err, "could not claim draw")
	}

	winner, err := l.storage.DrawByDay(ctx, userID, dayStart)
	if err != nil {
		return nil, false, serrors.Wrap(serrors.ErrUnavailable, err, "could not read claimed draw")
	}
	if winner == nil {
		// the winning row vanished between the insert and the read
		return nil, false, serrors.With(serrors.ErrUnavailable, "claimed draw not found")
	}

	return winner, false, nil
}

func (l ledger) FetchWindow(ctx context.Context,
	userID domain.UserID,
	start, end time.Time) ([]domain.DrawEntry, error) {
	if !start.Before(end) {
		return nil, serrors.With(serrors.ErrBadRequest, "empty history window")
	}

	entries, err := l.storage.DrawsInWindow(ctx, userID, start, end)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not fetch draws")
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}

func (l ledger) Count(ctx context.Context, userID domain.UserID) (int64, error) {
	n, err := l.storage.CountDraws(ctx, userID)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrUnavailable, err, "could not count draws")
	}

	return n, nil
}

// New creates a Ledger over the given storage.
func New(storage storage.LedgerStorage) Ledger {
	return &ledger{storage: storage}
}
