package postgres

import (
	"context"
	"fmt"
	"fortune/pkg/domain"
	"fortune/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	fortunesTable = "fortunes"
)

// InsertDraw inserts a ledger entry. The (user_id, business_day_start) unique
// constraint decides concurrent claims: the loser gets storage.ErrAlreadyClaimed.
// Do not call this inside a transaction you intend to keep using, a unique
// violation aborts the surrounding transaction.
func (p *PgSQL) InsertDraw(ctx context.Context, entry domain.DrawEntry) (*domain.DrawEntry, error) {
	var row PgDrawEntry
	row.FromDomain(entry)

	var result PgDrawEntry
	found, err := p.Builder.Insert(fortunesTable).
		Rows(row).
		Returning(&PgDrawEntry{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == fortunesUserDayConstraint {
			return nil, storage.ErrAlreadyClaimed
		}

		return nil, fmt.Errorf("could not insert draw into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not insert draw into pg: no row returned")
	}

	out := result.ToDomain()

	return &out, nil
}

// DrawByDay returns the entry for the user and business day, or nil.
func (p *PgSQL) DrawByDay(ctx context.Context, userID domain.UserID, dayStart time.Time) (*domain.DrawEntry, error) {
	var row PgDrawEntry
	found, err := p.Builder.From(fortunesTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("business_day_start").Eq(dayStart.UTC()),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch draw by day from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	out := row.ToDomain()

	return &out, nil
}

// DrawsInWindow returns the entries of a user created in [start, end).
func (p *PgSQL) DrawsInWindow(ctx context.Context,
	userID domain.UserID,
	start, end time.Time) ([]domain.DrawEntry, error) {
	var rows []PgDrawEntry
	if err := p.Builder.From(fortunesTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("created_at").Gte(start.UTC()),
			goqu.I("created_at").Lt(end.UTC()),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch draws in window from pg: %w", err)
	}

	return pgDrawEntriesToDomain(rows), nil
}

// CountDraws returns the total number of entries of a user.
func (p *PgSQL) CountDraws(ctx context.Context, userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(fortunesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count draws in pg: %w", err)
	}

	return count, nil
}

// LeaderboardEntries returns the entries of a business day joined with the
// owner's username, earliest draw first.
func (p *PgSQL) LeaderboardEntries(ctx context.Context, dayStart time.Time) ([]domain.LeaderboardEntry, error) {
	var rows []PgLeaderboardEntry
	if err := p.Builder.From(goqu.T(fortunesTable).As("f")).
		InnerJoin(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("f.user_id")))).
		Select(
			goqu.I("f.user_id").As("user_id"),
			goqu.I("u.username").As("username"),
			goqu.I("f.value").As("value"),
		).
		Where(goqu.I("f.business_day_start").Eq(dayStart.UTC())).
		Order(goqu.I("f.created_at").Asc(), goqu.I("f.id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch leaderboard entries from pg: %w", err)
	}

	out := make([]domain.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.LeaderboardEntry{
			UserID:   domain.UserID(r.UserID),
			Username: r.Username,
			Value:    domain.Outcome(r.Value),
		})
	}

	return out, nil
}
