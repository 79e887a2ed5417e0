package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fortune/pkg/domain"
	"fortune/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_InsertDraw_SecondClaimRejected(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := storeTestUser(t, pg, "alice")
	day := time.Date(2025, 3, 1, 16, 0, 0, 0, time.UTC)

	first, err := pg.InsertDraw(ctx, domain.DrawEntry{
		UserID:           user.ID,
		BusinessDayStart: day,
		Value:            domain.OutcomeDaikichi,
		CreatedAt:        day.Add(time.Minute),
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	require.Equal(t, domain.OutcomeDaikichi, first.Value)
	require.True(t, first.BusinessDayStart.Equal(day))

	_, err = pg.InsertDraw(ctx, domain.DrawEntry{
		UserID:           user.ID,
		BusinessDayStart: day,
		Value:            domain.OutcomeKyo,
		CreatedAt:        day.Add(2 * time.Minute),
	})
	require.ErrorIs(t, err, storage.ErrAlreadyClaimed)

	got, err := pg.DrawByDay(ctx, user.ID, day)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.OutcomeDaikichi, got.Value)

	none, err := pg.DrawByDay(ctx, user.ID, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestPgSQL_InsertDraw_ConcurrentClaimsKeepOneRow(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := storeTestUser(t, pg, "racer")
	day := time.Date(2025, 3, 1, 16, 0, 0, 0, time.UTC)
	outcomes := domain.Outcomes()

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		won     int
		claimed int
	)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := pg.InsertDraw(ctx, domain.DrawEntry{
				UserID:           user.ID,
				BusinessDayStart: day,
				Value:            outcomes[i%len(outcomes)],
				CreatedAt:        day.Add(time.Duration(i) * time.Second),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won++
			case errors.Is(err, storage.ErrAlreadyClaimed):
				claimed++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, won)
	require.Equal(t, workers-1, claimed)

	count, err := pg.CountDraws(ctx, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestPgSQL_DrawsInWindow(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := storeTestUser(t, pg, "history")
	other := storeTestUser(t, pg, "other")
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, v := range []domain.Outcome{domain.OutcomeKichi, domain.OutcomeKyo, domain.OutcomeYukichi} {
		day := base.Add(time.Duration(i) * 24 * time.Hour)
		_, err := pg.InsertDraw(ctx, domain.DrawEntry{
			UserID:           user.ID,
			BusinessDayStart: day,
			Value:            v,
			CreatedAt:        day.Add(time.Hour),
		})
		require.NoError(t, err)
	}
	_, err := pg.InsertDraw(ctx, domain.DrawEntry{
		UserID:           other.ID,
		BusinessDayStart: base,
		Value:            domain.OutcomeDaikyo,
		CreatedAt:        base.Add(time.Hour),
	})
	require.NoError(t, err)

	entries, err := pg.DrawsInWindow(ctx, user.ID, base.Add(24*time.Hour+time.Hour), base.Add(72*time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, domain.OutcomeKyo, entries[0].Value)
	require.Equal(t, domain.OutcomeYukichi, entries[1].Value)

	all, err := pg.DrawsInWindow(ctx, user.ID, base, base.Add(365*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, all, 3)

	count, err := pg.CountDraws(ctx, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}

func TestPgSQL_LeaderboardEntries(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	day := time.Date(2025, 3, 1, 16, 0, 0, 0, time.UTC)

	a := storeTestUser(t, pg, "a")
	b := storeTestUser(t, pg, "b")
	c := storeTestUser(t, pg, "c")

	for i, tc := range []struct {
		user  *domain.User
		value domain.Outcome
		day   time.Time
	}{
		{a, domain.OutcomeKichi, day},
		{b, domain.OutcomeKichi, day},
		{c, domain.OutcomeKyo, day},
		{c, domain.OutcomeYukichi, day.Add(-24 * time.Hour)},
	} {
		_, err := pg.InsertDraw(ctx, domain.DrawEntry{
			UserID:           tc.user.ID,
			BusinessDayStart: tc.day,
			Value:            tc.value,
			CreatedAt:        day.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := pg.LeaderboardEntries(ctx, day)
	require.NoError(t, err)
	require.Equal(t, []domain.LeaderboardEntry{
		{UserID: a.ID, Username: "a", Value: domain.OutcomeKichi},
		{UserID: b.ID, Username: "b", Value: domain.OutcomeKichi},
		{UserID: c.ID, Username: "c", Value: domain.OutcomeKyo},
	}, entries)

	empty, err := pg.LeaderboardEntries(ctx, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Empty(t, empty)
}
