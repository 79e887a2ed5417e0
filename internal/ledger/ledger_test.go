package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fortune/internal/ledger"
	"fortune/pkg/domain"
	"fortune/pkg/serrors"
	"fortune/pkg/storage"
	mockstorage "fortune/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	dayStart = time.Date(2025, 3, 1, 16, 0, 0, 0, time.UTC)
	userID   = domain.UserID(uuid.MustParse("5a4b8f0e-8d36-4b0f-9d43-0b1c2d3e4f50"))
)

func newTestLedger(t *testing.T) (*mockstorage.MockAllStorage, ledger.Ledger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)

	return st, ledger.New(st)
}

func TestLedger_Claim_Inserted(t *testing.T) {
	st, l := newTestLedger(t)
	createdAt := dayStart.Add(time.Hour)

	st.EXPECT().InsertDraw(gomock.Any(), domain.DrawEntry{
		UserID:           userID,
		BusinessDayStart: dayStart,
		Value:            domain.OutcomeChukichi,
		CreatedAt:        createdAt,
	}).DoAndReturn(func(_ context.Context, e domain.DrawEntry) (*domain.DrawEntry, error) {
		e.ID = 1

		return &e, nil
	})

	entry, claimed, err := l.Claim(context.Background(), userID, dayStart, domain.OutcomeChukichi, createdAt)
	require.NoError(t, err)
	require.True(t, claimed)
	require.Equal(t, int64(1), entry.ID)
	require.Equal(t, domain.OutcomeChukichi, entry.Value)
}

func TestLedger_Claim_LostRaceReturnsWinner(t *testing.T) {
	st, l := newTestLedger(t)
	winner := &domain.DrawEntry{
		ID:               7,
		UserID:           userID,
		BusinessDayStart: dayStart,
		Value:            domain.OutcomeDaikyo,
		CreatedAt:        dayStart.Add(time.Minute),
	}

	gomock.InOrder(
		st.EXPECT().InsertDraw(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAlreadyClaimed),
		st.EXPECT().DrawByDay(gomock.Any(), userID, dayStart).Return(winner, nil),
	)

	entry, claimed, err := l.Claim(context.Background(), userID, dayStart, domain.OutcomeYukichi, dayStart.Add(time.Hour))
	require.NoError(t, err)
	require.False(t, claimed)
	require.Equal(t, winner, entry)
}

func TestLedger_Claim_StorageErrors(t *testing.T) {
	tests := []struct {
		name   string
		expect func(st *mockstorage.MockAllStorage)
	}{
		{
			name: "insert fails",
			expect: func(st *mockstorage.MockAllStorage) {
				st.EXPECT().InsertDraw(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
		},
		{
			name: "re-read fails",
			expect: func(st *mockstorage.MockAllStorage) {
				st.EXPECT().InsertDraw(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAlreadyClaimed)
				st.EXPECT().DrawByDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
		},
		{
			name: "winner missing",
			expect: func(st *mockstorage.MockAllStorage) {
				st.EXPECT().InsertDraw(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAlreadyClaimed)
				st.EXPECT().DrawByDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, l := newTestLedger(t)
			tt.expect(st)

			_, _, err := l.Claim(context.Background(), userID, dayStart, domain.OutcomeKichi, dayStart)
			require.ErrorIs(t, err, serrors.ErrUnavailable)
		})
	}
}

func TestLedger_Claim_InvalidOutcome(t *testing.T) {
	_, l := newTestLedger(t)

	_, _, err := l.Claim(context.Background(), userID, dayStart, domain.Outcome("末吉"), dayStart)
	require.ErrorIs(t, err, serrors.ErrInternal)
}

func TestLedger_HasDrawn(t *testing.T) {
	st, l := newTestLedger(t)
	entry := &domain.DrawEntry{UserID: userID, BusinessDayStart: dayStart, Value: domain.OutcomeKichi}

	st.EXPECT().DrawByDay(gomock.Any(), userID, dayStart).Return(entry, nil)
	st.EXPECT().DrawByDay(gomock.Any(), userID, dayStart.Add(24*time.Hour)).Return(nil, nil)
	st.EXPECT().DrawByDay(gomock.Any(), userID, dayStart.Add(48*time.Hour)).Return(nil, errors.New("down"))

	got, err := l.HasDrawn(context.Background(), userID, dayStart)
	require.NoError(t, err)
	require.Equal(t, entry, got)

	got, err = l.HasDrawn(context.Background(), userID, dayStart.Add(24*time.Hour))
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = l.HasDrawn(context.Background(), userID, dayStart.Add(48*time.Hour))
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestLedger_FetchWindow_SortsOldestFirst(t *testing.T) {
	st, l := newTestLedger(t)
	end := dayStart
	start := end.Add(-365 * 24 * time.Hour)

	st.EXPECT().DrawsInWindow(gomock.Any(), userID, start, end).Return([]domain.DrawEntry{
		{Value: domain.OutcomeKyo, CreatedAt: dayStart.Add(-time.Hour)},
		{Value: domain.OutcomeKichi, CreatedAt: dayStart.Add(-48 * time.Hour)},
	}, nil)

	entries, err := l.FetchWindow(context.Background(), userID, start, end)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, domain.OutcomeKichi, entries[0].Value)
	require.Equal(t, domain.OutcomeKyo, entries[1].Value)

	_, err = l.FetchWindow(context.Background(), userID, end, start)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestLedger_Count(t *testing.T) {
	st, l := newTestLedger(t)

	st.EXPECT().CountDraws(gomock.Any(), userID).Return(int64(12), nil)
	st.EXPECT().CountDraws(gomock.Any(), userID).Return(int64(0), errors.New("down"))

	n, err := l.Count(context.Background(), userID)
	require.NoError(t, err)
	require.EqualValues(t, 12, n)

	_, err = l.Count(context.Background(), userID)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
