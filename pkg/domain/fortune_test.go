package domain_test

import (
	"fortune/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcome_Rank(t *testing.T) {
	want := map[domain.Outcome]int{
		domain.OutcomeYukichi:  7,
		domain.OutcomeDaikichi: 6,
		domain.OutcomeKichi:    5,
		domain.OutcomeChukichi: 4,
		domain.OutcomeShokichi: 3,
		domain.OutcomeKyo:      2,
		domain.OutcomeDaikyo:   1,
	}
	for o, rank := range want {
		require.Equal(t, rank, o.Rank(), "rank of %s", o)
		require.True(t, o.Valid())
	}

	require.Zero(t, domain.Outcome("末吉").Rank())
	require.False(t, domain.Outcome("").Valid())
}

func TestOutcome_Pools(t *testing.T) {
	require.Len(t, domain.GoodOutcomes(), 5)
	require.Len(t, domain.BadOutcomes(), 2)
	require.Len(t, domain.Outcomes(), 7)

	for _, o := range domain.GoodOutcomes() {
		require.True(t, o.Good(), "%s should be good", o)
	}
	for _, o := range domain.BadOutcomes() {
		require.False(t, o.Good(), "%s should be bad", o)
	}

	// callers must not be able to corrupt the vocabulary through a returned slice
	pool := domain.GoodOutcomes()
	pool[0] = domain.OutcomeDaikyo
	require.Equal(t, domain.OutcomeYukichi, domain.GoodOutcomes()[0])
}

func TestUser_Active(t *testing.T) {
	var nilUser *domain.User
	require.False(t, nilUser.Active())
	require.True(t, (&domain.User{Status: domain.UserStatusActive}).Active())
	require.False(t, (&domain.User{Status: domain.UserStatusInactive}).Active())
}
