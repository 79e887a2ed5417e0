package domain

import "time"

// Outcome is one value of the closed fortune vocabulary.
type Outcome string

const (
	OutcomeYukichi  Outcome = "諭吉"
	OutcomeDaikichi Outcome = "大吉"
	OutcomeKichi    Outcome = "吉"
	OutcomeChukichi Outcome = "中吉"
	OutcomeShokichi Outcome = "小吉"
	OutcomeKyo      Outcome = "凶"
	OutcomeDaikyo   Outcome = "大凶"
)

const outcomeRankCount = 7

// GoodOutcomes is the favourable pool of the two-stage draw, most favourable first.
func GoodOutcomes() []Outcome {
	return []Outcome{OutcomeYukichi, OutcomeDaikichi, OutcomeKichi, OutcomeChukichi, OutcomeShokichi}
}

// BadOutcomes is the unfavourable pool of the two-stage draw, most favourable first.
func BadOutcomes() []Outcome {
	return []Outcome{OutcomeKyo, OutcomeDaikyo}
}

// Outcomes returns the whole vocabulary ordered by descending rank.
func Outcomes() []Outcome {
	return append(GoodOutcomes(), BadOutcomes()...)
}

// Rank orders outcomes from least (1) to most (7) favourable. Unknown values rank 0.
func (o Outcome) Rank() int {
	for i, v := range Outcomes() {
		if v == o {
			return outcomeRankCount - i
		}
	}

	return 0
}

// Valid reports whether o belongs to the vocabulary.
func (o Outcome) Valid() bool { return o.Rank() > 0 }

// Good reports whether o belongs to the favourable pool.
func (o Outcome) Good() bool { return o.Rank() > len(BadOutcomes()) }

// DrawEntry is one row of the draw ledger: the fortune a user received for a
// business day. At most one entry exists per (UserID, BusinessDayStart).
type DrawEntry struct {
	// ID is the storage generated identifier.
	ID int64 `json:"-"`
	// UserID is the owner of the draw.
	UserID UserID `json:"userId"`
	// BusinessDayStart is the UTC instant the business day began. It is the day's
	// identity key, not a calendar date.
	BusinessDayStart time.Time `json:"businessDayStart"`
	// Value is the drawn fortune.
	Value Outcome `json:"value"`
	// CreatedAt is the wall-clock instant of persistence.
	CreatedAt time.Time `json:"createdAt"`
}

// LeaderboardEntry is a ledger entry of the current business day joined with
// the owner's public name.
type LeaderboardEntry struct {
	UserID   UserID
	Username string
	Value    Outcome
}

// LeaderboardGroup lists everyone who drew the same fortune today.
type LeaderboardGroup struct {
	Fortune    Outcome  `json:"fortune"`
	Identities []string `json:"identities"`
}
