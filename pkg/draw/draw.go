// Package draw implements the two-stage weighted fortune draw.
//
// The first stage picks a pool: a uniform fraction in [0,1) at or below
// GoodThreshold selects the favourable pool, anything above it the unfavourable
// one. The second stage picks uniformly inside the chosen pool.
package draw

import (
	"fortune/pkg/domain"
	"math/rand/v2"
)

// GoodThreshold is the inclusive upper bound of the first-stage fraction that
// selects the favourable pool.
const GoodThreshold = 0.80

// Source is the randomness consumed by Engine. *rand.Rand from math/rand/v2
// satisfies it but is not safe for concurrent use; the zero Engine uses the
// package level generator which is.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() } //nolint: gosec
func (globalSource) IntN(n int) int   { return rand.IntN(n) }   //nolint: gosec

// Engine draws fortunes. It holds no state besides its Source.
type Engine struct {
	src Source
}

// New returns an Engine reading from src. A nil src uses the concurrency-safe
// package level generator.
func New(src Source) *Engine {
	return &Engine{src: src}
}

// Draw returns one outcome.
func (e *Engine) Draw() domain.Outcome {
	src := e.source()

	pool := domain.BadOutcomes()
	if src.Float64() <= GoodThreshold {
		pool = domain.GoodOutcomes()
	}

	return pool[src.IntN(len(pool))]
}

func (e *Engine) source() Source {
	if e == nil || e.src == nil {
		return globalSource{}
	}

	return e.src
}
