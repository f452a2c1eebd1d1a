// Package builder provides internal helper functions and types
// for configuring rate distributions in network builders.
package builder

import (
	"fmt"
	"math/rand"
)

// RateFn produces a vertex rate given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type RateFn func(rng *rand.Rand) int

// ConstantRateFn returns a RateFn that always yields the provided value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantRateFn(value int) RateFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantRateFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformRateFn returns a RateFn sampling uniformly over the integers
// [lo, hi] inclusive. Panics if lo < 0 or hi < lo.
// If rng is nil, yields lo to maintain a deterministic fallback.
func UniformRateFn(lo, hi int) RateFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformRateFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Intn(hi-lo+1)
	}
}

// SparseRateFn returns a RateFn that yields 0 with probability pZero and
// otherwise samples uniformly over [lo, hi]. Real inputs have many
// zero-rate junctions; this reproduces that shape.
// Panics if pZero ∉ [0,1] or the interval is invalid.
// If rng is nil, yields lo.
func SparseRateFn(pZero float64, lo, hi int) RateFn {
	if pZero < MinProbability || pZero > MaxProbability {
		panic(fmt.Sprintf("SparseRateFn: pZero must be in [0,1], got %g", pZero))
	}
	uniform := UniformRateFn(lo, hi)

	return func(rng *rand.Rand) int {
		if rng == nil {
			return lo
		}
		if rng.Float64() < pZero {
			return 0
		}

		return uniform(rng)
	}
}

// WithConstantRate sets a fixed rate via ConstantRateFn.
func WithConstantRate(r int) BuilderOption {
	return WithRateFn(ConstantRateFn(r), false)
}

// WithUniformRates sets rates ∼ U{lo..hi} via UniformRateFn.
func WithUniformRates(lo, hi int) BuilderOption {
	return WithRateFn(UniformRateFn(lo, hi), true)
}

// WithSparseRates sets rates via SparseRateFn.
func WithSparseRates(pZero float64, lo, hi int) BuilderOption {
	return WithRateFn(SparseRateFn(pZero, lo, hi), true)
}
