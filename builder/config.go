// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn      = ValveIDFn        ("AA","AB",...)
//   • rng       = nil              (pure/deterministic unless seeded)
//   • rateFn    = ConstantRateFn(DefaultRate)
//   • zeroStart = false

package builder

import "math/rand"

// DefaultRate is the rate given to every vertex when no RateFn is set.
const DefaultRate = 1

// builderConfig aggregates all knobs used by constructors and BuildNetwork.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Rate generator, called once per vertex in index order.
	rateFn RateFn
	// rateNeedsRNG is set by options installing a random RateFn.
	rateNeedsRNG bool
	// zeroStart forces vertex 0 to rate 0.
	zeroStart bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   ValveIDFn,
		rng:    nil,
		rateFn: ConstantRateFn(DefaultRate),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
