// Package builder synthesizes valve networks for property tests, benchmarks
// and the CLI's demo mode.
//
// A network is assembled in two layers:
//
//   - Topology: one or more Constructor closures (Path, Cycle, Star,
//     Complete, Grid, RandomSparse) add vertices and undirected edges to a
//     core.Graph, in a documented and stable order.
//   - Rates: after the topology is complete, BuildNetwork assigns every
//     vertex a rate drawn from the configured RateFn, then freezes the
//     result with network.New.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme, rate function, start policy.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ValveIDFn:         two-letter names ("AA","AB",…,"ZZ").
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Rate distributions (RateFn implementations):
//     – ConstantRateFn:    fixed user-provided value.
//     – UniformRateFn:     uniform over the integers [lo,hi].
//     – SparseRateFn:      zero with probability pZero, else uniform [lo,hi].
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical networks.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with
//     the constructor name.
package builder
