// Package network holds the immutable graph of activatable nodes that the
// valve scheduler searches over.
//
// A Network is built once, either from Go values with New or from text
// with Parse, and then shared read-only by any number of searches. Nodes
// live in an arena addressed by dense index (declaration order); search
// states refer to nodes only by that index, never by pointer.
//
// Validation runs through a strict directed core.Graph and fails fast with
// a *ConfigError wrapping one of:
//
//	ErrEmptyNetwork, ErrTooManyNodes, ErrEmptyID, ErrDuplicateNode,
//	ErrNegativeRate, ErrDanglingNeighbor, ErrSyntax
//
// Networks hold at most MaxNodes (64) nodes so an activation set fits in
// a bitset.Set.
package network
