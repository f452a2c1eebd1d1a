// Package bitset provides a fixed-width (64 member) set of small integer
// indices packed into a single uint64.
//
// A Set is a value type: every mutator returns a new Set and never touches
// the receiver. This makes it safe to embed in search states that are
// copied into priority queues and dominance maps.
//
// Complexity: every operation is O(1) except Members, which is O(popcount).
//
// Indices outside [0, Width) are a programming contract violation and panic.
package bitset

import (
	"fmt"
	"math/bits"
	"strings"
)

// Width is the number of addressable members.
const Width = 64

// Set is a bitset over indices 0..63. The zero value is the empty set.
type Set uint64

// check panics when i cannot be represented in a Set.
func check(i int) {
	if i < 0 || i >= Width {
		panic(fmt.Sprintf("bitset: index %d out of range [0,%d)", i, Width))
	}
}

// Of returns a set holding the given members.
func Of(members ...int) Set {
	var s Set
	for _, m := range members {
		s = s.With(m)
	}

	return s
}

// Full returns the set {0, 1, ..., n-1}. Panics if n is outside [0, Width].
func Full(n int) Set {
	if n < 0 || n > Width {
		panic(fmt.Sprintf("bitset: size %d out of range [0,%d]", n, Width))
	}
	if n == Width {
		return ^Set(0)
	}

	return Set(1)<<uint(n) - 1
}

// Has reports whether i is a member.
func (s Set) Has(i int) bool {
	check(i)

	return s&(1<<uint(i)) != 0
}

// With returns s ∪ {i}.
func (s Set) With(i int) Set {
	check(i)

	return s | 1<<uint(i)
}

// Without returns s \ {i}.
func (s Set) Without(i int) Set {
	check(i)

	return s &^ (1 << uint(i))
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set { return s | o }

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set { return s & o }

// Minus returns s \ o.
func (s Set) Minus(o Set) Set { return s &^ o }

// SubsetOf reports whether every member of s is also in o.
func (s Set) SubsetOf(o Set) bool { return s&^o == 0 }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s == 0 }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Members returns the members in ascending order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}

	return out
}

// String renders the set as "{0 3 5}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range s.Members() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", m)
	}
	sb.WriteByte('}')

	return sb.String()
}
