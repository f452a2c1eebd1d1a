package builder

import (
	"fmt"
	"strconv"
)

// IDFn names vertex idx. It must be pure: the same idx always yields the
// same ID, and distinct indices yield distinct IDs.
type IDFn func(idx int) string

// valveAlphabet bounds ValveIDFn to two upper-case letters.
const valveAlphabet = 26

// ValveIDFn names vertices like puzzle valves: 0→"AA", 1→"AB", 26→"BA",
// 675→"ZZ". Vertex 0 is therefore "AA", the default start node.
// Panics outside [0, 675].
func ValveIDFn(idx int) string {
	if idx < 0 || idx >= valveAlphabet*valveAlphabet {
		panic(fmt.Sprintf("ValveIDFn: idx must be in [0,%d], got %d", valveAlphabet*valveAlphabet-1, idx))
	}

	return string([]byte{byte('A' + idx/valveAlphabet), byte('A' + idx%valveAlphabet)})
}

// DefaultIDFn names vertices by their decimal index: "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolNumberIDFn returns an IDFn producing prefix+index ("v0", "v1", ...).
// The returned function panics on a negative index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb names vertices prefix+index.
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs names vertices by decimal index.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}
