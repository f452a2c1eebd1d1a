package search_test

import (
	"math/rand"
)

// lineWalk minimizes the number of unit moves from Start to Goal on the
// integer line, expressed as maximizing -moves.
type lineWalk struct {
	Start, Goal int
}

type walker struct {
	Pos, Moves int
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (l lineWalk) Root() walker { return walker{Pos: l.Start} }
func (l lineWalk) Key(s walker) int { return s.Pos }
func (l lineWalk) Value(s walker) int { return -s.Moves }
func (l lineWalk) Bound(s walker) int { return -(s.Moves + abs(l.Goal-s.Pos)) }
func (l lineWalk) Terminal(s walker) bool { return s.Pos == l.Goal }
func (l lineWalk) Expand(s walker, emit func(walker)) {
	emit(walker{Pos: s.Pos - 1, Moves: s.Moves + 1})
	emit(walker{Pos: s.Pos + 1, Moves: s.Moves + 1})
}

// knapsack is a 0/1 knapsack: decide items in order, maximize value.
type knapsack struct {
	Weights, Values []int
	Capacity        int
	suffix          []int // suffix[i] = Σ Values[i:]
}

type pack struct {
	Next, Weight, Value int
}

type packKey struct {
	Next, Weight int
}

func newKnapsack(weights, values []int, capacity int) *knapsack {
	k := &knapsack{Weights: weights, Values: values, Capacity: capacity}
	k.suffix = make([]int, len(values)+1)
	for i := len(values) - 1; i >= 0; i-- {
		k.suffix[i] = k.suffix[i+1] + values[i]
	}
	return k
}

func randomKnapsack(rng *rand.Rand, n int) *knapsack {
	w := make([]int, n)
	v := make([]int, n)
	total := 0
	for i := range w {
		w[i] = 1 + rng.Intn(9)
		v[i] = rng.Intn(20)
		total += w[i]
	}
	return newKnapsack(w, v, total/2)
}

func (k *knapsack) Root() pack { return pack{} }
func (k *knapsack) Key(s pack) packKey { return packKey{s.Next, s.Weight} }
func (k *knapsack) Value(s pack) int { return s.Value }
func (k *knapsack) Bound(s pack) int { return s.Value + k.suffix[s.Next] }
func (k *knapsack) Terminal(s pack) bool { return s.Next == len(k.Values) }
func (k *knapsack) Expand(s pack, emit func(pack)) {
	i := s.Next
	if s.Weight+k.Weights[i] <= k.Capacity {
		emit(pack{Next: i + 1, Weight: s.Weight + k.Weights[i], Value: s.Value + k.Values[i]})
	}
	emit(pack{Next: i + 1, Weight: s.Weight, Value: s.Value})
}

// bruteForce enumerates every subset.
func (k *knapsack) bruteForce() int {
	n := len(k.Values)
	best := 0
	for mask := 0; mask < 1<<n; mask++ {
		w, v := 0, 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += k.Weights[i]
				v += k.Values[i]
			}
		}
		if w <= k.Capacity && v > best {
			best = v
		}
	}
	return best
}

// halving maximizes a float score: each step either keeps x or halves the
// remaining budget into the score; three steps.
type halving struct{}

type half struct {
	Step   int
	Budget float64
	Score  float64
}

func (halving) Root() half { return half{Budget: 1} }
func (halving) Key(s half) half { return half{Step: s.Step, Budget: s.Budget} }
func (halving) Value(s half) float64 { return s.Score }
func (halving) Bound(s half) float64 {
	if s.Step == 3 {
		return s.Score
	}
	return s.Score + s.Budget
}
func (halving) Terminal(s half) bool { return s.Step == 3 }
func (halving) Expand(s half, emit func(half)) {
	emit(half{Step: s.Step + 1, Budget: s.Budget / 2, Score: s.Score + s.Budget/2})
	emit(half{Step: s.Step + 1, Budget: s.Budget, Score: s.Score})
}
