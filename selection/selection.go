// Package selection implements fitness-ranked truncation selection.
//
// Best scores every state once, orders them by fitness quantized to 1e-5
// (descending, stable, ties by input position) and keeps the first keep
// entries. Quantization keeps the order from flipping on floating noise
// between nearly identical states.
package selection

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/circlepack/fitness"
	"github.com/katalvlaran/circlepack/placement"
)

// quantum is the fitness resolution used for ranking.
const quantum = 1e5

// ErrUnknownKind is returned by ParseKind for an unknown name.
var ErrUnknownKind = errors.New("selection: unknown selector kind")

// Kind names a selector. Truncation is the only one.
type Kind int

const (
	// Truncation keeps the top-ranked states.
	Truncation Kind = iota
)

// String returns the lower-case selector name.
func (k Kind) String() string {
	if k == Truncation {
		return "truncation"
	}

	return "unknown"
}

// ParseKind maps a name produced by String back to a Kind.
func ParseKind(name string) (Kind, error) {
	if name == "truncation" {
		return Truncation, nil
	}

	return 0, ErrUnknownKind
}

// Ranked is a state with its fitness and its position in the input.
type Ranked struct {
	State   placement.State
	Fitness float64
	Index   int
}

// Best returns at most keep entries of pop, best first.
//
// Each state is evaluated exactly once. NaN fitness ranks below everything.
// keep <= 0 yields an empty result; keep > len(pop) yields len(pop) entries.
//
// Complexity: O(m·cost(fn) + m log m) for m = len(pop).
func Best(fn fitness.Func, cfg placement.Configuration, pop placement.Population, keep int) []Ranked {
	if keep <= 0 || len(pop) == 0 {
		return []Ranked{}
	}

	ranked := make([]Ranked, len(pop))
	keys := make([]float64, len(pop))

	var i int
	for i = range pop {
		ranked[i] = Ranked{State: pop[i], Fitness: fn(cfg, pop[i]), Index: i}
		keys[i] = quantize(ranked[i].Fitness)
	}

	// Sort a permutation so keys stay aligned with entries.
	order := make([]int, len(pop))
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] > keys[order[b]]
	})

	if keep > len(pop) {
		keep = len(pop)
	}
	out := make([]Ranked, keep)
	for i = 0; i < keep; i++ {
		out[i] = ranked[order[i]]
	}

	return out
}

// States strips the scores from ranked.
func States(ranked []Ranked) placement.Population {
	out := make(placement.Population, len(ranked))

	var i int
	for i = range ranked {
		out[i] = ranked[i].State
	}

	return out
}

// quantize truncates f to 1e-5 resolution; NaN maps to -Inf.
func quantize(f float64) float64 {
	if math.IsNaN(f) {
		return math.Inf(-1)
	}

	return math.Trunc(f * quantum)
}
