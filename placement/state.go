package placement

import "github.com/katalvlaran/circlepack/geom"

// Clone returns a deep copy of s.
func (s State) Clone() State {
	if s == nil {
		return nil
	}
	out := make(State, len(s))
	copy(out, s)

	return out
}

// Equal reports exact pointwise equality with o.
func (s State) Equal(o State) bool {
	return geom.AllEqual(s, o)
}

// Clone returns a deep copy of every state in p.
func (p Population) Clone() Population {
	out := make(Population, len(p))
	var i int
	for i = range p {
		out[i] = p[i].Clone()
	}

	return out
}

// Circles derives the circle view of s under cfg: block i of s is tagged with
// Radius[i]. Points beyond sum(Counts) are ignored; a short state yields a
// short result.
//
// Complexity: O(n).
func Circles(cfg Configuration, s State) []Circle {
	out := make([]Circle, 0, len(s))

	var (
		b Block
		j int
	)
	for _, b = range cfg.Blocks() {
		for j = b.Start; j < b.End && j < len(s); j++ {
			out = append(out, Circle{Center: s[j], Radius: b.Radius})
		}
	}

	return out
}
