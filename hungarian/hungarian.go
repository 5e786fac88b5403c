package hungarian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	unmatched = -1
	treeRoot  = -2
)

// solver holds the per-solve working set. Slices are indexed by left vertex
// (x) or right vertex (y).
type solver struct {
	w   mat.Matrix
	n   int
	tol float64

	lx, ly   []float64
	xy, yx   []int // xy[x] = y matched to x; yx[y] = x matched to y
	inS      []bool
	inT      []bool
	prev     []int // alternating-tree parent of x
	slack    []float64
	slackx   []int
	queue    []int
	budget   int
	rounds   int
	matching int
}

// Solve computes a maximum-weight perfect matching of the square matrix w.
//
// Contract:
//   - w must be square and contain finite values.
//   - An empty (0×0) problem is not representable by gonum; use Reorder for
//     empty slices.
//
// Errors: ErrNonSquare, ErrNonFinite, ErrBadTolerance, ErrBadIterations,
// ErrNoMatch.
//
// Complexity: O(n³) time, O(n) extra space.
func Solve(w mat.Matrix, opts Options) (Result, error) {
	// Stage 1: validation.
	if w == nil {
		return Result{}, ErrNonSquare
	}
	r, c := w.Dims()
	if r != c {
		return Result{}, fmt.Errorf("%w: %dx%d", ErrNonSquare, r, c)
	}
	tol, budget, err := resolveOptions(opts, r)
	if err != nil {
		return Result{}, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = w.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Result{}, fmt.Errorf("%w: w[%d][%d]=%g", ErrNonFinite, i, j, v)
			}
		}
	}

	// Stage 2: match.
	s := newSolver(w, r, tol, budget)
	if err = s.run(); err != nil {
		return Result{}, err
	}

	// Stage 3: collect.
	res := Result{Assignment: make([]int, r), Iterations: s.rounds}
	for i = 0; i < r; i++ {
		res.Assignment[i] = s.xy[i]
		res.Weight += w.At(i, s.xy[i])
	}

	return res, nil
}

// resolveOptions applies defaults and validates opts for an n-sized problem.
func resolveOptions(opts Options, n int) (float64, int, error) {
	if err := opts.Validate(); err != nil {
		return 0, 0, err
	}
	var tol = opts.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	var budget = opts.MaxIterations
	if budget == 0 {
		budget = n * n * n
	}

	return tol, budget, nil
}

func newSolver(w mat.Matrix, n int, tol float64, budget int) *solver {
	s := &solver{
		w:      w,
		n:      n,
		tol:    tol,
		lx:     make([]float64, n),
		ly:     make([]float64, n),
		xy:     make([]int, n),
		yx:     make([]int, n),
		inS:    make([]bool, n),
		inT:    make([]bool, n),
		prev:   make([]int, n),
		slack:  make([]float64, n),
		slackx: make([]int, n),
		queue:  make([]int, 0, n),
		budget: budget,
	}

	var x, y int
	for x = 0; x < n; x++ {
		s.xy[x] = unmatched
		s.yx[x] = unmatched
		s.lx[x] = math.Inf(-1)
		for y = 0; y < n; y++ {
			s.lx[x] = math.Max(s.lx[x], w.At(x, y))
		}
	}

	return s
}

// run augments the matching once per left vertex.
func (s *solver) run() error {
	var (
		x, y  int
		found bool
		err   error
	)
	for s.matching < s.n {
		x, y, found, err = s.search()
		if err != nil {
			return err
		}
		if !found {
			return ErrNoMatch
		}
		s.augment(x, y)
	}

	return nil
}

// search grows an alternating tree from the first free left vertex and
// returns the edge (x, y) that reaches a free right vertex.
func (s *solver) search() (int, int, bool, error) {
	var x, y, root int

	// Reset the tree.
	for x = 0; x < s.n; x++ {
		s.inS[x] = false
		s.inT[x] = false
		s.prev[x] = unmatched
	}
	s.queue = s.queue[:0]

	root = unmatched
	for x = 0; x < s.n; x++ {
		if s.xy[x] == unmatched {
			root = x
			break
		}
	}
	if root == unmatched {
		return 0, 0, false, nil
	}
	s.queue = append(s.queue, root)
	s.prev[root] = treeRoot
	s.inS[root] = true
	for y = 0; y < s.n; y++ {
		s.slack[y] = s.lx[root] + s.ly[y] - s.w.At(root, y)
		s.slackx[y] = root
	}

	for {
		if s.rounds >= s.budget {
			return 0, 0, false, fmt.Errorf("%w: budget of %d rounds exhausted", ErrNoMatch, s.budget)
		}
		s.rounds++

		// BFS over tight edges.
		for len(s.queue) > 0 {
			x = s.queue[0]
			s.queue = s.queue[1:]
			for y = 0; y < s.n; y++ {
				if s.inT[y] || !s.tight(x, y) {
					continue
				}
				if s.yx[y] == unmatched {
					return x, y, true, nil
				}
				s.inT[y] = true
				s.queue = append(s.queue, s.yx[y])
				s.addToTree(s.yx[y], x)
			}
		}

		// No augmenting path over tight edges: move the potentials.
		if !s.updateLabels() {
			return 0, 0, false, nil
		}

		// Edges that became tight extend the tree.
		s.queue = s.queue[:0]
		for y = 0; y < s.n; y++ {
			if s.inT[y] || math.Abs(s.slack[y]) >= s.tol {
				continue
			}
			if s.yx[y] == unmatched {
				return s.slackx[y], y, true, nil
			}
			s.inT[y] = true
			if !s.inS[s.yx[y]] {
				s.queue = append(s.queue, s.yx[y])
				s.addToTree(s.yx[y], s.slackx[y])
			}
		}
	}
}

// tight reports whether edge (x, y) is tight under the current potentials.
func (s *solver) tight(x, y int) bool {
	return math.Abs(s.lx[x]+s.ly[y]-s.w.At(x, y)) < s.tol
}

// addToTree inserts x (reached through prevx) and refreshes slacks.
func (s *solver) addToTree(x, prevx int) {
	s.inS[x] = true
	s.prev[x] = prevx

	var (
		y int
		v float64
	)
	for y = 0; y < s.n; y++ {
		v = s.lx[x] + s.ly[y] - s.w.At(x, y)
		if v < s.slack[y] {
			s.slack[y] = v
			s.slackx[y] = x
		}
	}
}

// updateLabels shifts the potentials by the minimum slack outside T.
// It returns false when no finite delta exists.
func (s *solver) updateLabels() bool {
	var (
		delta = math.Inf(1)
		i     int
	)
	for i = 0; i < s.n; i++ {
		if !s.inT[i] && s.slack[i] < delta {
			delta = s.slack[i]
		}
	}
	if math.IsInf(delta, 1) {
		return false
	}
	for i = 0; i < s.n; i++ {
		if s.inS[i] {
			s.lx[i] -= delta
		}
		if s.inT[i] {
			s.ly[i] += delta
		} else {
			s.slack[i] -= delta
		}
	}

	return true
}

// augment flips the matching along the path ending at edge (x, y).
func (s *solver) augment(x, y int) {
	var cx, cy, ty int
	cx, cy = x, y
	for cx != treeRoot {
		ty = s.xy[cx]
		s.yx[cy] = cx
		s.xy[cx] = cy
		cx = s.prev[cx]
		cy = ty
	}
	s.matching++
}
