package hungarian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Reorder permutes g2 in place so that g2[i] is the partner matched to g1[i]
// under a maximum-weight matching of weight(g1[i], g2[j]).
//
// On any error g2 is left untouched; ErrNoMatch in particular means "keep the
// current pairing".
//
// Complexity: O(n²) weight evaluations + O(n³) matching.
func Reorder[T any](g1, g2 []T, weight func(a, b T) float64, opts Options) error {
	if len(g1) != len(g2) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(g1), len(g2))
	}
	var n = len(g1)
	if n <= 1 {
		return nil
	}

	w := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w.Set(i, j, weight(g1[i], g2[j]))
		}
	}

	res, err := Solve(w, opts)
	if err != nil {
		return err
	}

	tmp := make([]T, n)
	for i = 0; i < n; i++ {
		tmp[i] = g2[res.Assignment[i]]
	}
	copy(g2, tmp)

	return nil
}
