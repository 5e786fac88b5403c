package populate

import (
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/placement"
)

// Relax applies one virtual-force pass to s in place and returns it.
//
// For circle c and every other candidate o (other circles plus the four
// zero-radius corner circles) with centre distance d and sumR = rc+ro:
//
//	f = (1 - sumR/d) · (o - c)
//
// f points away from o when d < sumR (push) and towards o otherwise (pull).
// Pushes and pulls are averaged separately and both averages are added to c.
// Pairs with d == 0 contribute nothing. Forces are computed against the
// positions at the start of the pass.
//
// Complexity: O(n²).
func Relax(cfg placement.Configuration, s placement.State) placement.State {
	var circles = placement.Circles(cfg, s)

	cand := make([]placement.Circle, 0, len(circles)+4)
	cand = append(cand, circles...)
	cand = append(cand,
		placement.Circle{Center: geom.Point{X: 0, Y: 0}},
		placement.Circle{Center: geom.Point{X: 0, Y: cfg.H}},
		placement.Circle{Center: geom.Point{X: cfg.W, Y: 0}},
		placement.Circle{Center: geom.Point{X: cfg.W, Y: cfg.H}},
	)

	var (
		one   = geom.Wrap(1)
		zero  = geom.Wrap(0)
		i, j  int
		c, o  placement.Circle
		d     float64
		sum   geom.Point
		f     geom.Point
		push  geom.Point
		pull  geom.Point
		nPush geom.Point
		nPull geom.Point
	)
	for i = 0; i < len(circles); i++ {
		c = circles[i]
		push, pull, nPush, nPull = zero, zero, zero, zero

		for j = 0; j < len(cand); j++ {
			o = cand[j]
			d = c.Center.Distance(o.Center)
			if d == 0 {
				continue
			}
			sum = geom.Wrap(c.Radius + o.Radius)
			f = one.Sub(sum.Div(geom.Wrap(d))).Mul(o.Center.Sub(c.Center))
			if d < c.Radius+o.Radius {
				push = push.Add(f)
				nPush = nPush.Add(one)
			} else {
				pull = pull.Add(f)
				nPull = nPull.Add(one)
			}
		}

		if !nPush.Equal(zero) {
			s[i] = s[i].Add(push.Div(nPush))
		}
		if !nPull.Equal(zero) {
			s[i] = s[i].Add(pull.Div(nPull))
		}
	}

	return s
}
