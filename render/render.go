// Package render draws placements and run progress with gonum/plot.
//
// Circles are drawn as filled polygons, coloured by radius so that each group
// gets its own colour, with a marker at every centre. The rectangle is drawn
// as an outline and fixes the axis ranges.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/circlepack/ga"
	"github.com/katalvlaran/circlepack/placement"
)

// segments is the number of polygon edges per circle.
const segments = 96

// DefaultSize is the side of a saved placement image.
const DefaultSize = 6 * vg.Inch

// ErrLengthMismatch indicates circles and rectangle that cannot be drawn together.
var ErrLengthMismatch = errors.New("render: state length differs from configuration")

var palette = []color.RGBA{
	{0xa5, 0x40, 0x40, 0xff},
	{0x40, 0x6f, 0xa5, 0xff},
	{0x4f, 0x82, 0x4c, 0xff},
	{0xc6, 0x95, 0x59, 0xff},
}

func circlePolygon(c placement.Circle) plotter.XYs {
	pts := make(plotter.XYs, segments+1)

	var (
		i   int
		ang float64
	)
	for i = 0; i <= segments; i++ {
		ang = 2 * math.Pi * float64(i) / float64(segments)
		pts[i].X = c.Center.X + c.Radius*math.Cos(ang)
		pts[i].Y = c.Center.Y + c.Radius*math.Sin(ang)
	}
	return pts
}

// Placement returns a plot of s inside the cfg rectangle.
func Placement(cfg placement.Configuration, s placement.State) (*plot.Plot, error) {
	if err := cfg.CheckState(s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLengthMismatch, err)
	}
	return Circles(cfg.W, cfg.H, placement.Circles(cfg, s))
}

// Circles returns a plot of arbitrary circles inside a w×h rectangle. It
// serves result files, where group boundaries are lost.
func Circles(w, h float64, circles []placement.Circle) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d circles in %g × %g", len(circles), w, h)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = 0, w
	p.Y.Min, p.Y.Max = 0, h

	frame, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}, {X: 0, Y: 0}})
	if err != nil {
		return nil, err
	}
	frame.Color = color.Black
	frame.Width = vg.Points(1.2)
	p.Add(frame)

	var (
		colours = make(map[float64]color.RGBA)
		centres = make(plotter.XYs, len(circles))
		i       int
		c       placement.Circle
		col     color.RGBA
		fill    color.RGBA
		ok      bool
		poly    *plotter.Polygon
	)
	for i, c = range circles {
		col, ok = colours[c.Radius]
		if !ok {
			col = palette[len(colours)%len(palette)]
			colours[c.Radius] = col
		}

		poly, err = plotter.NewPolygon(circlePolygon(c))
		if err != nil {
			return nil, fmt.Errorf("render: circle %d: %w", i, err)
		}
		fill = col
		fill.A = 0x60
		poly.Color = fill
		poly.LineStyle.Color = col
		poly.LineStyle.Width = vg.Points(0.8)
		p.Add(poly)

		centres[i].X, centres[i].Y = c.Center.X, c.Center.Y
	}

	if len(centres) > 0 {
		marks, err := plotter.NewScatter(centres)
		if err != nil {
			return nil, err
		}
		marks.GlyphStyle.Shape = draw.CircleGlyph{}
		marks.GlyphStyle.Radius = vg.Points(1.5)
		marks.GlyphStyle.Color = color.Black
		p.Add(marks)
	}

	return p, nil
}

// Progress returns a plot of best-so-far and per-generation best fitness.
// Infinite values are left out.
func Progress(history []ga.GenerationStats) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Fitness by generation"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness"

	var (
		best, gen plotter.XYs
		st        ga.GenerationStats
	)
	for _, st = range history {
		if !math.IsInf(st.Best, 0) {
			best = append(best, plotter.XY{X: float64(st.Generation), Y: st.Best})
		}
		if !math.IsInf(st.GenerationBest, 0) {
			gen = append(gen, plotter.XY{X: float64(st.Generation), Y: st.GenerationBest})
		}
	}
	if len(best) == 0 {
		return p, nil
	}

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return nil, err
	}
	bestLine.Color = palette[0]
	genLine, err := plotter.NewLine(gen)
	if err != nil {
		return nil, err
	}
	genLine.Color = palette[1]
	genLine.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}

	p.Add(bestLine, genLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("generation", genLine)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// Save writes p to path; the format follows the extension (png, svg, pdf...).
func Save(p *plot.Plot, path string) error {
	return p.Save(DefaultSize, DefaultSize, path)
}
