package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/placement"
)

var (
	// ErrMalformed indicates a wrong token count or type, or a missing or
	// extra line. It is wrapped with the 1-based line number.
	ErrMalformed = errors.New("codec: malformed input")

	// ErrInvalidConfig wraps placement validation errors of a parsed
	// configuration.
	ErrInvalidConfig = errors.New("codec: invalid configuration")
)

// Result is a decoded result file.
type Result struct {
	W, H   float64
	Points []geom.Point
	Radii  []float64
}

// Circles pairs Points with Radii.
func (r Result) Circles() []placement.Circle {
	out := make([]placement.Circle, len(r.Points))

	var (
		i int
		p geom.Point
	)
	for i, p = range r.Points {
		out[i] = placement.Circle{Center: p, Radius: r.Radii[i]}
	}
	return out
}

// lines holds the input split into token rows, with blank trailing rows cut.
type lines struct {
	rows [][]string
	next int
}

func readLines(r io.Reader) (*lines, error) {
	var (
		sc   = bufio.NewScanner(r)
		rows [][]string
	)
	for sc.Scan() {
		rows = append(rows, strings.Fields(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("codec: read: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return &lines{rows: rows}, nil
}

// take returns the next row, which must have exactly want tokens, and its
// 1-based line number.
func (l *lines) take(want int) ([]string, int, error) {
	if l.next >= len(l.rows) {
		return nil, l.next + 1, fmt.Errorf("%w: line %d: unexpected end of input", ErrMalformed, l.next+1)
	}
	row := l.rows[l.next]
	l.next++
	if len(row) != want {
		return nil, l.next, fmt.Errorf("%w: line %d: want %d tokens, got %d", ErrMalformed, l.next, want, len(row))
	}

	return row, l.next, nil
}

// done fails if rows remain.
func (l *lines) done() error {
	if l.next < len(l.rows) {
		return fmt.Errorf("%w: line %d: unexpected trailing content", ErrMalformed, l.next+1)
	}
	return nil
}

func parseFloat(tok string, line int) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %q is not a number", ErrMalformed, line, tok)
	}
	return v, nil
}

func parseInt(tok string, line int) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformed, line, tok)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseConfig reads a configuration and validates it.
//
// Errors: ErrMalformed, ErrInvalidConfig (wrapping placement sentinels), or a
// read error.
func ParseConfig(r io.Reader) (placement.Configuration, error) {
	var cfg placement.Configuration

	l, err := readLines(r)
	if err != nil {
		return cfg, err
	}

	// Stage 1: rectangle.
	row, n, err := l.take(2)
	if err != nil {
		return cfg, err
	}
	if cfg.W, err = parseFloat(row[0], n); err != nil {
		return cfg, err
	}
	if cfg.H, err = parseFloat(row[1], n); err != nil {
		return cfg, err
	}

	// Stage 2: group and point counts.
	row, n, err = l.take(2)
	if err != nil {
		return cfg, err
	}
	var k int
	if k, err = parseInt(row[0], n); err != nil {
		return cfg, err
	}
	if cfg.N, err = parseInt(row[1], n); err != nil {
		return cfg, err
	}
	if k < 0 {
		return cfg, fmt.Errorf("%w: line %d: negative group count %d", ErrMalformed, n, k)
	}
	if left := (len(l.rows) - l.next) / 2; k > left {
		return cfg, fmt.Errorf("%w: line %d: group count %d exceeds the %d groups left in the input", ErrMalformed, n, k, left)
	}

	// Stage 3: k counts then k radii.
	cfg.Counts = make([]int, k)
	cfg.Radius = make([]float64, k)
	var i int
	for i = 0; i < k; i++ {
		if row, n, err = l.take(1); err != nil {
			return cfg, err
		}
		if cfg.Counts[i], err = parseInt(row[0], n); err != nil {
			return cfg, err
		}
	}
	for i = 0; i < k; i++ {
		if row, n, err = l.take(1); err != nil {
			return cfg, err
		}
		if cfg.Radius[i], err = parseFloat(row[0], n); err != nil {
			return cfg, err
		}
	}
	if err = l.done(); err != nil {
		return cfg, err
	}

	// Stage 4: structure.
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// FormatConfig writes cfg in the configuration format.
func FormatConfig(w io.Writer, cfg placement.Configuration) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %s\n", formatFloat(cfg.W), formatFloat(cfg.H))
	fmt.Fprintf(bw, "%d %d\n", len(cfg.Counts), cfg.N)

	var i int
	for i = range cfg.Counts {
		fmt.Fprintf(bw, "%d\n", cfg.Counts[i])
	}
	for i = range cfg.Radius {
		fmt.Fprintf(bw, "%s\n", formatFloat(cfg.Radius[i]))
	}

	return bw.Flush()
}

// FormatResult writes s in the result format. s must match cfg.
//
// Errors: placement.ErrStateLength, or the first write error.
func FormatResult(w io.Writer, cfg placement.Configuration, s placement.State) error {
	if err := cfg.CheckState(s); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %s\n", formatFloat(cfg.W), formatFloat(cfg.H))
	var c placement.Circle
	for _, c = range placement.Circles(cfg, s) {
		fmt.Fprintf(bw, "%s %s %s\n", formatFloat(c.Center.X), formatFloat(c.Center.Y), formatFloat(c.Radius))
	}

	return bw.Flush()
}

// ParseResult reads a result file.
//
// Errors: ErrMalformed or a read error.
func ParseResult(r io.Reader) (Result, error) {
	var res Result

	l, err := readLines(r)
	if err != nil {
		return res, err
	}

	row, n, err := l.take(2)
	if err != nil {
		return res, err
	}
	if res.W, err = parseFloat(row[0], n); err != nil {
		return res, err
	}
	if res.H, err = parseFloat(row[1], n); err != nil {
		return res, err
	}

	var x, y, rad float64
	for l.next < len(l.rows) {
		if row, n, err = l.take(3); err != nil {
			return res, err
		}
		if x, err = parseFloat(row[0], n); err != nil {
			return res, err
		}
		if y, err = parseFloat(row[1], n); err != nil {
			return res, err
		}
		if rad, err = parseFloat(row[2], n); err != nil {
			return res, err
		}
		res.Points = append(res.Points, geom.Point{X: x, Y: y})
		res.Radii = append(res.Radii, rad)
	}

	return res, nil
}
