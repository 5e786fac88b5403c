package codec_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/circlepack/codec"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "60 100\n2 3\n1\n2\n10\n20\n"

func TestParseConfig_Sample(t *testing.T) {
	cfg, err := codec.ParseConfig(strings.NewReader(sampleText))
	require.NoError(t, err)
	assert.Equal(t, placement.Configuration{W: 60, H: 100, N: 3, Counts: []int{1, 2}, Radius: []float64{10, 20}}, cfg)
}

func TestParseConfig_TrailingBlankLinesAndSpacing(t *testing.T) {
	cfg, err := codec.ParseConfig(strings.NewReader("  60.5\t100 \n2 3\n1\n2\n10\n2.5e1\n\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 60.5, cfg.W)
	assert.Equal(t, []float64{10, 25}, cfg.Radius)
}

func TestParseConfig_Malformed(t *testing.T) {
	cases := map[string]struct {
		in   string
		line string
	}{
		"empty":          {"", "line 1"},
		"one dimension":  {"60\n2 3\n1\n2\n10\n20\n", "line 1"},
		"bad float":      {"60 abc\n2 3\n1\n2\n10\n20\n", "line 1"},
		"float count":    {"60 100\n2 3\n1.5\n2\n10\n20\n", "line 3"},
		"missing radius": {"60 100\n2 3\n1\n2\n10\n", "line 2"},
		"two per line":   {"60 100\n2 3\n1 2\n2\n10\n20\n", "line 3"},
		"k past input":   {"60 100\n3 3\n1\n1\n1\n10\n10\n", "line 2"},
		"huge k":         {"60 100\n4000000000000000000 3\n1\n2\n10\n20\n", "line 2"},
		"trailing":       {sampleText + "7\n", "line 7"},
		"negative k":     {"60 100\n-1 0\n", "line 2"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.ParseConfig(strings.NewReader(tc.in))
			require.ErrorIs(t, err, codec.ErrMalformed)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestParseConfig_Structural(t *testing.T) {
	_, err := codec.ParseConfig(strings.NewReader("60 100\n2 4\n1\n2\n10\n20\n"))
	require.ErrorIs(t, err, codec.ErrInvalidConfig)
	require.ErrorIs(t, err, placement.ErrCountMismatch)

	_, err = codec.ParseConfig(strings.NewReader("60 100\n1 1\n1\n-3\n"))
	require.ErrorIs(t, err, codec.ErrInvalidConfig)
	require.ErrorIs(t, err, placement.ErrNegativeValue)
}

func TestConfig_RoundTrip(t *testing.T) {
	in := placement.Configuration{W: 0.1, H: 1.0 / 3, N: 5, Counts: []int{2, 0, 3}, Radius: []float64{0.01, 7, 1e-7}}

	var buf bytes.Buffer
	require.NoError(t, codec.FormatConfig(&buf, in))

	out, err := codec.ParseConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestResult_RoundTrip(t *testing.T) {
	cfg := placement.Configuration{W: 60, H: 100, N: 3, Counts: []int{1, 2}, Radius: []float64{10, 20}}
	s := placement.State{{X: 10.125, Y: 1.0 / 7}, {X: 20, Y: 60}, {X: 40, Y: 20.000000001}}

	var buf bytes.Buffer
	require.NoError(t, codec.FormatResult(&buf, cfg, s))
	assert.True(t, strings.HasPrefix(buf.String(), "60 100\n10.125 "))

	res, err := codec.ParseResult(&buf)
	require.NoError(t, err)
	assert.Equal(t, 60.0, res.W)
	assert.Equal(t, 100.0, res.H)
	assert.Equal(t, []geom.Point(s), res.Points)
	assert.Equal(t, []float64{10, 20, 20}, res.Radii)
	assert.Equal(t, placement.Circles(cfg, s), res.Circles())
}

func TestFormatResult_LengthMismatch(t *testing.T) {
	cfg := placement.Configuration{W: 60, H: 100, N: 3, Counts: []int{1, 2}, Radius: []float64{10, 20}}
	err := codec.FormatResult(&bytes.Buffer{}, cfg, placement.State{{X: 1, Y: 1}})
	require.ErrorIs(t, err, placement.ErrStateLength)
}

func TestParseResult_Malformed(t *testing.T) {
	_, err := codec.ParseResult(strings.NewReader("60 100\n1 2\n"))
	require.ErrorIs(t, err, codec.ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")

	_, err = codec.ParseResult(strings.NewReader("60 100\n1 2 x\n"))
	require.ErrorIs(t, err, codec.ErrMalformed)
}

var errDisk = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errDisk }

func TestFormat_WriteFailure(t *testing.T) {
	cfg := placement.Configuration{W: 60, H: 100, N: 1, Counts: []int{1}, Radius: []float64{10}}

	require.ErrorIs(t, codec.FormatResult(failingWriter{}, cfg, placement.State{{X: 10, Y: 10}}), errDisk)
	require.ErrorIs(t, codec.FormatConfig(failingWriter{}, cfg), errDisk)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errDisk }

func TestParse_ReadFailure(t *testing.T) {
	_, err := codec.ParseConfig(failingReader{})
	require.ErrorIs(t, err, errDisk)
	_, err = codec.ParseResult(failingReader{})
	require.ErrorIs(t, err, errDisk)
}
