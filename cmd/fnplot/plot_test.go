package main

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/fnplot"
)

func render(t *testing.T, g *grid) string {
	t.Helper()
	var b strings.Builder
	_, err := g.WriteTo(&b)
	require.NoError(t, err)
	return b.String()
}

func TestPlotDiagonal(t *testing.T) {
	dom := []float64{-1, 0, 1}
	img := []float64{-1, 0, 1}
	want := "" +
		"  │ ■\n" +
		"  │  \n" +
		"──■──\n" +
		"  │  \n" +
		"■ │  \n"
	assert.Equal(t, want, render(t, plot(dom, img, 5, 5)))
	assert.Equal(t, []float64{-1, 0, 1}, dom)
	assert.Equal(t, []float64{-1, 0, 1}, img)
}

func TestPlotAxesCentered(t *testing.T) {
	// Zero is outside both ranges, so the axes go through the middle.
	g := plot([]float64{1, 2}, []float64{5, 6}, 3, 3)
	want := "" +
		" │■\n" +
		"─┼─\n" +
		"■│ \n"
	assert.Equal(t, want, render(t, g))
}

func TestPlotSkipsNonFinite(t *testing.T) {
	g := plot([]float64{-1, 0, 1}, []float64{math.NaN(), math.Inf(1), 1}, 3, 3)
	s := render(t, g)
	assert.Equal(t, 1, strings.Count(s, string(point)))
}

func TestPlotSampled(t *testing.T) {
	dom, img, err := fnplot.Sample("$^2", "-2:0.5:2")
	require.NoError(t, err)
	g := plot(dom, img, 9, 5)
	lines := strings.Split(strings.TrimSuffix(render(t, g), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.Equal(t, 9, len([]rune(l)))
	}
	// The parabola's ends are in the top corners and its vertex is on the
	// bottom row, which is also the x axis.
	assert.Equal(t, point, []rune(lines[0])[0])
	assert.Equal(t, point, []rune(lines[0])[8])
	assert.Equal(t, point, []rune(lines[4])[4])
}

func TestMapRange(t *testing.T) {
	assert.Equal(t, 0, mapRange(-1, 1, 0, 10, -1))
	assert.Equal(t, 10, mapRange(-1, 1, 0, 10, 1))
	assert.Equal(t, 5, mapRange(-1, 1, 0, 10, 0))
	assert.Equal(t, 10, mapRange(-1, 1, 10, 0, -1))
	assert.Equal(t, 5, mapRange(3, 3, 0, 10, 3))
}

func TestTermSize(t *testing.T) {
	w, h := termSize(40, 10)
	assert.Equal(t, 40, w)
	assert.Equal(t, 10, h)
	t.Setenv("COLUMNS", "nope")
	assert.Equal(t, 80, envInt("COLUMNS", 80))
	t.Setenv("COLUMNS", "132")
	assert.Equal(t, 132, envInt("COLUMNS", 80))
}
