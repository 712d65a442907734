package main

import (
	"io"
	"math"
	"strings"
)

const (
	axisHorizontal = '─'
	axisVertical   = '│'
	axisCross      = '┼'
	point          = '■'
)

// grid is a w by h grid of runes, row-major with row 0 at the top.
type grid struct {
	cells []rune
	w, h  int
}

func newGrid(w, h int) *grid {
	g := grid{cells: make([]rune, w*h), w: w, h: h}
	for i := range g.cells {
		g.cells[i] = ' '
	}
	return &g
}

func (g *grid) set(row, col int, r rune) {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return
	}
	g.cells[row*g.w+col] = r
}

// WriteTo writes the grid as h lines.
func (g *grid) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for r := 0; r < g.h; r++ {
		b.WriteString(string(g.cells[r*g.w : (r+1)*g.w]))
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// mapRange maps v linearly from [from0, from1] to [to0, to1] and rounds. If
// the source range is empty, the result is the middle of the target range.
func mapRange(from0, from1, to0, to1, v float64) int {
	if from1 == from0 {
		return int(math.Round((to0 + to1) / 2))
	}
	return int(math.Round(to0 + (v-from0)*(to1-to0)/(from1-from0)))
}

// bounds returns the least and greatest finite values in v. ok is false if
// there are none.
func bounds(v []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
		ok = true
	}
	return lo, hi, ok
}

// plot draws axes and the points (dom[i], img[i]) on a w by h grid. Axes are
// drawn through zero when zero is in range, otherwise through the middle.
// Points with non-finite values are skipped. dom and img are not modified.
func plot(dom, img []float64, w, h int) *grid {
	g := newGrid(w, h)
	xlo, xhi, _ := bounds(dom)
	ylo, yhi, ok := bounds(img)
	if !ok {
		ylo, yhi = -1, 1
	}
	col := w / 2
	if xlo <= 0 && 0 <= xhi {
		col = mapRange(xlo, xhi, 0, float64(w-1), 0)
	}
	row := h / 2
	if ylo <= 0 && 0 <= yhi {
		row = mapRange(ylo, yhi, float64(h-1), 0, 0)
	}
	for c := 0; c < w; c++ {
		g.set(row, c, axisHorizontal)
	}
	for r := 0; r < h; r++ {
		g.set(r, col, axisVertical)
	}
	g.set(row, col, axisCross)
	for i, x := range dom {
		y := img[i]
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		g.set(mapRange(ylo, yhi, float64(h-1), 0, y), mapRange(xlo, xhi, 0, float64(w-1), x), point)
	}
	return g
}
