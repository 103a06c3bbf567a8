package diff

import "testing"

type testGrid struct {
	w, h int
	px   []RGB
}

func newTestGrid(w, h int, fill RGB) *testGrid {
	g := &testGrid{w: w, h: h, px: make([]RGB, w*h)}
	for i := range g.px {
		g.px[i] = fill
	}
	return g
}

func (g *testGrid) Size() (int, int) { return g.w, g.h }

func (g *testGrid) RGB(x, y int) RGB { return g.px[y*g.w+x] }

func (g *testGrid) set(row, col int, c RGB) { g.px[row*g.w+col] = c }

func (g *testGrid) clone() *testGrid {
	c := &testGrid{w: g.w, h: g.h, px: make([]RGB, len(g.px))}
	copy(c.px, g.px)
	return c
}

// maskOf builds a mask from rows of '.' (same) and '#' (different).
func maskOf(t *testing.T, rows ...string) *Mask {
	t.Helper()
	if len(rows) == 0 {
		return NewMask(0, 0)
	}
	m := NewMask(len(rows[0]), len(rows))
	for r, line := range rows {
		if len(line) != m.Width {
			t.Fatalf("row %d has width %d, want %d", r, len(line), m.Width)
		}
		for c, ch := range line {
			if ch == '#' {
				m.Set(r, c, different)
			}
		}
	}
	return m
}

func blockMask(width, height, minRow, minCol, maxRow, maxCol int) *Mask {
	m := NewMask(width, height)
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			m.Set(r, c, different)
		}
	}
	return m
}

func sameBounds(a, b Rectangle) bool {
	return a.MinRow == b.MinRow && a.MinCol == b.MinCol && a.MaxRow == b.MaxRow && a.MaxCol == b.MaxCol
}
