package main

// IterationCap is the maximum number of iterations per point. A point that
// reaches it is considered inside the set.
const IterationCap = 1000

// escapeRadiusSq is |z|^2 for the escape radius 2.
const escapeRadiusSq = 4.0

// Density is the glyph alphabet ordered from densest (index 0) to sparsest.
const Density = "1234567890"

// ViewWindow is the rectangle of the complex plane sampled for one frame.
type ViewWindow struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// GridDimensions is the size of a frame in character cells.
type GridDimensions struct {
	Width  int
	Height int
}

// IterationGrid holds one escape count per cell, indexed [row][col].
type IterationGrid [][]int

// IterationsToEscape returns the 0-based iteration at which z = z^2 + c,
// started at z = 0, leaves the radius 2 disc, or IterationCap if it never does.
func IterationsToEscape(x, y float64) int {
	var zre, zim float64
	for i := 0; i < IterationCap; i++ {
		zre, zim = zre*zre-zim*zim+x, 2*zre*zim+y
		if zre*zre+zim*zim > escapeRadiusSq {
			return i
		}
	}
	return IterationCap
}

// GlyphFor buckets an iteration count into a Density glyph. Zero shares the
// densest glyph with points that never escape.
func GlyphFor(iter int) byte {
	var idx int
	switch {
	case iter == 1:
		idx = 9
	case iter >= 2 && iter <= 5:
		idx = 8
	case iter >= 6 && iter <= 10:
		idx = 7
	case iter >= 11 && iter <= 20:
		idx = 6
	case iter >= 21 && iter <= 40:
		idx = 5
	case iter >= 41 && iter <= 60:
		idx = 4
	case iter >= 61 && iter <= 100:
		idx = 3
	case iter >= 101 && iter <= 200:
		idx = 2
	case iter >= 201 && iter <= 400:
		idx = 1
	default:
		idx = 0
	}
	return Density[idx]
}

// PlaneAt maps cell (col, row) of a dims-sized grid to a point in w.
// Row 0 is Ymin.
func (w ViewWindow) PlaneAt(col, row int, dims GridDimensions) (x, y float64) {
	x = w.Xmin + (float64(col)/float64(dims.Width))*(w.Xmax-w.Xmin)
	y = w.Ymin + (float64(row)/float64(dims.Height))*(w.Ymax-w.Ymin)
	return x, y
}

// Center returns the midpoint of the window.
func (w ViewWindow) Center() (x, y float64) {
	return (w.Xmin + w.Xmax) / 2, (w.Ymin + w.Ymax) / 2
}

// CalculateGrid evaluates every cell of the window.
func CalculateGrid(w ViewWindow, dims GridDimensions) IterationGrid {
	grid := make(IterationGrid, dims.Height)
	for row := range grid {
		grid[row] = make([]int, dims.Width)
		for col := range grid[row] {
			x, y := w.PlaneAt(col, row, dims)
			grid[row][col] = IterationsToEscape(x, y)
		}
	}
	return grid
}

// Canvas draws the grid's glyphs onto a new canvas of the same size.
func (g IterationGrid) Canvas() *GlyphCanvas {
	height := len(g)
	width := 0
	if height > 0 {
		width = len(g[0])
	}

	c := NewGlyphCanvas(width, height)
	for y, row := range g {
		for x, iter := range row {
			c.Set(x, y, GlyphFor(iter))
		}
	}
	return c
}

// Render computes one frame and returns it as dims.Height lines of
// dims.Width glyphs.
func Render(w ViewWindow, dims GridDimensions) []string {
	return CalculateGrid(w, dims).Canvas().Lines()
}
