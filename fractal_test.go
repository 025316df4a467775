package main

import (
	"strings"
	"testing"
)

func TestIterationsToEscape(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"origin never escapes", 0, 0, IterationCap},
		{"far point escapes on first check", 10, 10, 0},
		{"real axis tip", -2, 0, IterationCap},
		{"period two cycle", -1, 0, IterationCap},
		{"imaginary unit", 0, 1, IterationCap},
		{"on the radius then out", 2, 0, 1},
		{"one escapes on third step", 1, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IterationsToEscape(tt.x, tt.y); got != tt.want {
				t.Errorf("IterationsToEscape(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestIterationsToEscapeRangeAndDeterminism(t *testing.T) {
	for x := -2.5; x <= 1.5; x += 0.137 {
		for y := -1.5; y <= 1.5; y += 0.093 {
			first := IterationsToEscape(x, y)
			if first < 0 || first > IterationCap {
				t.Fatalf("IterationsToEscape(%v, %v) = %d, out of range", x, y, first)
			}
			if again := IterationsToEscape(x, y); again != first {
				t.Fatalf("IterationsToEscape(%v, %v) not deterministic: %d then %d", x, y, first, again)
			}
		}
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		iter  int
		index int
	}{
		// Zero shares the densest glyph with points inside the set.
		{0, 0},
		{1, 9},
		{2, 8},
		{5, 8},
		{6, 7},
		{10, 7},
		{11, 6},
		{20, 6},
		{21, 5},
		{40, 5},
		{41, 4},
		{60, 4},
		{61, 3},
		{100, 3},
		{101, 2},
		{200, 2},
		{201, 1},
		{400, 1},
		{401, 0},
		{999, 0},
		{IterationCap, 0},
		{5000, 0},
	}

	for _, tt := range tests {
		if got, want := GlyphFor(tt.iter), Density[tt.index]; got != want {
			t.Errorf("GlyphFor(%d) = %q, want %q (index %d)", tt.iter, got, want, tt.index)
		}
	}
}

func TestPlaneAt(t *testing.T) {
	w := ViewWindow{Xmin: -2, Xmax: 2, Ymin: -1, Ymax: 1}
	dims := GridDimensions{Width: 4, Height: 2}

	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 0, -2, -1},
		{3, 0, 1, -1},
		{0, 1, -2, 0},
		{3, 1, 1, 0},
	}
	for _, tt := range tests {
		x, y := w.PlaneAt(tt.col, tt.row, dims)
		if x != tt.x || y != tt.y {
			t.Errorf("PlaneAt(%d, %d) = (%v, %v), want (%v, %v)", tt.col, tt.row, x, y, tt.x, tt.y)
		}
	}
}

func TestCalculateGrid(t *testing.T) {
	w := ViewWindow{Xmin: -2, Xmax: 2, Ymin: -1, Ymax: 1}
	dims := GridDimensions{Width: 4, Height: 2}

	grid := CalculateGrid(w, dims)
	if len(grid) != dims.Height {
		t.Fatalf("got %d rows, want %d", len(grid), dims.Height)
	}
	for r, row := range grid {
		if len(row) != dims.Width {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), dims.Width)
		}
		for c, iter := range row {
			x, y := w.PlaneAt(c, r, dims)
			if want := IterationsToEscape(x, y); iter != want {
				t.Errorf("grid[%d][%d] = %d, want %d", r, c, iter, want)
			}
		}
	}

	// (-2, -1) lies outside the radius 2 disc.
	if grid[0][0] != 0 {
		t.Errorf("top-left cell = %d, want 0", grid[0][0])
	}
	// (0, 0) is the cell at column 2 of the bottom row.
	if grid[1][2] != IterationCap {
		t.Errorf("origin cell = %d, want %d", grid[1][2], IterationCap)
	}
}

func TestRenderShape(t *testing.T) {
	windows := []ViewWindow{
		{Xmin: -2, Xmax: 2, Ymin: -1, Ymax: 1},
		{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},
		{Xmin: 10, Xmax: 11, Ymin: 10, Ymax: 11},
	}
	sizes := []GridDimensions{{1, 1}, {4, 2}, {17, 9}, frameDims}

	for _, w := range windows {
		for _, dims := range sizes {
			lines := Render(w, dims)
			if len(lines) != dims.Height {
				t.Fatalf("Render(%v, %v) returned %d lines, want %d", w, dims, len(lines), dims.Height)
			}
			for i, line := range lines {
				if len(line) != dims.Width {
					t.Fatalf("line %d has width %d, want %d", i, len(line), dims.Width)
				}
				for _, r := range line {
					if !strings.ContainsRune(Density, r) {
						t.Fatalf("line %d contains %q outside the density alphabet", i, r)
					}
				}
			}
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	w := ViewWindow{Xmin: -1.5, Xmax: 0.5, Ymin: -1, Ymax: 1}
	first := strings.Join(Render(w, frameDims), "\n")
	second := strings.Join(Render(w, frameDims), "\n")
	if first != second {
		t.Fatal("rendering the same window twice produced different output")
	}
}

func TestRenderFullSetView(t *testing.T) {
	w := ViewWindow{Xmin: -2, Xmax: 2, Ymin: -2, Ymax: 2}
	lines := Render(w, frameDims)

	// Row 25 is y = 0 and column 50 is x = 0.
	if got := lines[25][50]; got != Density[0] {
		t.Errorf("origin glyph = %q, want %q", got, Density[0])
	}
	// Column 0 of row 0 is (-2, -2), outside the escape radius.
	if got := lines[0][0]; got != GlyphFor(0) {
		t.Errorf("corner glyph = %q, want %q", got, GlyphFor(0))
	}
}
