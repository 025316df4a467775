package main

import (
	"bytes"
)

// GlyphCanvas is a fixed-size grid of single byte glyphs.
type GlyphCanvas struct {
	Width  int
	Height int
	buffer []byte
}

// NewGlyphCanvas creates a canvas filled with the sparsest glyph.
func NewGlyphCanvas(width, height int) *GlyphCanvas {
	buf := bytes.Repeat([]byte{Density[len(Density)-1]}, width*height)
	return &GlyphCanvas{
		Width:  width,
		Height: height,
		buffer: buf,
	}
}

// Set places a glyph on the canvas. Out of range cells are ignored.
func (c *GlyphCanvas) Set(x, y int, glyph byte) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.buffer[y*c.Width+x] = glyph
}

// Lines returns one string per canvas row.
func (c *GlyphCanvas) Lines() []string {
	lines := make([]string, c.Height)
	for y := range lines {
		lines[y] = string(c.buffer[y*c.Width : (y+1)*c.Width])
	}
	return lines
}

// String returns the canvas rows, each terminated by a newline.
func (c *GlyphCanvas) String() string {
	var buf bytes.Buffer

	for y := 0; y < c.Height; y++ {
		buf.Write(c.buffer[y*c.Width : (y+1)*c.Width])
		buf.WriteByte('\n')
	}

	return buf.String()
}

func (c *GlyphCanvas) get(x, y int) byte {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0
	}
	return c.buffer[y*c.Width+x]
}
