package blend

import "github.com/gogpu/blit"

// Layout locates the 8-bit channels inside a pixel.
type Layout struct {
	// BPP is the number of bytes per pixel.
	BPP int

	// R, G, B and A are byte offsets within a pixel. A is -1 when the
	// format carries no alpha channel.
	R, G, B, A int
}

// HasAlpha reports whether the pixel carries an alpha channel.
func (l *Layout) HasAlpha() bool {
	return l.A >= 0
}

// Read returns the color of the pixel p. Pixels without alpha read as
// opaque.
func (l *Layout) Read(p []byte) blit.Color {
	c := blit.Color{R: p[l.R], G: p[l.G], B: p[l.B], A: 255}
	if l.A >= 0 {
		c.A = p[l.A]
	}
	return c
}

// Write stores c into the pixel p.
func (l *Layout) Write(p []byte, c blit.Color) {
	p[l.R] = c.R
	p[l.G] = c.G
	p[l.B] = c.B
	if l.A >= 0 {
		p[l.A] = c.A
	}
}
