// Package blend implements the per-channel compositing formulas of the
// blit blend modes over raw 8-bit pixel bytes.
//
// All formulas work on straight (non-premultiplied) alpha and never
// divide: products are normalized through the lut division table and
// saturating sums through the limit table. A source color handed to a
// Func already has the tint and any coverage folded in.
package blend

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/lut"
)

// Func combines the source color s with the destination pixel d.
// d is at least l.BPP bytes long.
type Func func(t *lut.Tables, d []byte, l *Layout, s blit.Color)

// GetFunc returns the combine function for mode.
// Unknown modes resolve to Blend.
func GetFunc(mode blit.BlendMode) Func {
	switch mode {
	case blit.Opaque:
		return opaque
	case blit.Blend:
		return sourceOver
	case blit.Add:
		return add
	case blit.Multiply:
		return multiply
	case blit.Invert:
		return invert
	default:
		return sourceOver
	}
}

// Coverage returns the combine function and source color to plot s with
// partial coverage cov (255 = fully covered). Opaque pixels that are only
// partly covered are blended with alpha cov so edges stay smooth.
func Coverage(t *lut.Tables, mode blit.BlendMode, s blit.Color, cov uint8) (Func, blit.Color) {
	if cov == 255 {
		return GetFunc(mode), s
	}
	switch mode {
	case blit.Opaque:
		s.A = cov
		return sourceOver, s
	case blit.Multiply:
		// Multiply ignores alpha; fade the factor towards white instead.
		k := 255 * (255 - int(cov))
		c := int(cov)
		s.R = t.Div[int(s.R)*c+k]
		s.G = t.Div[int(s.G)*c+k]
		s.B = t.Div[int(s.B)*c+k]
		return multiply, s
	}
	s.A = t.Div[int(s.A)*int(cov)]
	return GetFunc(mode), s
}

// opaque: d = s.
func opaque(_ *lut.Tables, d []byte, l *Layout, s blit.Color) {
	d[l.R] = s.R
	d[l.G] = s.G
	d[l.B] = s.B
	if l.A >= 0 {
		d[l.A] = s.A
	}
}

// sourceOver: d = s*a + d*(1-a), da = a + da*(1-a).
func sourceOver(t *lut.Tables, d []byte, l *Layout, s blit.Color) {
	a := int(s.A)
	ia := 255 - a
	d[l.R] = t.Div[int(s.R)*a+int(d[l.R])*ia]
	d[l.G] = t.Div[int(s.G)*a+int(d[l.G])*ia]
	d[l.B] = t.Div[int(s.B)*a+int(d[l.B])*ia]
	if l.A >= 0 {
		d[l.A] = uint8(a) + t.Div[int(d[l.A])*ia]
	}
}

// add: d = min(d + s*a, 255). Alpha is kept.
func add(t *lut.Tables, d []byte, l *Layout, s blit.Color) {
	a := int(s.A)
	d[l.R] = t.Limit[int(d[l.R])+int(t.Div[int(s.R)*a])]
	d[l.G] = t.Limit[int(d[l.G])+int(t.Div[int(s.G)*a])]
	d[l.B] = t.Limit[int(d[l.B])+int(t.Div[int(s.B)*a])]
}

// multiply: d = d*s. Alpha is kept.
func multiply(t *lut.Tables, d []byte, l *Layout, s blit.Color) {
	d[l.R] = t.Div[int(d[l.R])*int(s.R)]
	d[l.G] = t.Div[int(d[l.G])*int(s.G)]
	d[l.B] = t.Div[int(d[l.B])*int(s.B)]
}

// invert: d moves towards 255-d by k = s*a. Alpha is kept.
func invert(t *lut.Tables, d []byte, l *Layout, s blit.Color) {
	a := int(s.A)
	d[l.R] = invertChannel(t, d[l.R], t.Div[int(s.R)*a])
	d[l.G] = invertChannel(t, d[l.G], t.Div[int(s.G)*a])
	d[l.B] = invertChannel(t, d[l.B], t.Div[int(s.B)*a])
}

func invertChannel(t *lut.Tables, d, k uint8) uint8 {
	return t.Div[int(255-d)*int(k)+int(d)*int(255-k)]
}

// Span applies f with the constant color s to n consecutive pixels of row.
func Span(t *lut.Tables, f Func, row []byte, n int, l *Layout, s blit.Color) {
	for i, off := 0, 0; i < n; i, off = i+1, off+l.BPP {
		f(t, row[off:off+l.BPP], l, s)
	}
}
