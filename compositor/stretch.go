package compositor

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/surface"
)

// Stretch sample positions are 15-bit fixed point.
const (
	stretchShift = 15
	stretchOne   = 1 << stretchShift
	stretchMask  = stretchOne - 1
)

// StretchBlit resamples srcRect of src onto dstRect. Sampling follows
// the source's scale mode: Nearest picks the pixel under each sample,
// Interpolate blends the four pixels around it. Samples never read
// outside srcRect. srcRect must lie inside src; otherwise nothing is
// drawn.
//
// With equal sizes the result equals Blit in both scale modes.
func (c *Compositor) StretchBlit(src surface.Surface, srcRect, dstRect blit.Rect, p blit.Paint) {
	c.stretch(c.dst.Bounds(), src, srcRect, dstRect, p)
}

// stretchStep returns the per-pixel source advance for an axis.
// Interpolated upscales spread srcLen-1 source intervals over dstLen
// samples. The last sample sits at (dstLen-1)(srcLen-1)/dstLen, short of
// the last source pixel, so the far edge is approached but not reached.
func stretchStep(srcLen, dstLen int, interp bool) int {
	if interp && srcLen < dstLen {
		srcLen--
	}
	return (srcLen << stretchShift) / dstLen
}

func (c *Compositor) stretch(win blit.Rect, src surface.Surface, sr, dr blit.Rect, p blit.Paint) {
	if !c.valid || sr.Empty() || dr.Empty() {
		return
	}
	if !sr.In(src.Bounds()) {
		blit.Logger().Debug("compositor: stretch source outside surface", "rect", sr, "bounds", src.Bounds())
		return
	}
	if sr.Size() == dr.Size() {
		c.blit(win, src, sr, dr.Pos(), p)
		return
	}

	out := dr.Intersect(win)
	if out.Empty() {
		return
	}
	p = sourceMode(src, p)
	if skipSource(p) {
		return
	}

	sv, done, ok := c.lockSrc(src, sr)
	if !ok {
		return
	}
	defer done()

	dv, ok := c.lockDst(out, dstMode(p.Mode))
	if !ok {
		return
	}
	defer c.dst.Unlock()

	interp := src.ScaleMode() == surface.Interpolate
	stepX := stretchStep(sr.W, dr.W, interp)
	stepY := stretchStep(sr.H, dr.H, interp)

	// Positions are relative to sr; the window only moves the start.
	x0 := (out.X - dr.X) * stepX
	fy := (out.Y - dr.Y) * stepY

	f := blend.GetFunc(p.Mode)
	white := p.Tint == blit.White
	for y := out.Y; y < out.Bottom(); y, fy = y+1, fy+stepY {
		drow := dv.row(out.X, y, out.W)
		fx := x0
		for i, do := 0, 0; i < out.W; i, do, fx = i+1, do+dv.l.BPP, fx+stepX {
			var col blit.Color
			if interp {
				col = sampleBilinear(&sv, sr, fx, fy)
			} else {
				col = sv.l.Read(sv.at(sr.X+fx>>stretchShift, sr.Y+fy>>stretchShift))
			}
			if !white {
				col = col.Mul(p.Tint)
			}
			f(c.t, drow[do:do+dv.l.BPP], &dv.l, col)
		}
	}
}

// sampleBilinear blends the four pixels around the fixed-point position
// (fx, fy) relative to sr. Neighbours past the last row or column of sr
// are clamped to it.
func sampleBilinear(s *view, sr blit.Rect, fx, fy int) blit.Color {
	x := fx >> stretchShift
	y := fy >> stretchShift
	x1 := min(x+1, sr.W-1)
	y1 := min(y+1, sr.H-1)

	fx &= stretchMask
	fy &= stretchMask
	m22 := fx * fy >> stretchShift
	m12 := fx - m22
	m21 := fy - m22
	m11 := stretchOne - fx - fy + m22

	c11 := s.l.Read(s.at(sr.X+x, sr.Y+y))
	c12 := s.l.Read(s.at(sr.X+x1, sr.Y+y))
	c21 := s.l.Read(s.at(sr.X+x, sr.Y+y1))
	c22 := s.l.Read(s.at(sr.X+x1, sr.Y+y1))

	mix := func(a, b, c, d uint8) uint8 {
		return uint8((int(a)*m11 + int(b)*m12 + int(c)*m21 + int(d)*m22) >> stretchShift)
	}
	return blit.Color{
		R: mix(c11.R, c12.R, c21.R, c22.R),
		G: mix(c11.G, c12.G, c21.G, c22.G),
		B: mix(c11.B, c12.B, c21.B, c22.B),
		A: mix(c11.A, c12.A, c21.A, c22.A),
	}
}
