package compositor

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/surface"
)

// Blit copies srcRect of src to the destination with its top-left
// corner at at. Each source pixel is multiplied by the paint tint and
// combined with the destination per the paint's blend mode. Blend
// degrades to Opaque when src has no alpha channel.
//
// src may be the destination surface; overlapping areas are handled.
func (c *Compositor) Blit(src surface.Surface, srcRect blit.Rect, at blit.Point, p blit.Paint) {
	c.blit(c.dst.Bounds(), src, srcRect, at, p)
}

// TileBlit repeats srcRect of src over dstRect, row by row starting at
// the top-left corner. The last tile of each row and column is cut to
// what remains of dstRect. When both rectangles have the same size the
// result equals Blit.
func (c *Compositor) TileBlit(src surface.Surface, srcRect, dstRect blit.Rect, p blit.Paint) {
	c.tile(c.dst.Bounds(), src, srcRect, dstRect, p)
}

// sourceMode resolves the blend mode used to draw pixels of src. Blend
// from a source without alpha is a copy only when the tint is opaque too.
func sourceMode(src surface.Surface, p blit.Paint) blit.Paint {
	p = normalize(p)
	if p.Mode == blit.Blend && p.Tint.A == 255 && !src.Format().HasAlpha() {
		p.Mode = blit.Opaque
	}
	return p
}

// skipSource reports whether drawing any pixel of a source with paint p
// leaves the destination unchanged.
func skipSource(p blit.Paint) bool {
	return (p.Mode == blit.Blend || p.Mode == blit.Add) && p.Tint.A == 0
}

func (c *Compositor) blit(win blit.Rect, src surface.Surface, sr blit.Rect, at blit.Point, p blit.Paint) {
	if !c.valid {
		return
	}

	// Clip the source to its surface, then the target to the window, and
	// shift the other rectangle by the same amount.
	clipped := sr.Intersect(src.Bounds())
	at = at.Add(clipped.Pos().Sub(sr.Pos()))
	sr = clipped

	dr := sr.At(at).Intersect(win)
	if dr.Empty() {
		return
	}
	sr = dr.At(sr.Pos().Add(dr.Pos().Sub(at)))

	p = sourceMode(src, p)
	if skipSource(p) {
		return
	}

	sv, done, ok := c.lockSrc(src, sr)
	if !ok {
		return
	}
	defer done()

	dv, ok := c.lockDst(dr, dstMode(p.Mode))
	if !ok {
		return
	}
	defer c.dst.Unlock()

	compose(c, &dv, &sv, sr, dr, p)
}

// compose combines the pixels of sr in s with the pixels of dr in d.
// The rectangles have the same size and lie inside their views.
func compose(c *Compositor, d, s *view, sr, dr blit.Rect, p blit.Paint) {
	if p.Mode == blit.Opaque && p.Tint == blit.White && d.l == s.l {
		n := dr.W * d.l.BPP
		for y := 0; y < dr.H; y++ {
			copy(d.row(dr.X, dr.Y+y, dr.W)[:n], s.row(sr.X, sr.Y+y, sr.W))
		}
		return
	}

	f := blend.GetFunc(p.Mode)
	white := p.Tint == blit.White
	for y := 0; y < dr.H; y++ {
		drow := d.row(dr.X, dr.Y+y, dr.W)
		srow := s.row(sr.X, sr.Y+y, sr.W)
		for x, do, so := 0, 0, 0; x < dr.W; x, do, so = x+1, do+d.l.BPP, so+s.l.BPP {
			col := s.l.Read(srow[so : so+s.l.BPP])
			if !white {
				col = col.Mul(p.Tint)
			}
			f(c.t, drow[do:do+d.l.BPP], &d.l, col)
		}
	}
}

func (c *Compositor) tile(win blit.Rect, src surface.Surface, sr, dr blit.Rect, p blit.Paint) {
	if !c.valid {
		return
	}
	sr = sr.Intersect(src.Bounds())
	if sr.Empty() {
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

	// Tiles are laid out from dr's corner so that the phase does not
	// depend on the window.
	first := blit.Pt(
		dr.X+(out.X-dr.X)/sr.W*sr.W,
		dr.Y+(out.Y-dr.Y)/sr.H*sr.H,
	)
	for ty := first.Y; ty < out.Bottom(); ty += sr.H {
		th := min(sr.H, dr.Bottom()-ty)
		for tx := first.X; tx < out.Right(); tx += sr.W {
			tw := min(sr.W, dr.Right()-tx)
			t := blit.Rt(tx, ty, tw, th).Intersect(out)
			if t.Empty() {
				continue
			}
			st := blit.Rt(sr.X+t.X-tx, sr.Y+t.Y-ty, t.W, t.H)
			compose(c, &dv, &sv, st, t, p)
		}
	}
}
