package compositor

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/blend"
)

// Fill fills r with color multiplied by the paint tint.
//
// Blend fills with a zero effective alpha and Add fills that add nothing
// return without touching the destination. Opaque, Multiply and Invert
// fills always run.
func (c *Compositor) Fill(r blit.Rect, color blit.Color, p blit.Paint) {
	c.fill(c.dst.Bounds(), r, color, p)
}

func (c *Compositor) fill(win, r blit.Rect, color blit.Color, p blit.Paint) {
	if !c.valid {
		return
	}
	r = r.Intersect(win)
	if r.Empty() {
		return
	}
	p = normalize(p)
	s := color.Mul(p.Tint)
	if !c.visible(p.Mode, s) {
		return
	}

	v, ok := c.lockDst(r, dstMode(p.Mode))
	if !ok {
		return
	}
	defer c.dst.Unlock()

	f := blend.GetFunc(p.Mode)
	for y := r.Y; y < r.Bottom(); y++ {
		blend.Span(c.t, f, v.row(r.X, y, r.W), r.W, &v.l, s)
	}
}

// FillSubpixel fills a rectangle with sub-pixel bounds. Pixels fully
// inside rf are filled as by Fill; pixels on its edges are blended with
// a coverage equal to their overlap with rf. A rectangle with integer
// bounds produces exactly the result of Fill.
func (c *Compositor) FillSubpixel(rf blit.RectF, color blit.Color, p blit.Paint) {
	c.fillSubpixel(c.dst.Bounds(), rf, color, p)
}

func (c *Compositor) fillSubpixel(win blit.Rect, rf blit.RectF, color blit.Color, p blit.Paint) {
	if !c.valid || rf.Empty() {
		return
	}
	p = normalize(p)
	s := color.Mul(p.Tint)
	if !c.visible(p.Mode, s) {
		return
	}

	inner := blit.InnerRect(rf)
	c.fill(win, inner, color, p)

	outer := blit.OuterRect(rf)
	if outer == inner {
		return
	}

	// Only the part of the edge ring inside the window is walked.
	r := outer.Intersect(win)
	if r.Empty() {
		return
	}
	covX := edgeCoverage(rf.X, rf.Right(), r.X, r.W)
	covY := edgeCoverage(rf.Y, rf.Bottom(), r.Y, r.H)

	c.withCanvas(win, r, p.Mode, func(cv *canvas) {
		for j, cy := range covY {
			y := r.Y + j
			if inner.Empty() || y < inner.Y || y >= inner.Bottom() {
				for i, cx := range covX {
					cv.plot(r.X+i, y, c.t.Mul(cx, cy), s)
				}
				continue
			}
			for x := r.X; x < min(inner.X, r.Right()); x++ {
				cv.plot(x, y, c.t.Mul(covX[x-r.X], cy), s)
			}
			for x := max(inner.Right(), r.X); x < r.Right(); x++ {
				cv.plot(x, y, c.t.Mul(covX[x-r.X], cy), s)
			}
		}
	})
}

// edgeCoverage returns, for the n pixels starting at x0, how much of
// each pixel lies inside [lo, hi), scaled to 0..255.
func edgeCoverage(lo, hi float32, x0, n int) []uint8 {
	cov := make([]uint8, n)
	for i := range cov {
		px := float32(x0 + i)
		overlap := math32.Min(hi, px+1) - math32.Max(lo, px)
		if overlap <= 0 {
			continue
		}
		cov[i] = uint8(math32.Round(math32.Min(overlap, 1) * 255))
	}
	return cov
}
