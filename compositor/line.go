package compositor

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/blit"
)

// Line positions and slopes are 16.16 fixed point.
const (
	fixShift = 16
	fixOne   = 1 << fixShift
	fixHalf  = fixOne / 2
)

// brushPhases is the number of sub-pixel positions a brush profile is
// precomputed for.
const (
	brushPhaseBits = 4
	brushPhases    = 1 << brushPhaseBits
)

// brush holds the cross-section coverage of a line for every sub-pixel
// phase of its leading edge.
type brush [brushPhases][]uint8

// newBrush computes the profile of a span ext long (16.16).
func newBrush(ext int) *brush {
	var b brush
	for ph := range b {
		lo := ph << (fixShift - brushPhaseBits)
		hi := lo + ext
		n := (hi + fixOne - 1) >> fixShift
		cov := make([]uint8, n)
		for k := range cov {
			top := max(k<<fixShift, lo)
			bot := min((k+1)<<fixShift, hi)
			if bot > top {
				cov[k] = uint8(((bot-top)*255 + fixHalf) >> fixShift)
			}
		}
		b[ph] = cov
	}
	return &b
}

// Line draws an anti-aliased line of the given thickness between the
// centers of the pixels p0 and p1. The ends are cut square to the major
// axis.
func (c *Compositor) Line(p0, p1 blit.Point, thickness int, color blit.Color, p blit.Paint) {
	c.line(c.dst.Bounds(), p0, p1, thickness, color, p)
}

// lineBounds returns the pixels a line can touch.
func lineBounds(p0, p1 blit.Point, thickness int) blit.Rect {
	// The cross-section grows with the slope up to thickness*sqrt(2).
	pad := thickness + 1
	x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
	y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	return blit.Rt(x0-pad, y0-pad, x1-x0+1+2*pad, y1-y0+1+2*pad)
}

func (c *Compositor) line(win blit.Rect, p0, p1 blit.Point, thickness int, color blit.Color, p blit.Paint) {
	if !c.valid || thickness <= 0 || p0 == p1 {
		return
	}
	p = normalize(p)
	s := color.Mul(p.Tint)
	if !c.visible(p.Mode, s) {
		return
	}

	// Walk the major axis; steep lines are drawn transposed.
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	steep := abs(dy) > abs(dx)
	if steep {
		p0.X, p0.Y = p0.Y, p0.X
		p1.X, p1.Y = p1.Y, p1.X
		dx, dy = dy, dx
	}
	if dx < 0 {
		p0, p1 = p1, p0
		dx, dy = -dx, -dy
	}

	slope := (dy << fixShift) / dx
	sf := float32(slope) / fixOne
	ext := int(float32(thickness)*math32.Sqrt(1+sf*sf)*fixOne + 0.5)
	br := newBrush(ext)

	bbox := lineBounds(p0, p1, thickness)
	if steep {
		bbox = blit.Rt(bbox.Y, bbox.X, bbox.H, bbox.W)
	}
	c.withCanvas(win, bbox, p.Mode, func(cv *canvas) {
		center := p0.Y<<fixShift + fixHalf
		for i := 0; i <= dx; i, center = i+1, center+slope {
			top := center - ext/2
			row := top >> fixShift
			prof := br[(top&(fixOne-1))>>(fixShift-brushPhaseBits)]
			major := p0.X + i
			for k, cov := range prof {
				if steep {
					cv.plot(row+k, major, cov, s)
				} else {
					cv.plot(major, row+k, cov, s)
				}
			}
		}
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
