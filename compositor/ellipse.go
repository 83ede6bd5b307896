package compositor

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/lut"
)

// FillEllipse fills the ellipse inscribed in r.
func (c *Compositor) FillEllipse(r blit.Rect, color blit.Color, p blit.Paint) {
	c.ellipse(c.dst.Bounds(), r, 0, color, p)
}

// StrokeEllipse draws the outline of the ellipse inscribed in r. The
// outline lies inside r and is thickness pixels wide. An outline thicker
// than either radius fills the ellipse.
func (c *Compositor) StrokeEllipse(r blit.Rect, thickness int, color blit.Color, p blit.Paint) {
	if thickness <= 0 {
		return
	}
	c.ellipse(c.dst.Bounds(), r, thickness, color, p)
}

// quadrant rasterizes a quarter of an ellipse pair from the curve table.
// All lengths are 16.16 fixed point and measured from the center.
type quadrant struct {
	curve *[lut.CurveSize]uint32

	rx, ry   int64 // outer radii
	irx, iry int64 // inner radii; zero for a filled ellipse
}

// halfWidth returns the half-width of the ellipse with radii (rx, ry)
// at vertical distance d from its center.
func (q *quadrant) halfWidth(d, rx, ry int64) int64 {
	if ry <= 0 || rx <= 0 || d >= ry {
		return 0
	}
	i := (d*(lut.CurveSize-1) + ry/2) / ry
	return rx * int64(q.curve[i]) >> lut.CurveShift
}

// span returns how much of the horizontal interval [a, a+1) lies inside
// [-h, h].
func span(h, a int64) int64 {
	v := min(h, a+fixOne) - max(-h, a)
	return max(v, 0)
}

// coverage returns the coverage of the pixel whose row spans the
// vertical distances [near, far] and whose column starts at horizontal
// distance a. The ellipse boundary inside the row is treated as a
// straight segment.
func (q *quadrant) coverage(near, far, a int64) uint8 {
	area := span(q.halfWidth(far, q.rx, q.ry), a) + span(q.halfWidth(near, q.rx, q.ry), a)
	if q.irx > 0 && q.iry > 0 {
		area -= span(q.halfWidth(far, q.irx, q.iry), a) + span(q.halfWidth(near, q.irx, q.iry), a)
	}
	if area <= 0 {
		return 0
	}
	return uint8(min((area*255+fixOne)>>(fixShift+1), 255))
}

func (c *Compositor) ellipse(win, r blit.Rect, thickness int, color blit.Color, p blit.Paint) {
	if !c.valid || r.Empty() {
		return
	}
	p = normalize(p)
	s := color.Mul(p.Tint)
	if !c.visible(p.Mode, s) {
		return
	}

	q := quadrant{
		curve: c.t.Curve(),
		rx:    int64(r.W) << (fixShift - 1),
		ry:    int64(r.H) << (fixShift - 1),
	}
	if thickness > 0 {
		t := int64(thickness) << fixShift
		q.irx, q.iry = q.rx-t, q.ry-t
	}

	c.withCanvas(win, r, p.Mode, func(cv *canvas) {
		rows := (r.H + 1) / 2
		cols := (r.W + 1) / 2
		for i := range rows {
			// Row i spans [ry-i-1, ry-i] from the center.
			far := q.ry - int64(i)<<fixShift
			near := max(far-fixOne, 0)
			yt, yb := r.Y+i, r.Bottom()-1-i
			for j := range cols {
				cov := q.coverage(near, far, q.rx-int64(j+1)<<fixShift)
				if cov == 0 {
					continue
				}
				xl, xr := r.X+j, r.Right()-1-j
				cv.plot(xl, yt, cov, s)
				if xr != xl {
					cv.plot(xr, yt, cov, s)
				}
				if yb != yt {
					cv.plot(xl, yb, cov, s)
					if xr != xl {
						cv.plot(xr, yb, cov, s)
					}
				}
			}
		}
	})
}
