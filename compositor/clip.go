package compositor

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/surface"
)

// Clip restricts the operations of a Compositor to a rectangle.
//
// Every operation produces, inside the clip rectangle, exactly the pixels
// the unclipped operation would produce there, and leaves every pixel
// outside it untouched. Stretched and tiled sources keep their mapping:
// the source is not rescaled to the visible part.
type Clip struct {
	c *Compositor
	r blit.Rect
}

// Clip returns a view of c that only draws inside r.
func (c *Compositor) Clip(r blit.Rect) *Clip {
	return &Clip{c: c, r: r.Intersect(c.dst.Bounds())}
}

// Rect returns the effective clip rectangle, already intersected with
// the destination bounds.
func (k *Clip) Rect() blit.Rect {
	return k.r
}

// Compositor returns the unclipped compositor.
func (k *Clip) Compositor() *Compositor {
	return k.c
}

// route decides how an operation touching dst is run: directly on the
// compositor when dst is inside the clip, not at all when it is outside,
// and through the clip window otherwise.
func (k *Clip) route(dst blit.Rect) (direct, skip bool) {
	switch {
	case dst.Empty() || k.r.Empty():
		return false, true
	case dst.In(k.r):
		return true, false
	case !dst.Overlaps(k.r):
		return false, true
	default:
		return false, false
	}
}

// Fill is Compositor.Fill restricted to the clip.
func (k *Clip) Fill(r blit.Rect, color blit.Color, p blit.Paint) {
	switch direct, skip := k.route(r); {
	case skip:
	case direct:
		k.c.Fill(r, color, p)
	default:
		k.c.fill(k.r, r, color, p)
	}
}

// FillSubpixel is Compositor.FillSubpixel restricted to the clip.
func (k *Clip) FillSubpixel(rf blit.RectF, color blit.Color, p blit.Paint) {
	switch direct, skip := k.route(blit.OuterRect(rf)); {
	case skip:
	case direct:
		k.c.FillSubpixel(rf, color, p)
	default:
		k.c.fillSubpixel(k.r, rf, color, p)
	}
}

// Blit is Compositor.Blit restricted to the clip.
func (k *Clip) Blit(src surface.Surface, srcRect blit.Rect, at blit.Point, p blit.Paint) {
	switch direct, skip := k.route(srcRect.At(at)); {
	case skip:
	case direct:
		k.c.Blit(src, srcRect, at, p)
	default:
		k.c.blit(k.r, src, srcRect, at, p)
	}
}

// StretchBlit is Compositor.StretchBlit restricted to the clip. The
// visible part samples the source at the positions of the unclipped
// call.
func (k *Clip) StretchBlit(src surface.Surface, srcRect, dstRect blit.Rect, p blit.Paint) {
	switch direct, skip := k.route(dstRect); {
	case skip:
	case direct:
		k.c.StretchBlit(src, srcRect, dstRect, p)
	default:
		k.c.stretch(k.r, src, srcRect, dstRect, p)
	}
}

// TileBlit is Compositor.TileBlit restricted to the clip. Tiles keep
// the phase of the unclipped call.
func (k *Clip) TileBlit(src surface.Surface, srcRect, dstRect blit.Rect, p blit.Paint) {
	switch direct, skip := k.route(dstRect); {
	case skip:
	case direct:
		k.c.TileBlit(src, srcRect, dstRect, p)
	default:
		k.c.tile(k.r, src, srcRect, dstRect, p)
	}
}

// Line is Compositor.Line restricted to the clip.
func (k *Clip) Line(p0, p1 blit.Point, thickness int, color blit.Color, p blit.Paint) {
	switch direct, skip := k.route(lineBounds(p0, p1, thickness)); {
	case skip:
	case direct:
		k.c.Line(p0, p1, thickness, color, p)
	default:
		k.c.line(k.r, p0, p1, thickness, color, p)
	}
}

// FillEllipse is Compositor.FillEllipse restricted to the clip.
func (k *Clip) FillEllipse(r blit.Rect, color blit.Color, p blit.Paint) {
	switch direct, skip := k.route(r); {
	case skip:
	case direct:
		k.c.FillEllipse(r, color, p)
	default:
		k.c.ellipse(k.r, r, 0, color, p)
	}
}

// StrokeEllipse is Compositor.StrokeEllipse restricted to the clip.
func (k *Clip) StrokeEllipse(r blit.Rect, thickness int, color blit.Color, p blit.Paint) {
	if thickness <= 0 {
		return
	}
	switch direct, skip := k.route(r); {
	case skip:
	case direct:
		k.c.StrokeEllipse(r, thickness, color, p)
	default:
		k.c.ellipse(k.r, r, thickness, color, p)
	}
}

// Wave is Compositor.Wave restricted to the clip.
func (k *Clip) Wave(area blit.Rect, a, b []float32, style WaveStyle, p blit.Paint) {
	switch direct, skip := k.route(area); {
	case skip:
	case direct:
		k.c.Wave(area, a, b, style, p)
	default:
		k.c.wave(k.r, area, a, b, style, p)
	}
}
