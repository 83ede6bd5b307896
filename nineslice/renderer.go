package nineslice

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/compositor"
	"github.com/gogpu/blit/surface"
)

// Target receives the blits of a drawn block. Both *compositor.Compositor
// and *compositor.Clip implement it.
type Target interface {
	Blit(src surface.Surface, srcRect blit.Rect, at blit.Point, p blit.Paint)
	StretchBlit(src surface.Surface, srcRect, dstRect blit.Rect, p blit.Paint)
	TileBlit(src surface.Surface, srcRect, dstRect blit.Rect, p blit.Paint)
}

var (
	_ Target = (*compositor.Compositor)(nil)
	_ Target = (*compositor.Clip)(nil)
)

// Renderer draws blocks with a fixed paint.
type Renderer struct {
	Paint blit.Paint
}

// NewRenderer returns a renderer that alpha-blends untinted.
func NewRenderer() *Renderer {
	return &Renderer{Paint: blit.PaintOf(blit.Blend)}
}

// Draw scales block b of src into dst on t.
//
// Corners keep their size. When the borders do not fit into dst they
// are shrunk in proportion, and each corner is cut from its outer edge.
// A block whose size equals dst is copied in one blit; blocks without
// borders, and blocks that only scale along one axis, are drawn with
// fewer blits than the nine parts. All paths produce the same pixels.
func (r *Renderer) Draw(t Target, src surface.Surface, b Block, dst blit.Rect) {
	if b.Skip || dst.Empty() {
		return
	}
	if !b.Valid() {
		blit.Logger().Debug("nineslice: invalid block", "src", b.Src, "borders", b.Borders)
		return
	}

	switch s := b.Src; {
	case s.Size() == dst.Size():
		t.Blit(src, s, dst.Pos(), r.Paint)
	case b.Borders.IsZero():
		r.part(t, src, b.tiled(TileCenter), s, dst)
	case s.W == dst.W && b.sameTiling(TileLeft, TileCenter, TileRight):
		r.bar(t, src, b, dst, false)
	case s.H == dst.H && b.sameTiling(TileTop, TileCenter, TileBottom):
		r.bar(t, src, b, dst, true)
	default:
		r.general(t, src, b, dst)
	}
}

// DrawClipped draws b through a clip. Blocks inside the clip skip the
// per-blit clipping and blocks outside it are not drawn.
func (r *Renderer) DrawClipped(c *compositor.Clip, src surface.Surface, b Block, dst blit.Rect) {
	switch cr := c.Rect(); {
	case !dst.Overlaps(cr):
		return
	case dst.In(cr):
		r.Draw(c.Compositor(), src, b, dst)
	default:
		r.Draw(c, src, b, dst)
	}
}

func (b Block) sameTiling(parts ...Tile) bool {
	for _, p := range parts[1:] {
		if b.tiled(p) != b.tiled(parts[0]) {
			return false
		}
	}
	return true
}

func (r *Renderer) part(t Target, src surface.Surface, tile bool, sr, dr blit.Rect) {
	if sr.Empty() || dr.Empty() {
		return
	}
	if tile {
		t.TileBlit(src, sr, dr, r.Paint)
	} else {
		t.StretchBlit(src, sr, dr, r.Paint)
	}
}

// shrink fits the borders a and b into length n, splitting n in their
// ratio when they do not fit.
func shrink(a, b, n int) (int, int) {
	if a+b <= n {
		return a, b
	}
	a = a * n / (a + b)
	return a, n - a
}

// bar draws a block that scales along a single axis: two end strips and
// one middle strip spanning the full block. horizontal selects the
// strips' direction of travel.
func (r *Renderer) bar(t Target, src surface.Surface, b Block, dst blit.Rect, horizontal bool) {
	s := b.Src
	if horizontal {
		l, rt := shrink(b.Borders.Left, b.Borders.Right, dst.W)
		t.Blit(src, blit.Rt(s.X, s.Y, l, s.H), dst.Pos(), r.Paint)
		t.Blit(src, blit.Rt(s.Right()-rt, s.Y, rt, s.H), blit.Pt(dst.Right()-rt, dst.Y), r.Paint)
		r.part(t, src, b.tiled(TileCenter),
			blit.Rt(s.X+b.Borders.Left, s.Y, s.W-b.Borders.Horizontal(), s.H),
			blit.Rt(dst.X+l, dst.Y, dst.W-l-rt, dst.H))
		return
	}

	top, bot := shrink(b.Borders.Top, b.Borders.Bottom, dst.H)
	t.Blit(src, blit.Rt(s.X, s.Y, s.W, top), dst.Pos(), r.Paint)
	t.Blit(src, blit.Rt(s.X, s.Bottom()-bot, s.W, bot), blit.Pt(dst.X, dst.Bottom()-bot), r.Paint)
	r.part(t, src, b.tiled(TileCenter),
		blit.Rt(s.X, s.Y+b.Borders.Top, s.W, s.H-b.Borders.Vertical()),
		blit.Rt(dst.X, dst.Y+top, dst.W, dst.H-top-bot))
}

// general draws all nine parts.
func (r *Renderer) general(t Target, src surface.Surface, b Block, dst blit.Rect) {
	s := b.Src
	bd := b.Borders
	l, rt := shrink(bd.Left, bd.Right, dst.W)
	top, bot := shrink(bd.Top, bd.Bottom, dst.H)

	// Source and destination columns and rows of the grid. The last
	// column and row start at the outer edge minus the shrunk border.
	sx := [3]int{s.X, s.X + bd.Left, s.Right() - rt}
	sw := [3]int{l, s.W - bd.Horizontal(), rt}
	sy := [3]int{s.Y, s.Y + bd.Top, s.Bottom() - bot}
	sh := [3]int{top, s.H - bd.Vertical(), bot}

	dx := [3]int{dst.X, dst.X + l, dst.Right() - rt}
	dw := [3]int{l, dst.W - l - rt, rt}
	dy := [3]int{dst.Y, dst.Y + top, dst.Bottom() - bot}
	dh := [3]int{top, dst.H - top - bot, bot}

	tiles := [3][3]Tile{
		{0, TileTop, 0},
		{TileLeft, TileCenter, TileRight},
		{0, TileBottom, 0},
	}
	for row := range 3 {
		for col := range 3 {
			sr := blit.Rt(sx[col], sy[row], sw[col], sh[row])
			dr := blit.Rt(dx[col], dy[row], dw[col], dh[row])
			if row != 1 && col != 1 {
				if !sr.Empty() {
					t.Blit(src, sr, dr.Pos(), r.Paint)
				}
				continue
			}
			r.part(t, src, b.tiled(tiles[row][col]), sr, dr)
		}
	}
}
