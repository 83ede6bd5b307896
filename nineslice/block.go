package nineslice

import (
	"github.com/gogpu/blit"
)

// Borders are the insets of a nine-slice grid, in pixels.
type Borders struct {
	Left, Top, Right, Bottom int
}

// IsZero reports whether all insets are zero.
func (b Borders) IsZero() bool {
	return b == Borders{}
}

// Horizontal returns Left + Right.
func (b Borders) Horizontal() int {
	return b.Left + b.Right
}

// Vertical returns Top + Bottom.
func (b Borders) Vertical() int {
	return b.Top + b.Bottom
}

// Inset returns r shrunk by the insets. The result may be empty.
func (b Borders) Inset(r blit.Rect) blit.Rect {
	return blit.Rt(r.X+b.Left, r.Y+b.Top, r.W-b.Horizontal(), r.H-b.Vertical())
}

// fits reports whether the insets are non-negative and leave a
// non-negative center in a box of the given size.
func (b Borders) fits(size blit.Point) bool {
	return b.Left >= 0 && b.Top >= 0 && b.Right >= 0 && b.Bottom >= 0 &&
		b.Horizontal() <= size.X && b.Vertical() <= size.Y
}

// Tile selects which parts of a block are tiled rather than stretched.
type Tile uint8

const (
	TileTop Tile = 1 << iota
	TileBottom
	TileLeft
	TileRight
	TileCenter

	// TileEdges tiles all four edges.
	TileEdges = TileTop | TileBottom | TileLeft | TileRight

	// TileAll tiles the edges and the center.
	TileAll = TileEdges | TileCenter
)

// Block is a scalable image: a source rectangle cut by Borders into
// four corners drawn at their native size, four edges scaled along
// one axis, and a center scaled along both.
type Block struct {
	// Src is the block's area in the source surface.
	Src blit.Rect

	// Borders cut Src into nine parts.
	Borders Borders

	// Padding insets the content area of a drawn block.
	Padding Borders

	// Tile selects the parts that repeat instead of stretching.
	Tile Tile

	// Skip marks a block that is not drawn at all, such as a fully
	// transparent state.
	Skip bool
}

// ContentRect returns the area left for content when the block is drawn
// into dst.
func (b Block) ContentRect(dst blit.Rect) blit.Rect {
	return b.Padding.Inset(dst)
}

// Valid reports whether the borders fit inside Src.
func (b Block) Valid() bool {
	return !b.Src.Empty() && b.Borders.fits(b.Src.Size())
}

func (b Block) tiled(t Tile) bool {
	return b.Tile&t != 0
}
