package blit

import (
	"image"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the coordinate types that geometry types
// can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec is a point or a size.
type Vec[T Scalar] struct {
	X, Y T
}

// Point is an integer pixel position.
type Point = Vec[int]

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of two vectors.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Box is an axis-aligned rectangle given by its top-left corner and
// its size. It contains the points with X <= x < X+W, Y <= y < Y+H.
// A box whose width or height is not positive is empty.
type Box[T Scalar] struct {
	X, Y T // Top-left corner
	W, H T // Dimensions
}

// Rect is an integer pixel rectangle.
type Rect = Box[int]

// RectF is a rectangle with sub-pixel precision.
type RectF = Box[float32]

// Rt is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func Rt(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RtF is shorthand for RectF{X: x, Y: y, W: w, H: h}.
func RtF(x, y, w, h float32) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// FromImageRect converts an image.Rectangle.
func FromImageRect(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// ImageRect converts r to an image.Rectangle.
func ImageRect(r Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// ToRectF converts an integer rectangle to a float one.
func ToRectF(r Rect) RectF {
	return RectF{X: float32(r.X), Y: float32(r.Y), W: float32(r.W), H: float32(r.H)}
}

// Right returns the exclusive right edge.
func (b Box[T]) Right() T { return b.X + b.W }

// Bottom returns the exclusive bottom edge.
func (b Box[T]) Bottom() T { return b.Y + b.H }

// Pos returns the top-left corner.
func (b Box[T]) Pos() Vec[T] { return Vec[T]{X: b.X, Y: b.Y} }

// Size returns the dimensions.
func (b Box[T]) Size() Vec[T] { return Vec[T]{X: b.W, Y: b.H} }

// Empty reports whether the box has no area.
func (b Box[T]) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Translate returns b moved by d.
func (b Box[T]) Translate(d Vec[T]) Box[T] {
	b.X += d.X
	b.Y += d.Y
	return b
}

// At returns b moved so that its top-left corner is p.
func (b Box[T]) At(p Vec[T]) Box[T] {
	b.X, b.Y = p.X, p.Y
	return b
}

// In reports whether every point of b is inside o.
// An empty box is inside every box.
func (b Box[T]) In(o Box[T]) bool {
	if b.Empty() {
		return true
	}
	return b.X >= o.X && b.Y >= o.Y && b.Right() <= o.Right() && b.Bottom() <= o.Bottom()
}

// Overlaps reports whether b and o share at least one point.
func (b Box[T]) Overlaps(o Box[T]) bool {
	return !b.Empty() && !o.Empty() &&
		b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Intersect returns the largest box contained in both b and o.
// If they do not overlap the zero box is returned.
func (b Box[T]) Intersect(o Box[T]) Box[T] {
	x0 := max(b.X, o.X)
	y0 := max(b.Y, o.Y)
	x1 := min(b.Right(), o.Right())
	y1 := min(b.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Box[T]{}
	}
	return Box[T]{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// OuterRect returns the smallest integer rectangle covering r.
func OuterRect(r RectF) Rect {
	x0 := math32.Floor(r.X)
	y0 := math32.Floor(r.Y)
	x1 := math32.Ceil(r.X + r.W)
	y1 := math32.Ceil(r.Y + r.H)
	return Rect{X: int(x0), Y: int(y0), W: int(x1 - x0), H: int(y1 - y0)}
}

// InnerRect returns the largest integer rectangle covered by r.
// The result may be empty.
func InnerRect(r RectF) Rect {
	x0 := math32.Ceil(r.X)
	y0 := math32.Ceil(r.Y)
	x1 := math32.Floor(r.X + r.W)
	y1 := math32.Floor(r.Y + r.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: int(x0), Y: int(y0)}
	}
	return Rect{X: int(x0), Y: int(y0), W: int(x1 - x0), H: int(y1 - y0)}
}
