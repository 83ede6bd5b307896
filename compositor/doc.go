// Package compositor draws into a surface: solid and sub-pixel fills,
// copies, stretched and tiled copies, and anti-aliased lines, ellipses
// and wave plots.
//
// # Blend modes
//
// Every operation takes a [blit.Paint]. Its tint is multiplied into each
// source color; its mode picks the per-channel formula combining the
// result s (alpha a) with the destination d:
//
//	Opaque    d = s
//	Blend     d = s*a + d*(1-a), alpha a + d.a*(1-a)
//	Add       d = min(d + s*a, 1), alpha kept
//	Multiply  d = d*s, alpha kept
//	Invert    k = s*a, d = (1-d)*k + d*(1-k), alpha kept
//
// Products are rounded through a shared table instead of dividing by
// 255. Pixels only partly covered by an anti-aliased shape blend with
// the coverage as alpha.
//
// # Clipping
//
// [Compositor.Clip] returns a [Clip] that runs the same operations
// restricted to a rectangle. Inside the rectangle the output is
// identical to the unclipped call.
//
// # Lookup tables
//
// A Compositor holds a reference to the shared lookup tables from [New]
// until [Compositor.Close]. The tables are built when the first
// reference is taken and dropped with the last one.
package compositor
