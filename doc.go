// Package blit is a software 2-D compositing core for skinned user
// interfaces.
//
// # Overview
//
// blit renders pixels into CPU-side surfaces: solid and sub-pixel fills,
// 1:1, stretched and tiled blits under five blend modes, anti-aliased
// lines, ellipses and wave traces, and nine-slice ("scalable block")
// rendering of resizable elements from a single source bitmap.
//
// # Quick Start
//
//	dst, _ := surface.New(surface.Params{Width: 320, Height: 200, Type: surface.BGRA8})
//	defer dst.Destroy()
//
//	c := compositor.New(dst)
//	defer c.Close()
//
//	c.Fill(blit.Rt(0, 0, 320, 200), blit.Black, blit.PaintOf(blit.Opaque))
//	c.FillEllipse(blit.Rt(60, 20, 200, 160), blit.Red, blit.PaintOf(blit.Blend))
//
// # Architecture
//
// The module is organized into:
//   - Public values: Color, Rect, RectF, Point, BlendMode, Paint (this package)
//   - surface: pixel formats, the Surface capability interface, backends
//   - compositor: Compositor and its clipping wrapper Clip
//   - nineslice: Block decomposition into compositor calls
//   - skin: TOML block descriptions
//   - internal: shared lookup tables (lut) and blend formulas (blend)
//
// All rendering is synchronous and single-threaded. Lookup tables are
// shared between compositors and built once on first use.
package blit
