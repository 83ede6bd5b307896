package compositor

import (
	"testing"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/lut"
	"github.com/gogpu/blit/surface"
	"github.com/stretchr/testify/require"
)

func newSurface(t *testing.T, w, h int, pt surface.PixelType) *surface.Buffer {
	t.Helper()
	b, err := surface.New(surface.Params{Width: w, Height: h, Type: pt})
	require.NoError(t, err)
	return b
}

func newCompositor(t *testing.T, dst surface.Surface) *Compositor {
	t.Helper()
	c := New(dst)
	t.Cleanup(c.Close)
	return c
}

// pattern fills b with deterministic noise.
func pattern(t *testing.T, b *surface.Buffer, seed int) {
	t.Helper()
	reg, err := b.Lock(surface.LockWriteOnly)
	require.NoError(t, err)
	for i := range reg.Pix {
		reg.Pix[i] = byte(i*37 + seed*101 + i*i%13)
	}
	b.Unlock()
}

func fillWith(t *testing.T, b *surface.Buffer, col blit.Color) {
	t.Helper()
	c := New(b)
	defer c.Close()
	c.Fill(b.Bounds(), col, blit.PaintOf(blit.Opaque))
}

func pixels(b *surface.Buffer) []blit.Color {
	out := make([]blit.Color, 0, b.Bounds().W*b.Bounds().H)
	for y := range b.Bounds().H {
		for x := range b.Bounds().W {
			out = append(out, b.PixelAt(x, y))
		}
	}
	return out
}

func clone(t *testing.T, b *surface.Buffer) *surface.Buffer {
	t.Helper()
	c, err := surface.FromImage(b.Image(), surface.BGRA8)
	require.NoError(t, err)
	return c
}

func TestTablesLifecycle(t *testing.T) {
	dst := newSurface(t, 1, 1, surface.BGRA8)

	c := New(dst)
	tab := c.t
	refs := tab.Refs()
	require.GreaterOrEqual(t, refs, 1)

	c2 := New(dst)
	require.Same(t, tab, c2.t)
	require.Equal(t, refs+1, tab.Refs())

	c2.Close()
	c2.Close()
	require.Equal(t, refs, tab.Refs())
	c.Close()

	private := lut.New()
	c3 := New(dst, WithTables(private))
	require.Same(t, private, c3.t)
	c3.Close()

	// Operations after Close do nothing.
	c3.Fill(dst.Bounds(), blit.Red, blit.PaintOf(blit.Opaque))
	require.Equal(t, blit.Transparent, dst.PixelAt(0, 0))
}

func TestFillScenarioA(t *testing.T) {
	dst := newSurface(t, 10, 10, surface.BGRA8)
	fillWith(t, dst, blit.Black)

	c := newCompositor(t, dst)
	c.Fill(blit.Rt(0, 0, 10, 10), blit.Color{R: 255, A: 255}, blit.PaintOf(blit.Opaque))

	for _, px := range pixels(dst) {
		require.Equal(t, blit.Color{R: 255, G: 0, B: 0, A: 255}, px)
	}
}

func TestFillScenarioD(t *testing.T) {
	dst := newSurface(t, 8, 8, surface.BGRA8)
	pattern(t, dst, 1)
	before := dst.Image().Pix

	c := newCompositor(t, dst)
	c.Fill(dst.Bounds(), blit.Red, blit.Paint{Mode: blit.Blend, Tint: blit.Color{R: 255, G: 255, B: 255, A: 0}})
	c.Fill(dst.Bounds(), blit.Color{R: 200, A: 0}, blit.PaintOf(blit.Blend))
	c.Fill(dst.Bounds(), blit.Black, blit.PaintOf(blit.Add))
	c.Fill(dst.Bounds(), blit.Red, blit.Paint{Mode: blit.Add, Tint: blit.Transparent})

	require.Equal(t, before, dst.Image().Pix)
}

func TestFillNeverShortCircuits(t *testing.T) {
	tests := []struct {
		mode blit.BlendMode
		dst  blit.Color
		want blit.Color
	}{
		{blit.Opaque, blit.White, blit.Transparent},
		// Multiply by the transparent-black tint product zeroes the color.
		{blit.Multiply, blit.White, blit.Color{A: 255}},
		// Invert with zero alpha leaves the pixel alone, but still runs.
		{blit.Invert, blit.White, blit.White},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			dst := newSurface(t, 2, 2, surface.BGRA8)
			fillWith(t, dst, tt.dst)
			c := newCompositor(t, dst)
			c.Fill(dst.Bounds(), blit.White, blit.Paint{Mode: tt.mode, Tint: blit.Transparent})
			require.Equal(t, tt.want, dst.PixelAt(1, 1))
		})
	}
}

func TestFillClipsToSurface(t *testing.T) {
	dst := newSurface(t, 4, 4, surface.BGRA8)
	c := newCompositor(t, dst)

	c.Fill(blit.Rt(-2, 3, 4, 10), blit.Red, blit.PaintOf(blit.Opaque))
	c.Fill(blit.Rt(1, 1, 0, 3), blit.Green, blit.PaintOf(blit.Opaque))

	require.Equal(t, blit.Red, dst.PixelAt(0, 3))
	require.Equal(t, blit.Red, dst.PixelAt(1, 3))
	require.Equal(t, blit.Transparent, dst.PixelAt(2, 3))
	require.Equal(t, blit.Transparent, dst.PixelAt(1, 1))
}

func TestFillTint(t *testing.T) {
	dst := newSurface(t, 1, 1, surface.BGRA8)
	c := newCompositor(t, dst)
	c.Fill(dst.Bounds(), blit.White, blit.Paint{Mode: blit.Opaque, Tint: blit.Color{R: 128, G: 64, B: 255, A: 255}})
	require.Equal(t, blit.Color{R: 128, G: 64, B: 255, A: 255}, dst.PixelAt(0, 0))
}

func TestFillBGR8(t *testing.T) {
	dst := newSurface(t, 3, 1, surface.BGR8)
	c := newCompositor(t, dst)
	c.Fill(dst.Bounds(), blit.Color{R: 255, A: 255}, blit.PaintOf(blit.Opaque))
	c.Fill(blit.Rt(1, 0, 1, 1), blit.Color{B: 255, A: 255}, blit.PaintOf(blit.Add))
	require.Equal(t, blit.Color{R: 255, A: 255}, dst.PixelAt(0, 0))
	require.Equal(t, blit.Color{R: 255, B: 255, A: 255}, dst.PixelAt(1, 0))
}

func TestLockedDestinationIsNoop(t *testing.T) {
	dst := newSurface(t, 2, 2, surface.BGRA8)
	c := newCompositor(t, dst)

	_, err := dst.Lock(surface.LockReadOnly)
	require.NoError(t, err)
	c.Fill(dst.Bounds(), blit.Red, blit.PaintOf(blit.Opaque))
	c.FillEllipse(dst.Bounds(), blit.Red, blit.PaintOf(blit.Opaque))
	require.Equal(t, surface.LockReadOnly, dst.LockState())
	dst.Unlock()

	require.Equal(t, blit.Transparent, dst.PixelAt(0, 0))
}

func TestFillSubpixelMatchesFill(t *testing.T) {
	for _, r := range []blit.Rect{
		blit.Rt(0, 0, 10, 10),
		blit.Rt(2, 3, 4, 1),
		blit.Rt(-3, 5, 8, 9),
		blit.Rt(9, 9, 1, 1),
	} {
		for _, mode := range []blit.BlendMode{blit.Opaque, blit.Blend, blit.Add, blit.Multiply, blit.Invert} {
			a := newSurface(t, 10, 10, surface.BGRA8)
			pattern(t, a, 3)
			b := clone(t, a)
			p := blit.Paint{Mode: mode, Tint: blit.Color{R: 255, G: 200, B: 100, A: 180}}

			newCompositor(t, a).Fill(r, blit.Color{R: 90, G: 30, B: 200, A: 220}, p)
			newCompositor(t, b).FillSubpixel(blit.ToRectF(r), blit.Color{R: 90, G: 30, B: 200, A: 220}, p)

			require.Equal(t, a.Image().Pix, b.Image().Pix, "rect %v mode %v", r, mode)
		}
	}
}

func TestFillSubpixelEdges(t *testing.T) {
	dst := newSurface(t, 5, 3, surface.BGRA8)
	fillWith(t, dst, blit.Black)
	c := newCompositor(t, dst)

	c.FillSubpixel(blit.RtF(1.5, 1, 2, 1), blit.White, blit.PaintOf(blit.Opaque))

	require.Equal(t, blit.Black, dst.PixelAt(0, 1))
	require.Equal(t, blit.Color{R: 128, G: 128, B: 128, A: 255}, dst.PixelAt(1, 1))
	require.Equal(t, blit.White, dst.PixelAt(2, 1))
	require.Equal(t, blit.Color{R: 128, G: 128, B: 128, A: 255}, dst.PixelAt(3, 1))
	require.Equal(t, blit.Black, dst.PixelAt(4, 1))
	require.Equal(t, blit.Black, dst.PixelAt(2, 0))
	require.Equal(t, blit.Black, dst.PixelAt(2, 2))

	// A quarter pixel in both directions covers 1/16.
	c.FillSubpixel(blit.RtF(0.75, 0.75, 0.25, 0.25), blit.White, blit.PaintOf(blit.Opaque))
	require.Equal(t, uint8(16), dst.PixelAt(0, 0).R)
}

func TestFillSubpixelLargerThanSurface(t *testing.T) {
	dst := newSurface(t, 10, 10, surface.BGRA8)
	fillWith(t, dst, blit.Black)
	c := newCompositor(t, dst)

	c.FillSubpixel(blit.RtF(-4000.5, -4000.5, 8000, 8000), blit.White, blit.PaintOf(blit.Opaque))
	for _, px := range pixels(dst) {
		require.Equal(t, blit.White, px)
	}

	// Edges inside the surface are still blended when the rest of the
	// rectangle lies far outside it.
	fillWith(t, dst, blit.Black)
	c.FillSubpixel(blit.RtF(-100.5, 2.5, 105, 3), blit.White, blit.PaintOf(blit.Opaque))

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 3, 255},
		{3, 4, 255},
		{4, 3, 128},
		{2, 2, 128},
		{2, 5, 128},
		{4, 2, 64},
		{4, 5, 64},
		{5, 3, 0},
		{0, 1, 0},
		{0, 6, 0},
	}
	for _, tt := range tests {
		require.Equal(t, grey(tt.want), dst.PixelAt(tt.x, tt.y), "pixel %d,%d", tt.x, tt.y)
	}
}

func BenchmarkFillSubpixelLarge(b *testing.B) {
	dst, err := surface.New(surface.Params{Width: 10, Height: 10, Type: surface.BGRA8})
	require.NoError(b, err)
	c := New(dst)
	defer c.Close()

	b.ReportAllocs()
	for b.Loop() {
		c.FillSubpixel(blit.RtF(-4000.5, -4000.5, 8000, 8000), blit.White, blit.PaintOf(blit.Blend))
	}
}
