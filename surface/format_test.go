// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"testing"

	"github.com/gogpu/blit"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/require"
)

func TestPixelTypeFormat(t *testing.T) {
	f, ok := BGRA8.Format()
	require.True(t, ok)
	require.Equal(t, 4, f.BytesPerPixel())
	require.True(t, f.HasAlpha())

	f, ok = BGR8.Format()
	require.True(t, ok)
	require.Equal(t, 3, f.BytesPerPixel())
	require.False(t, f.HasAlpha())

	_, ok = PixelType(0).Format()
	require.False(t, ok)
	require.Equal(t, "Unknown", PixelType(0).String())
}

func TestOffsets(t *testing.T) {
	r, g, b, a, ok := FormatBGRA8.Offsets()
	require.True(t, ok)
	require.Equal(t, []int{2, 1, 0, 3}, []int{r, g, b, a})

	r, g, b, a, ok = FormatBGR8.Offsets()
	require.True(t, ok)
	require.Equal(t, []int{2, 1, 0, -1}, []int{r, g, b, a})

	rgb565, err := FromForeign(ForeignFormat{
		BitsPerPixel: 16,
		R:            ForeignChannel{Mask: 0xF800, Shift: 11, Loss: 3},
		G:            ForeignChannel{Mask: 0x07E0, Shift: 5, Loss: 2},
		B:            ForeignChannel{Mask: 0x001F, Shift: 0, Loss: 3},
	})
	require.NoError(t, err)
	_, _, _, _, ok = rgb565.Offsets()
	require.False(t, ok)
}

func TestDecodeEncode(t *testing.T) {
	c := blit.Color{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	v := FormatBGRA8.Encode(c)
	require.Equal(t, uint32(0x78123456), v)
	require.Equal(t, c, FormatBGRA8.Decode(v))

	v = FormatRGBA8.Encode(c)
	require.Equal(t, uint32(0x78563412), v)
	require.Equal(t, c, FormatRGBA8.Decode(v))

	// No alpha: decodes opaque, alpha is dropped on encode.
	v = FormatBGR8.Encode(c)
	require.Equal(t, uint32(0x123456), v)
	require.Equal(t, blit.Color{R: 0x12, G: 0x34, B: 0x56, A: 255}, FormatBGR8.Decode(v))
}

func TestFromForeignDepth(t *testing.T) {
	f, err := FromForeign(ForeignFormat{
		BitsPerPixel: 16,
		R:            ForeignChannel{Mask: 0xF800, Shift: 11, Loss: 3},
		G:            ForeignChannel{Mask: 0x07E0, Shift: 5, Loss: 2},
		B:            ForeignChannel{Mask: 0x001F, Shift: 0, Loss: 3},
		A:            ForeignChannel{Loss: 8},
	})
	require.NoError(t, err)
	require.Equal(t, uint8(5), f.R.Depth)
	require.Equal(t, uint8(6), f.G.Depth)
	require.Equal(t, uint8(5), f.B.Depth)
	require.False(t, f.HasAlpha())
	require.Equal(t, 2, f.BytesPerPixel())

	// Full-intensity channels expand to 255.
	require.Equal(t, blit.White, f.Decode(0xFFFF))
	require.Equal(t, blit.Color{R: 0, G: 0, B: 0, A: 255}, f.Decode(0))

	// Top bits survive a round trip.
	c := f.Decode(f.Encode(blit.Color{R: 0xF8, G: 0xFC, B: 0x08, A: 255}))
	require.Equal(t, blit.Color{R: 0xFF, G: 0xFF, B: 0x08, A: 255}, c)
}

func TestForeignRoundTrip(t *testing.T) {
	for _, f := range []PixelFormat{FormatBGRA8, FormatBGR8, FormatRGBA8} {
		got, err := FromForeign(f.Foreign())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
}

func TestFromForeignRejects(t *testing.T) {
	tests := []struct {
		name string
		ff   ForeignFormat
	}{
		{"zero bpp", ForeignFormat{}},
		{"mask mismatch", ForeignFormat{
			BitsPerPixel: 32,
			R:            ForeignChannel{Mask: 0xFF0000, Shift: 8, Loss: 0},
			G:            ForeignChannel{Mask: 0xFF00, Shift: 8, Loss: 0},
			B:            ForeignChannel{Mask: 0xFF, Shift: 0, Loss: 0},
		}},
		{"loss too large", ForeignFormat{
			BitsPerPixel: 32,
			R:            ForeignChannel{Mask: 0xFF0000, Shift: 16, Loss: 9},
			G:            ForeignChannel{Mask: 0xFF00, Shift: 8, Loss: 0},
			B:            ForeignChannel{Mask: 0xFF, Shift: 0, Loss: 0},
		}},
		{"outside pixel", ForeignFormat{
			BitsPerPixel: 16,
			R:            ForeignChannel{Mask: 0xFF0000, Shift: 16, Loss: 0},
			G:            ForeignChannel{Mask: 0xFF00, Shift: 8, Loss: 0},
			B:            ForeignChannel{Mask: 0xFF, Shift: 0, Loss: 0},
		}},
		{"missing blue", ForeignFormat{
			BitsPerPixel: 32,
			R:            ForeignChannel{Mask: 0xFF0000, Shift: 16, Loss: 0},
			G:            ForeignChannel{Mask: 0xFF00, Shift: 8, Loss: 0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromForeign(tt.ff)
			require.ErrorIs(t, err, ErrInvalidForeignFormat)
		})
	}
}

func TestTextureFormatMapping(t *testing.T) {
	require.Equal(t, gputypes.TextureFormatBGRA8Unorm, FormatBGRA8.TextureFormat())
	require.Equal(t, gputypes.TextureFormatRGBA8Unorm, FormatRGBA8.TextureFormat())
	require.Equal(t, gputypes.TextureFormatUndefined, FormatBGR8.TextureFormat())

	f, ok := FormatFromTexture(gputypes.TextureFormatBGRA8Unorm)
	require.True(t, ok)
	require.Equal(t, FormatBGRA8, f)

	_, ok = FormatFromTexture(gputypes.TextureFormatR8Unorm)
	require.False(t, ok)
}
