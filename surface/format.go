// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/blit"
)

// Channel describes where one color channel lives inside a packed pixel.
type Channel struct {
	// Mask selects the channel bits.
	Mask uint32

	// Shift is the position of the lowest channel bit.
	Shift uint8

	// Depth is the number of channel bits. Zero means the channel is
	// absent.
	Depth uint8
}

// PixelFormat describes a packed pixel layout. Pixels are stored
// little-endian, so a channel with Shift 16 and Depth 8 is byte 2 of the
// pixel.
type PixelFormat struct {
	BitsPerPixel uint8
	R, G, B, A   Channel
}

// Predefined pixel formats.
var (
	// FormatBGRA8 stores B, G, R, A in bytes 0 to 3.
	FormatBGRA8 = PixelFormat{
		BitsPerPixel: 32,
		R:            Channel{Mask: 0x00FF0000, Shift: 16, Depth: 8},
		G:            Channel{Mask: 0x0000FF00, Shift: 8, Depth: 8},
		B:            Channel{Mask: 0x000000FF, Shift: 0, Depth: 8},
		A:            Channel{Mask: 0xFF000000, Shift: 24, Depth: 8},
	}

	// FormatBGR8 stores B, G, R in bytes 0 to 2 and has no alpha.
	FormatBGR8 = PixelFormat{
		BitsPerPixel: 24,
		R:            Channel{Mask: 0x00FF0000, Shift: 16, Depth: 8},
		G:            Channel{Mask: 0x0000FF00, Shift: 8, Depth: 8},
		B:            Channel{Mask: 0x000000FF, Shift: 0, Depth: 8},
	}

	// FormatRGBA8 stores R, G, B, A in bytes 0 to 3. It describes
	// foreign buffers and GPU textures; surfaces are not created in it.
	FormatRGBA8 = PixelFormat{
		BitsPerPixel: 32,
		R:            Channel{Mask: 0x000000FF, Shift: 0, Depth: 8},
		G:            Channel{Mask: 0x0000FF00, Shift: 8, Depth: 8},
		B:            Channel{Mask: 0x00FF0000, Shift: 16, Depth: 8},
		A:            Channel{Mask: 0xFF000000, Shift: 24, Depth: 8},
	}
)

// BytesPerPixel returns the pixel stride in bytes.
func (f PixelFormat) BytesPerPixel() int {
	return int(f.BitsPerPixel+7) / 8
}

// HasAlpha reports whether the format carries an alpha channel.
func (f PixelFormat) HasAlpha() bool {
	return f.A.Depth > 0
}

// String returns a short description such as "32bpp R8@16 G8@8 B8@0 A8@24".
func (f PixelFormat) String() string {
	s := fmt.Sprintf("%dbpp R%d@%d G%d@%d B%d@%d",
		f.BitsPerPixel, f.R.Depth, f.R.Shift, f.G.Depth, f.G.Shift, f.B.Depth, f.B.Shift)
	if f.HasAlpha() {
		s += fmt.Sprintf(" A%d@%d", f.A.Depth, f.A.Shift)
	}
	return s
}

// Decode unpacks a pixel value. Channels narrower than 8 bits are
// expanded by bit replication; a missing alpha channel reads as 255.
func (f PixelFormat) Decode(v uint32) blit.Color {
	c := blit.Color{
		R: f.R.decode(v),
		G: f.G.decode(v),
		B: f.B.decode(v),
		A: 255,
	}
	if f.HasAlpha() {
		c.A = f.A.decode(v)
	}
	return c
}

// Encode packs c, dropping the low bits of channels narrower than 8 bits.
func (f PixelFormat) Encode(c blit.Color) uint32 {
	return f.R.encode(c.R) | f.G.encode(c.G) | f.B.encode(c.B) | f.A.encode(c.A)
}

// Offsets returns the byte offsets of the channels inside a pixel. ok is
// false unless every present channel is 8 bits wide and byte aligned.
// a is -1 when the format has no alpha.
func (f PixelFormat) Offsets() (r, g, b, a int, ok bool) {
	r, okR := f.R.byteOffset()
	g, okG := f.G.byteOffset()
	b, okB := f.B.byteOffset()
	a, okA := -1, true
	if f.HasAlpha() {
		a, okA = f.A.byteOffset()
	}
	return r, g, b, a, okR && okG && okB && okA
}

func (c Channel) decode(v uint32) uint8 {
	if c.Depth == 0 {
		return 0
	}
	x := (v & c.Mask) >> c.Shift
	if c.Depth >= 8 {
		return uint8(x >> (c.Depth - 8))
	}
	// Replicate the high bits into the vacated low bits.
	x <<= 8 - c.Depth
	for d := c.Depth; d < 8; d *= 2 {
		x |= x >> d
	}
	return uint8(x)
}

func (c Channel) encode(v uint8) uint32 {
	if c.Depth == 0 {
		return 0
	}
	x := uint32(v)
	if c.Depth < 8 {
		x >>= 8 - c.Depth
	} else {
		x <<= c.Depth - 8
	}
	return (x << c.Shift) & c.Mask
}

func (c Channel) byteOffset() (int, bool) {
	if c.Depth != 8 || c.Shift%8 != 0 || c.Mask != 0xFF<<c.Shift {
		return 0, false
	}
	return int(c.Shift / 8), true
}

// ForeignChannel is a channel as platform surface providers describe it:
// mask, shift, and the number of bits lost relative to 8.
type ForeignChannel struct {
	Mask  uint32
	Shift uint8
	Loss  uint8
}

// ForeignFormat is a pixel format as platform surface providers
// describe it.
type ForeignFormat struct {
	BitsPerPixel uint8
	R, G, B, A   ForeignChannel
}

// ErrInvalidForeignFormat is returned by FromForeign for inconsistent
// descriptions.
var ErrInvalidForeignFormat = errors.New("surface: invalid foreign pixel format")

// FromForeign converts a foreign format description. Each channel gets
// Depth = 8 - Loss; a channel with a zero mask is absent. The conversion
// is lossless: f.Foreign() returns the original description for every
// accepted input with absent channels reported as Loss 8.
func FromForeign(ff ForeignFormat) (PixelFormat, error) {
	if ff.BitsPerPixel == 0 || ff.BitsPerPixel > 32 {
		return PixelFormat{}, fmt.Errorf("%w: %d bits per pixel", ErrInvalidForeignFormat, ff.BitsPerPixel)
	}

	f := PixelFormat{BitsPerPixel: ff.BitsPerPixel}
	for _, ch := range []struct {
		name string
		in   ForeignChannel
		out  *Channel
	}{
		{"red", ff.R, &f.R},
		{"green", ff.G, &f.G},
		{"blue", ff.B, &f.B},
		{"alpha", ff.A, &f.A},
	} {
		c, err := foreignChannel(ch.in, ff.BitsPerPixel)
		if err != nil {
			return PixelFormat{}, fmt.Errorf("%w: %s: %w", ErrInvalidForeignFormat, ch.name, err)
		}
		*ch.out = c
	}
	if f.R.Depth == 0 || f.G.Depth == 0 || f.B.Depth == 0 {
		return PixelFormat{}, fmt.Errorf("%w: missing color channel", ErrInvalidForeignFormat)
	}
	return f, nil
}

func foreignChannel(in ForeignChannel, bpp uint8) (Channel, error) {
	if in.Mask == 0 {
		return Channel{}, nil
	}
	if in.Loss > 8 {
		return Channel{}, fmt.Errorf("loss %d exceeds 8", in.Loss)
	}
	depth := 8 - in.Loss
	if depth == 0 {
		return Channel{}, errors.New("non-zero mask with zero depth")
	}
	if int(in.Shift)+int(depth) > int(bpp) {
		return Channel{}, fmt.Errorf("bits %d..%d outside %d-bit pixel", in.Shift, int(in.Shift)+int(depth)-1, bpp)
	}
	want := uint32(1)<<depth - 1
	if in.Mask != want<<in.Shift {
		return Channel{}, fmt.Errorf("mask %#x does not match shift %d and depth %d", in.Mask, in.Shift, depth)
	}
	return Channel{Mask: in.Mask, Shift: in.Shift, Depth: depth}, nil
}

// Foreign returns the foreign description of f.
func (f PixelFormat) Foreign() ForeignFormat {
	conv := func(c Channel) ForeignChannel {
		if c.Depth == 0 {
			return ForeignChannel{Loss: 8}
		}
		return ForeignChannel{Mask: c.Mask, Shift: c.Shift, Loss: 8 - c.Depth}
	}
	return ForeignFormat{
		BitsPerPixel: f.BitsPerPixel,
		R:            conv(f.R),
		G:            conv(f.G),
		B:            conv(f.B),
		A:            conv(f.A),
	}
}

// PixelType is a pixel format a surface can be created with.
type PixelType uint8

const (
	// BGR8 is 24-bit BGR without alpha.
	BGR8 PixelType = iota + 1

	// BGRA8 is 32-bit BGRA with straight alpha.
	BGRA8
)

// Format returns the pixel format of t.
func (t PixelType) Format() (PixelFormat, bool) {
	switch t {
	case BGR8:
		return FormatBGR8, true
	case BGRA8:
		return FormatBGRA8, true
	default:
		return PixelFormat{}, false
	}
}

// String returns a string representation of the pixel type.
func (t PixelType) String() string {
	switch t {
	case BGR8:
		return "BGR8"
	case BGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}
