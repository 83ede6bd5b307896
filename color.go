package blit

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Color is a straight (non-premultiplied) color with four 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ARGB unpacks a 32-bit 0xAARRGGBB value.
func ARGB(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}
}

// ARGB packs the color into a 32-bit 0xAARRGGBB value.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Mul multiplies two colors channel by channel, normalized to [0, 255].
// It is how a tint is applied to a source color.
func (c Color) Mul(o Color) Color {
	return Color{
		R: mul255(c.R, o.R),
		G: mul255(c.G, o.G),
		B: mul255(c.B, o.B),
		A: mul255(c.A, o.A),
	}
}

// RGBA implements color.Color. The result is alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ErrInvalidHex is returned by ParseHex for malformed strings.
var ErrInvalidHex = errors.New("blit: invalid hex color")

// Hex creates a color from a hex string. See [ParseHex] for the accepted
// formats; anything else yields opaque black.
func Hex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without
// a leading '#'. Short forms repeat each digit.
func ParseHex(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")

	var v [4]uint32
	v[3] = 255
	switch n := len(digits); n {
	case 3, 4:
		for i := range n {
			d, ok := hexDigit(digits[i])
			if !ok {
				return Black, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := range n / 2 {
			hi, ok1 := hexDigit(digits[2*i])
			lo, ok2 := hexDigit(digits[2*i+1])
			if !ok1 || !ok2 {
				return Black, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			v[i] = hi<<4 | lo
		}
	default:
		return Black, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	//nolint:gosec // G115: every component is at most 0xFF
	return Color{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// mul255 rounds a*b/255 to the nearest integer.
func mul255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

// Common colors.
var (
	Black       = ARGB(0xFF000000)
	White       = ARGB(0xFFFFFFFF)
	Red         = ARGB(0xFFFF0000)
	Green       = ARGB(0xFF00FF00)
	Blue        = ARGB(0xFF0000FF)
	Transparent = ARGB(0x00000000)
)
