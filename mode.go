package blit

// BlendMode selects the per-channel formula that combines a source
// pixel with the destination pixel.
type BlendMode uint8

const (
	// Opaque replaces the destination with the source.
	Opaque BlendMode = iota

	// Blend performs straight-alpha "source over" blending.
	Blend

	// Add adds the alpha-weighted source to the destination, saturating
	// at 255.
	Add

	// Multiply multiplies destination channels by source channels.
	Multiply

	// Invert inverts the destination in proportion to the alpha-weighted
	// source intensity. A white opaque source inverts fully.
	Invert

	modeCount
)

// String returns a string representation of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case Opaque:
		return "Opaque"
	case Blend:
		return "Blend"
	case Add:
		return "Add"
	case Multiply:
		return "Multiply"
	case Invert:
		return "Invert"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m is a known blend mode.
func (m BlendMode) IsValid() bool {
	return m < modeCount
}

// ParseBlendMode returns the mode whose String matches name.
func ParseBlendMode(name string) (BlendMode, bool) {
	for m := Opaque; m < modeCount; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// Paint carries the per-call compositing parameters: the blend mode and
// a tint that is multiplied into every source color.
//
// The zero Paint has a transparent tint; use [PaintOf] or set Tint
// explicitly.
type Paint struct {
	Mode BlendMode
	Tint Color
}

// PaintOf returns a Paint with the given mode and a white tint.
func PaintOf(m BlendMode) Paint {
	return Paint{Mode: m, Tint: White}
}

// WithTint returns a copy of p with its tint replaced.
func (p Paint) WithTint(c Color) Paint {
	p.Tint = c
	return p
}
