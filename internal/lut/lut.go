// Package lut holds the lookup tables shared by every compositor.
//
// The per-pixel blend math never divides: products of two 8-bit values
// are normalized through Div, saturating sums go through Limit, and
// ellipse rasterization reads the quarter-curve profile from Curve.
//
// Tables are reference counted. Acquire returns the process-wide
// instance, building it on first use; Release drops the reference and
// frees the instance once nobody holds it. Table contents never change
// after construction, so readers need no locking.
package lut

import (
	"math"
	"sync"

	"github.com/gogpu/blit"
)

const (
	// DivSize is the number of entries in the division table: every
	// product of two 8-bit values.
	DivSize = 255*255 + 1

	// LimitSize covers the sum of two 8-bit values.
	LimitSize = 2*255 + 1

	// CurveSize is the number of samples in the quarter-curve table.
	CurveSize = 1024

	// CurveShift is the number of fractional bits of a curve sample.
	CurveShift = 16

	// CurveOne is the value of Curve()[0].
	CurveOne = 1 << CurveShift
)

// Tables is a set of lookup tables.
type Tables struct {
	// Div maps a*b to round(a*b/255) for 8-bit a and b.
	Div [DivSize]uint8

	// Limit maps x to min(x, 255).
	Limit [LimitSize]uint8

	curveOnce sync.Once
	curve     [CurveSize]uint32

	refs int // guarded by mu
}

var (
	mu     sync.Mutex
	shared *Tables
)

// Acquire returns the shared tables, building them if no reference is
// currently held. Every call must be paired with one Release.
func Acquire() *Tables {
	mu.Lock()
	defer mu.Unlock()

	if shared == nil {
		shared = New()
		blit.Logger().Debug("lut: tables built")
	}
	shared.refs++
	return shared
}

// Release drops one reference. When the last reference to the shared
// tables is released they are discarded; the next Acquire rebuilds them.
// Releasing tables created by New is a no-op.
func (t *Tables) Release() {
	mu.Lock()
	defer mu.Unlock()

	if t.refs == 0 {
		return
	}
	t.refs--
	if t.refs == 0 && shared == t {
		shared = nil
		blit.Logger().Debug("lut: tables released")
	}
}

// Refs returns the number of references currently held.
func (t *Tables) Refs() int {
	mu.Lock()
	defer mu.Unlock()
	return t.refs
}

// New builds a private, unshared set of tables.
func New() *Tables {
	t := new(Tables)
	for i := range t.Div {
		t.Div[i] = uint8((i + 127) / 255)
	}
	for i := range t.Limit {
		t.Limit[i] = uint8(min(i, 255))
	}
	return t
}

// Mul returns round(a*b/255).
func (t *Tables) Mul(a, b uint8) uint8 {
	return t.Div[int(a)*int(b)]
}

// Curve returns the quarter-curve profile. Entry i is the half-width of
// a unit circle at height i/(CurveSize-1), in CurveShift fixed point:
// Curve()[0] == CurveOne and Curve()[CurveSize-1] == 0. The table is
// built on first call.
func (t *Tables) Curve() *[CurveSize]uint32 {
	t.curveOnce.Do(t.buildCurve)
	return &t.curve
}

func (t *Tables) buildCurve() {
	for i := range t.curve {
		h := float64(i) / (CurveSize - 1)
		// sin(acos(h)) sampled over the quarter turn.
		w := math.Sin(math.Acos(h))
		t.curve[i] = uint32(math.Round(w * CurveOne))
	}
	t.curve[CurveSize-1] = 0
}
