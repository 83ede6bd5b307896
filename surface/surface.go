// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"

	"github.com/gogpu/blit"
)

// LockMode is the access requested by a lock, and the lock state of a
// surface.
type LockMode uint8

const (
	// LockNone means unlocked. Requesting it fails.
	LockNone LockMode = iota

	// LockReadOnly grants read access.
	LockReadOnly

	// LockWriteOnly grants write access. Reads through the region see
	// unspecified contents on write-only surfaces.
	LockWriteOnly

	// LockReadWrite grants read and write access.
	LockReadWrite
)

// String returns a string representation of the lock mode.
func (m LockMode) String() string {
	switch m {
	case LockNone:
		return "None"
	case LockReadOnly:
		return "ReadOnly"
	case LockWriteOnly:
		return "WriteOnly"
	case LockReadWrite:
		return "ReadWrite"
	default:
		return "Unknown"
	}
}

// Reads reports whether m grants read access.
func (m LockMode) Reads() bool {
	return m == LockReadOnly || m == LockReadWrite
}

// Writes reports whether m grants write access.
func (m LockMode) Writes() bool {
	return m == LockWriteOnly || m == LockReadWrite
}

// ScaleMode selects how a surface is sampled when stretched.
type ScaleMode uint8

const (
	// Nearest picks the source pixel under the sample position.
	Nearest ScaleMode = iota

	// Interpolate blends the four source pixels around the sample
	// position.
	Interpolate
)

// String returns a string representation of the scale mode.
func (m ScaleMode) String() string {
	switch m {
	case Nearest:
		return "Nearest"
	case Interpolate:
		return "Interpolate"
	default:
		return "Unknown"
	}
}

// Lock errors.
var (
	// ErrLockNone is returned when LockNone is requested.
	ErrLockNone = errors.New("surface: lock mode None requested")

	// ErrLocked is returned when the surface already has an active lock.
	ErrLocked = errors.New("surface: already locked")

	// ErrRegionBounds is returned when the lock region is empty or not
	// inside the surface.
	ErrRegionBounds = errors.New("surface: lock region out of bounds")

	// ErrWriteOnly is returned when reading a surface created with
	// HintWriteOnly.
	ErrWriteOnly = errors.New("surface: surface is write-only")

	// ErrDestroyed is returned when locking a destroyed surface.
	ErrDestroyed = errors.New("surface: surface destroyed")
)

// Surface is the capability interface the compositor renders from and
// into.
//
// Surfaces are NOT thread-safe. Each surface should be used from a
// single goroutine, or external synchronization must be used.
type Surface interface {
	// Size returns the width and height in pixels.
	Size() blit.Point

	// Bounds returns Rect(0, 0, width, height).
	Bounds() blit.Rect

	// Pitch returns the number of bytes between the starts of two rows.
	Pitch() int

	// Format returns the pixel format. It never changes.
	Format() PixelFormat

	// ScaleMode returns the sampling used when the surface is stretched.
	ScaleMode() ScaleMode

	// LockState returns the mode of the active lock, or LockNone.
	LockState() LockMode

	// Lock locks the whole surface. See LockRegion.
	Lock(mode LockMode) (*Region, error)

	// LockRegion grants access to the pixels of r until Unlock is
	// called. It fails without side effects when the surface is already
	// locked, mode is LockNone, or r is not inside the surface.
	LockRegion(mode LockMode, r blit.Rect) (*Region, error)

	// Unlock ends the active lock. It is a no-op when unlocked.
	Unlock()

	// PixelAt returns the color at (x, y). Out-of-bounds or unreadable
	// pixels read as transparent.
	PixelAt(x, y int) blit.Color

	// AlphaAt returns the alpha at (x, y), 255 for formats without alpha.
	AlphaAt(x, y int) uint8
}

// Region is a locked window of a surface's pixel memory.
//
// Coordinates passed to its methods are surface coordinates and must lie
// inside Rect.
type Region struct {
	// Pix holds the pixels of Rect. Pix[0] is the first byte of the
	// pixel at (Rect.X, Rect.Y).
	Pix []byte

	// Pitch is the row stride of Pix in bytes.
	Pitch int

	// Rect is the locked area in surface coordinates.
	Rect blit.Rect

	// Format is the surface's pixel format.
	Format PixelFormat

	// Mode is the access granted.
	Mode LockMode

	bpp int
}

func newRegion(pix []byte, pitch int, r blit.Rect, f PixelFormat, mode LockMode) *Region {
	bpp := f.BytesPerPixel()
	start := r.Y*pitch + r.X*bpp
	end := start + (r.H-1)*pitch + r.W*bpp
	return &Region{
		Pix:    pix[start:end:end],
		Pitch:  pitch,
		Rect:   r,
		Format: f,
		Mode:   mode,
		bpp:    bpp,
	}
}

// BytesPerPixel returns the pixel stride.
func (r *Region) BytesPerPixel() int {
	return r.bpp
}

// Offset returns the index in Pix of the first byte of pixel (x, y).
func (r *Region) Offset(x, y int) int {
	return (y-r.Rect.Y)*r.Pitch + (x-r.Rect.X)*r.bpp
}

// Pixel returns the bytes of pixel (x, y).
func (r *Region) Pixel(x, y int) []byte {
	i := r.Offset(x, y)
	return r.Pix[i : i+r.bpp : i+r.bpp]
}

// Row returns the bytes of n pixels starting at (x, y).
func (r *Region) Row(x, y, n int) []byte {
	i := r.Offset(x, y)
	return r.Pix[i : i+n*r.bpp]
}
