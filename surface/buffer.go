// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/blit"
)

// Buffer is a surface backed by a strided byte slice.
//
// Create buffers with [New] or [FromImage]; the zero value is not usable.
type Buffer struct {
	pix    []byte
	width  int
	height int
	pitch  int
	format PixelFormat

	backend  Backend
	hints    Hint
	uploader Uploader

	scale     ScaleMode
	lock      LockMode
	locked    blit.Rect
	destroyed bool
}

var _ Surface = (*Buffer)(nil)

// Size returns the width and height in pixels.
func (b *Buffer) Size() blit.Point {
	return blit.Pt(b.width, b.height)
}

// Bounds returns Rect(0, 0, width, height).
func (b *Buffer) Bounds() blit.Rect {
	return blit.Rt(0, 0, b.width, b.height)
}

// Pitch returns the row stride in bytes.
func (b *Buffer) Pitch() int {
	return b.pitch
}

// Format returns the pixel format.
func (b *Buffer) Format() PixelFormat {
	return b.format
}

// Backend returns the storage strategy chosen at creation.
func (b *Buffer) Backend() Backend {
	return b.backend
}

// Hints returns the creation hints.
func (b *Buffer) Hints() Hint {
	return b.hints
}

// ScaleMode returns the sampling used when the surface is stretched.
func (b *Buffer) ScaleMode() ScaleMode {
	return b.scale
}

// SetScaleMode changes the sampling used when the surface is stretched.
func (b *Buffer) SetScaleMode(m ScaleMode) {
	b.scale = m
}

// LockState returns the mode of the active lock, or LockNone.
func (b *Buffer) LockState() LockMode {
	return b.lock
}

// Lock locks the whole surface.
func (b *Buffer) Lock(mode LockMode) (*Region, error) {
	return b.LockRegion(mode, b.Bounds())
}

// LockRegion grants access to the pixels of r until Unlock.
func (b *Buffer) LockRegion(mode LockMode, r blit.Rect) (*Region, error) {
	switch {
	case b.destroyed:
		return nil, ErrDestroyed
	case mode == LockNone || mode > LockReadWrite:
		return nil, ErrLockNone
	case b.lock != LockNone:
		return nil, ErrLocked
	case mode.Reads() && b.hints&HintWriteOnly != 0 && b.backend == Streamed:
		return nil, ErrWriteOnly
	case r.Empty() || !r.In(b.Bounds()):
		return nil, ErrRegionBounds
	}

	b.lock = mode
	b.locked = r
	return newRegion(b.pix, b.pitch, r, b.format, mode), nil
}

// Unlock ends the active lock. Streamed surfaces push the written region
// to their uploader; upload failures are logged.
func (b *Buffer) Unlock() {
	if b.lock == LockNone {
		return
	}
	mode, r := b.lock, b.locked
	b.lock = LockNone
	b.locked = blit.Rect{}

	if b.backend == Streamed && mode.Writes() {
		b.upload(r)
	}
}

// PixelAt returns the color at (x, y).
func (b *Buffer) PixelAt(x, y int) blit.Color {
	reg, err := b.LockRegion(LockReadOnly, blit.Rt(x, y, 1, 1))
	if err != nil {
		return blit.Transparent
	}
	defer b.Unlock()

	return b.decode(reg.Pixel(x, y))
}

// AlphaAt returns the alpha at (x, y).
func (b *Buffer) AlphaAt(x, y int) uint8 {
	return b.PixelAt(x, y).A
}

// Destroy releases the pixel memory. Later locks fail with ErrDestroyed.
// Destroy is idempotent.
func (b *Buffer) Destroy() {
	b.destroyed = true
	b.lock = LockNone
	b.pix = nil
	b.uploader = nil
}

func (b *Buffer) decode(p []byte) blit.Color {
	var v uint32
	for i, c := range p {
		v |= uint32(c) << (8 * i)
	}
	return b.format.Decode(v)
}

func (b *Buffer) encode(p []byte, c blit.Color) {
	v := b.format.Encode(c)
	for i := range p {
		p[i] = byte(v >> (8 * i))
	}
}
