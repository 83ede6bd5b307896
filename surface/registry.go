// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/blit"
)

// Backend is the storage strategy of a surface.
type Backend uint8

const (
	// Software surfaces own their pixel memory.
	Software Backend = iota

	// External surfaces render into caller-owned memory.
	External

	// Streamed surfaces own a staging buffer that is uploaded to a
	// GPU-resident target after every write lock.
	Streamed

	backendCount
)

// String returns a string representation of the backend.
func (b Backend) String() string {
	switch b {
	case Software:
		return "Software"
	case External:
		return "External"
	case Streamed:
		return "Streamed"
	default:
		return "Unknown"
	}
}

// Hint is a set of creation hints.
type Hint uint8

const (
	// HintWriteOnly declares that the CPU never reads the surface back.
	// Streamed surfaces then refuse read locks; CPU-resident backends
	// ignore the hint.
	HintWriteOnly Hint = 1 << iota

	// HintExternal declares that the surface renders into Params.Pix.
	// It is implied by a non-nil Pix; set it explicitly to have a
	// missing buffer reported as ErrNilBuffer.
	HintExternal
)

// Params describes a surface to create.
type Params struct {
	// Width and Height are the dimensions in pixels.
	Width, Height int

	// Type is the pixel type.
	Type PixelType

	// Pix is optional caller-owned pixel memory. When set the surface
	// uses the External backend and renders into Pix directly.
	Pix []byte

	// Pitch is the row stride in bytes. Zero selects the tightest pitch.
	// It must be a multiple of the pixel stride.
	Pitch int

	// Hints are creation hints.
	Hints Hint

	// Uploader selects the Streamed backend. It receives every region
	// written under a lock.
	Uploader Uploader

	// Scale is the initial scale mode.
	Scale ScaleMode
}

// Creation errors.
var (
	// ErrInvalidType is returned for unknown pixel types and pixel types
	// the chosen backend cannot store.
	ErrInvalidType = errors.New("surface: invalid pixel type")

	// ErrInvalidSize is returned when width or height is not positive.
	ErrInvalidSize = errors.New("surface: invalid dimensions")

	// ErrNilBuffer is returned when external memory is requested but
	// none is given.
	ErrNilBuffer = errors.New("surface: nil pixel buffer")

	// ErrInvalidPitch is returned when the pitch is smaller than a row or
	// not a multiple of the pixel stride.
	ErrInvalidPitch = errors.New("surface: invalid pitch")

	// ErrBufferTooSmall is returned when external memory cannot hold the
	// surface.
	ErrBufferTooSmall = errors.New("surface: pixel buffer too small")

	// ErrConflictingParams is returned when both external memory and an
	// uploader are given.
	ErrConflictingParams = errors.New("surface: external memory and uploader are exclusive")
)

// constructors holds one constructor per backend. New selects the entry
// from the parameters; the constructor receives validated parameters.
var constructors = [backendCount]func(p Params, f PixelFormat, pitch int) (*Buffer, error){
	Software: newSoftware,
	External: newExternal,
	Streamed: newStreamed,
}

// New creates a surface. It either returns a fully constructed surface or
// nil and an error; it never panics on bad parameters.
func New(p Params) (*Buffer, error) {
	b, err := create(p)
	if err != nil {
		blit.Logger().Warn("surface: creation rejected",
			"width", p.Width, "height", p.Height, "type", p.Type, "err", err)
		return nil, err
	}
	return b, nil
}

func create(p Params) (*Buffer, error) {
	f, ok := p.Type.Format()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidType, p.Type)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, p.Width, p.Height)
	}
	if (p.Pix != nil || p.Hints&HintExternal != 0) && p.Uploader != nil {
		return nil, ErrConflictingParams
	}

	bpp := f.BytesPerPixel()
	pitch := p.Pitch
	switch {
	case pitch == 0:
		pitch = p.Width * bpp
	case pitch%bpp != 0:
		return nil, fmt.Errorf("%w: %d is not a multiple of %d", ErrInvalidPitch, pitch, bpp)
	case pitch < p.Width*bpp:
		return nil, fmt.Errorf("%w: %d is smaller than a row of %d bytes", ErrInvalidPitch, pitch, p.Width*bpp)
	}

	return constructors[selectBackend(p)](p, f, pitch)
}

func selectBackend(p Params) Backend {
	switch {
	case p.Pix != nil, p.Hints&HintExternal != 0:
		return External
	case p.Uploader != nil:
		return Streamed
	default:
		return Software
	}
}

func newSoftware(p Params, f PixelFormat, pitch int) (*Buffer, error) {
	return &Buffer{
		pix:     make([]byte, pitch*p.Height),
		width:   p.Width,
		height:  p.Height,
		pitch:   pitch,
		format:  f,
		backend: Software,
		hints:   p.Hints,
		scale:   p.Scale,
	}, nil
}

func newExternal(p Params, f PixelFormat, pitch int) (*Buffer, error) {
	if p.Pix == nil {
		return nil, ErrNilBuffer
	}
	need := (p.Height-1)*pitch + p.Width*f.BytesPerPixel()
	if len(p.Pix) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(p.Pix), need)
	}
	return &Buffer{
		pix:     p.Pix,
		width:   p.Width,
		height:  p.Height,
		pitch:   pitch,
		format:  f,
		backend: External,
		hints:   p.Hints,
		scale:   p.Scale,
	}, nil
}

func newStreamed(p Params, f PixelFormat, pitch int) (*Buffer, error) {
	if _, ok := textureFormatOf(f); !ok {
		return nil, fmt.Errorf("%w: %v has no texture format", ErrInvalidType, p.Type)
	}
	return &Buffer{
		pix:      make([]byte, pitch*p.Height),
		width:    p.Width,
		height:   p.Height,
		pitch:    pitch,
		format:   f,
		backend:  Streamed,
		hints:    p.Hints,
		uploader: p.Uploader,
		scale:    p.Scale,
	}, nil
}
