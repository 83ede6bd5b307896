// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/gputypes"
)

// Uploader receives the pixels written to a Streamed surface.
//
// Upload is called from Unlock with the region that was locked for
// writing. pix starts at the region's top-left pixel and rows are pitch
// bytes apart. The slice is only valid for the duration of the call.
type Uploader interface {
	Upload(pix []byte, pitch int, r blit.Rect, format gputypes.TextureFormat) error
}

// UploaderFunc adapts a function to the Uploader interface.
type UploaderFunc func(pix []byte, pitch int, r blit.Rect, format gputypes.TextureFormat) error

// Upload calls f.
func (f UploaderFunc) Upload(pix []byte, pitch int, r blit.Rect, format gputypes.TextureFormat) error {
	return f(pix, pitch, r, format)
}

// TextureFormat returns the GPU texture format with the same memory
// layout as f, or gputypes.TextureFormatUndefined.
func (f PixelFormat) TextureFormat() gputypes.TextureFormat {
	tf, _ := textureFormatOf(f)
	return tf
}

// FormatFromTexture returns the pixel format with the same memory layout
// as a GPU texture format.
func FormatFromTexture(tf gputypes.TextureFormat) (PixelFormat, bool) {
	switch tf {
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA8, true
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA8, true
	default:
		return PixelFormat{}, false
	}
}

func textureFormatOf(f PixelFormat) (gputypes.TextureFormat, bool) {
	switch f {
	case FormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm, true
	case FormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

func (b *Buffer) upload(r blit.Rect) {
	if b.uploader == nil {
		return
	}
	reg := newRegion(b.pix, b.pitch, r, b.format, LockReadOnly)
	err := b.uploader.Upload(reg.Pix, reg.Pitch, r, b.format.TextureFormat())
	if err != nil {
		blit.Logger().Warn("surface: upload failed", "rect", r, "err", err)
	}
}
