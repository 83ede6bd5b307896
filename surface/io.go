// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnreadable is returned when a surface cannot be read for encoding.
var ErrUnreadable = errors.New("surface: not readable")

// Decode reads a PNG or JPEG image into a new surface of type t.
func Decode(r io.Reader, t PixelType) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("surface: decode: %w", err)
	}
	return FromImage(img, t)
}

// Load reads an image file into a new surface of type t.
func Load(path string, t PixelType) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("surface: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, t)
}

// EncodePNG writes the surface to w as a PNG.
func (b *Buffer) EncodePNG(w io.Writer) error {
	img := b.Image()
	if img == nil {
		return ErrUnreadable
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("surface: encode PNG: %w", err)
	}
	return nil
}

// Save writes the surface to path. The format follows the extension:
// ".jpg" and ".jpeg" write JPEG at the given quality, anything else
// writes PNG.
func (b *Buffer) Save(path string, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("surface: create file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = b.encodeJPEG(f, quality)
	default:
		err = b.EncodePNG(f)
	}
	if err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (b *Buffer) encodeJPEG(w io.Writer, quality int) error {
	img := b.Image()
	if img == nil {
		return ErrUnreadable
	}
	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("surface: encode JPEG: %w", err)
	}
	return nil
}
