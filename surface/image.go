// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/blit"
	"golang.org/x/image/draw"
)

// FromImage creates a Software surface holding a copy of img.
func FromImage(img image.Image, t PixelType) (*Buffer, error) {
	bounds := img.Bounds()
	b, err := New(Params{Width: bounds.Dx(), Height: bounds.Dy(), Type: t})
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	reg, err := b.Lock(LockWriteOnly)
	if err != nil {
		return nil, err
	}
	defer b.Unlock()

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := nrgba.PixOffset(x, y)
			s := nrgba.Pix[i : i+4 : i+4]
			b.encode(reg.Pixel(x, y), blit.Color{R: s[0], G: s[1], B: s[2], A: s[3]})
		}
	}
	return b, nil
}

// Image returns a copy of the surface as an NRGBA image. It returns nil
// when the surface cannot be locked for reading.
func (b *Buffer) Image() *image.NRGBA {
	reg, err := b.Lock(LockReadOnly)
	if err != nil {
		return nil
	}
	defer b.Unlock()

	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.decode(reg.Pixel(x, y))
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}
