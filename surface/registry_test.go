// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/blit"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want error
	}{
		{"unknown type", Params{Width: 4, Height: 4, Type: PixelType(9)}, ErrInvalidType},
		{"zero type", Params{Width: 4, Height: 4}, ErrInvalidType},
		{"zero width", Params{Width: 0, Height: 4, Type: BGRA8}, ErrInvalidSize},
		{"negative height", Params{Width: 4, Height: -1, Type: BGRA8}, ErrInvalidSize},
		{"pitch not multiple", Params{Width: 4, Height: 4, Type: BGRA8, Pitch: 18}, ErrInvalidPitch},
		{"pitch too small", Params{Width: 4, Height: 4, Type: BGR8, Pitch: 9}, ErrInvalidPitch},
		{"nil external buffer", Params{Width: 4, Height: 4, Type: BGRA8, Hints: HintExternal}, ErrNilBuffer},
		{"short external buffer", Params{Width: 4, Height: 4, Type: BGRA8, Pix: make([]byte, 63)}, ErrBufferTooSmall},
		{"buffer and uploader", Params{Width: 4, Height: 4, Type: BGRA8, Pix: make([]byte, 64), Uploader: nopUploader()}, ErrConflictingParams},
		{"streamed without texture format", Params{Width: 4, Height: 4, Type: BGR8, Uploader: nopUploader()}, ErrInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.p)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, b)
		})
	}
}

func TestNewSelectsBackend(t *testing.T) {
	soft, err := New(Params{Width: 3, Height: 2, Type: BGR8})
	require.NoError(t, err)
	require.Equal(t, Software, soft.Backend())
	require.Equal(t, 9, soft.Pitch())

	pix := make([]byte, 2*32)
	ext, err := New(Params{Width: 3, Height: 2, Type: BGRA8, Pix: pix, Pitch: 32})
	require.NoError(t, err)
	require.Equal(t, External, ext.Backend())
	require.Equal(t, 32, ext.Pitch())

	st, err := New(Params{Width: 3, Height: 2, Type: BGRA8, Uploader: nopUploader()})
	require.NoError(t, err)
	require.Equal(t, Streamed, st.Backend())
}

func TestExternalBufferIsShared(t *testing.T) {
	// The last row does not need padding.
	pix := make([]byte, 16+8)
	b, err := New(Params{Width: 2, Height: 2, Type: BGRA8, Pix: pix, Pitch: 16})
	require.NoError(t, err)

	reg, err := b.Lock(LockWriteOnly)
	require.NoError(t, err)
	copy(reg.Pixel(1, 1), []byte{1, 2, 3, 4})
	b.Unlock()

	require.Equal(t, []byte{1, 2, 3, 4}, pix[20:24])
}

type recordingUploader struct {
	rects   []blit.Rect
	formats []gputypes.TextureFormat
	rows    [][]byte
	err     error
}

func (u *recordingUploader) Upload(pix []byte, pitch int, r blit.Rect, f gputypes.TextureFormat) error {
	u.rects = append(u.rects, r)
	u.formats = append(u.formats, f)
	u.rows = append(u.rows, append([]byte(nil), pix[:r.W*4]...))
	return u.err
}

func nopUploader() Uploader {
	return UploaderFunc(func([]byte, int, blit.Rect, gputypes.TextureFormat) error { return nil })
}

func TestStreamedUploadsWrites(t *testing.T) {
	up := &recordingUploader{}
	b, err := New(Params{Width: 4, Height: 4, Type: BGRA8, Uploader: up})
	require.NoError(t, err)

	reg, err := b.LockRegion(LockWriteOnly, blit.Rt(1, 2, 2, 1))
	require.NoError(t, err)
	copy(reg.Pixel(1, 2), []byte{9, 8, 7, 6})
	b.Unlock()

	require.Equal(t, []blit.Rect{blit.Rt(1, 2, 2, 1)}, up.rects)
	require.Equal(t, gputypes.TextureFormatBGRA8Unorm, up.formats[0])
	require.Equal(t, []byte{9, 8, 7, 6, 0, 0, 0, 0}, up.rows[0])

	// Read locks are not uploaded.
	_, err = b.Lock(LockReadOnly)
	require.NoError(t, err)
	b.Unlock()
	require.Len(t, up.rects, 1)

	// Upload failures are logged, not surfaced.
	up.err = errors.New("device lost")
	_, err = b.Lock(LockReadWrite)
	require.NoError(t, err)
	b.Unlock()
	require.Len(t, up.rects, 2)
	require.Equal(t, LockNone, b.LockState())
}

func TestWriteOnlyHint(t *testing.T) {
	st, err := New(Params{Width: 2, Height: 2, Type: BGRA8, Uploader: nopUploader(), Hints: HintWriteOnly})
	require.NoError(t, err)

	_, err = st.Lock(LockReadOnly)
	require.ErrorIs(t, err, ErrWriteOnly)
	_, err = st.Lock(LockReadWrite)
	require.ErrorIs(t, err, ErrWriteOnly)
	_, err = st.Lock(LockWriteOnly)
	require.NoError(t, err)
	st.Unlock()
	require.Equal(t, blit.Transparent, st.PixelAt(0, 0))

	// CPU-resident surfaces ignore the hint.
	soft, err := New(Params{Width: 2, Height: 2, Type: BGRA8, Hints: HintWriteOnly})
	require.NoError(t, err)
	_, err = soft.Lock(LockReadOnly)
	require.NoError(t, err)
	soft.Unlock()
}

func TestBackendString(t *testing.T) {
	require.Equal(t, "Software", Software.String())
	require.Equal(t, "External", External.String())
	require.Equal(t, "Streamed", Streamed.String())
	require.Equal(t, "Unknown", Backend(42).String())
}
