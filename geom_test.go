package blit

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxEdges(t *testing.T) {
	r := Rt(2, 3, 4, 5)
	require.Equal(t, 6, r.Right())
	require.Equal(t, 8, r.Bottom())
	require.Equal(t, Pt(2, 3), r.Pos())
	require.Equal(t, Pt(4, 5), r.Size())
	require.Equal(t, Rt(3, 1, 4, 5), r.Translate(Pt(1, -2)))
	require.Equal(t, Rt(0, 0, 4, 5), r.At(Pt(0, 0)))
}

func TestBoxEmpty(t *testing.T) {
	require.True(t, Rect{}.Empty())
	require.True(t, Rt(1, 1, 0, 3).Empty())
	require.True(t, Rt(1, 1, 3, -1).Empty())
	require.False(t, Rt(-5, -5, 1, 1).Empty())
	require.True(t, RtF(0, 0, 0.5, 0).Empty())
}

func TestBoxIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		want     Rect
		overlaps bool
	}{
		{"inside", Rt(0, 0, 10, 10), Rt(2, 2, 3, 3), Rt(2, 2, 3, 3), true},
		{"partial", Rt(0, 0, 4, 4), Rt(2, -1, 4, 4), Rt(2, 0, 2, 3), true},
		{"touching", Rt(0, 0, 4, 4), Rt(4, 0, 4, 4), Rect{}, false},
		{"apart", Rt(0, 0, 2, 2), Rt(5, 5, 1, 1), Rect{}, false},
		{"empty", Rt(0, 0, 4, 4), Rt(1, 1, 0, 2), Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Intersect(tt.b))
			require.Equal(t, tt.want, tt.b.Intersect(tt.a))
			require.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			require.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestBoxIn(t *testing.T) {
	outer := Rt(0, 0, 8, 8)
	require.True(t, Rt(0, 0, 8, 8).In(outer))
	require.True(t, Rt(7, 7, 1, 1).In(outer))
	require.False(t, Rt(7, 7, 2, 1).In(outer))
	require.False(t, Rt(-1, 0, 2, 2).In(outer))
	require.True(t, Rt(20, 20, 0, 0).In(outer))
}

func TestOuterInnerRect(t *testing.T) {
	tests := []struct {
		r            RectF
		outer, inner Rect
	}{
		{RtF(1, 2, 3, 4), Rt(1, 2, 3, 4), Rt(1, 2, 3, 4)},
		{RtF(1.5, 1, 2, 1), Rt(1, 1, 3, 1), Rt(2, 1, 1, 1)},
		{RtF(-0.5, -1.25, 1, 0.5), Rt(-1, -2, 2, 2), Rect{X: 0, Y: -1}},
		{RtF(0.25, 0.25, 0.5, 0.5), Rt(0, 0, 1, 1), Rect{X: 1, Y: 1}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.outer, OuterRect(tt.r), "outer %v", tt.r)
		require.Equal(t, tt.inner, InnerRect(tt.r), "inner %v", tt.r)
		require.True(t, InnerRect(tt.r).In(OuterRect(tt.r)))
	}
}

func TestImageRect(t *testing.T) {
	r := Rt(3, 4, 5, 6)
	require.Equal(t, image.Rect(3, 4, 8, 10), ImageRect(r))
	require.Equal(t, r, FromImageRect(ImageRect(r)))
	require.Equal(t, RtF(3, 4, 5, 6), ToRectF(r))
}
