package compositor

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/blit"
)

// WaveStyle holds the colors of a wave plot. Parts whose color is fully
// transparent are not drawn.
type WaveStyle struct {
	// TopLine and BottomLine color the upper and lower trace of each
	// column.
	TopLine, BottomLine blit.Color

	// Above, Between and Below fill the areas above the upper trace,
	// between the traces and below the lower trace.
	Above, Between, Below blit.Color
}

// Wave plots two traces over area. a[i] and b[i] are the vertical
// offsets of the traces in column i, measured from the top of area.
// The plot spans min(len(a), len(b), area.W) columns.
//
// The role of a trace follows its position: in every column the upper
// trace is drawn with TopLine and the lower with BottomLine, so the
// colors swap where the traces cross.
func (c *Compositor) Wave(area blit.Rect, a, b []float32, style WaveStyle, p blit.Paint) {
	c.wave(c.dst.Bounds(), area, a, b, style, p)
}

func (c *Compositor) wave(win, area blit.Rect, a, b []float32, style WaveStyle, p blit.Paint) {
	n := min(len(a), len(b), area.W)
	if !c.valid || n <= 0 || area.H <= 0 {
		return
	}
	p = normalize(p)

	// Resolve the effective colors once; nil means skip.
	paint := func(col blit.Color) *blit.Color {
		if col.A == 0 {
			return nil
		}
		s := col.Mul(p.Tint)
		if !c.visible(p.Mode, s) {
			return nil
		}
		return &s
	}
	topLine, bottomLine := paint(style.TopLine), paint(style.BottomLine)
	above, between, below := paint(style.Above), paint(style.Between), paint(style.Below)

	h := float32(area.H)
	clamp := func(v float32) float32 {
		if math32.IsNaN(v) {
			return 0
		}
		return math32.Max(0, math32.Min(v, h))
	}

	c.withCanvas(win, area, p.Mode, func(cv *canvas) {
		column := func(x int, y0, y1 float32, s *blit.Color) {
			if s == nil || y1 <= y0 {
				return
			}
			y0, y1 = math32.Max(y0, 0), math32.Min(y1, h)
			for row := int(math32.Floor(y0)); float32(row) < y1; row++ {
				top := math32.Max(y0, float32(row))
				bot := math32.Min(y1, float32(row+1))
				cov := uint8(math32.Round(math32.Min(bot-top, 1) * 255))
				cv.plot(area.X+x, area.Y+row, cov, *s)
			}
		}

		prevA, prevB := clamp(a[0]), clamp(b[0])
		for i := range n {
			ya, yb := clamp(a[i]), clamp(b[i])
			upper, lower := ya, yb
			if ya > yb {
				upper, lower = yb, ya
			}

			column(i, 0, upper, above)
			column(i, upper, lower, between)
			column(i, lower, h, below)

			// Each trace joins its previous sample with a one pixel wide
			// vertical run. The upper trace is drawn last.
			runA := func(s *blit.Color) {
				column(i, math32.Min(prevA, ya)-0.5, math32.Max(prevA, ya)+0.5, s)
			}
			runB := func(s *blit.Color) {
				column(i, math32.Min(prevB, yb)-0.5, math32.Max(prevB, yb)+0.5, s)
			}
			if ya <= yb {
				runB(bottomLine)
				runA(topLine)
			} else {
				runA(bottomLine)
				runB(topLine)
			}
			prevA, prevB = ya, yb
		}
	})
}
