package compositor

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/internal/lut"
	"github.com/gogpu/blit/surface"
)

// Tables is the lookup table context shared by compositors.
type Tables = lut.Tables

// AcquireTables returns a reference to the shared lookup tables. Pass it
// to several compositors with WithTables and call Release when done.
func AcquireTables() *Tables {
	return lut.Acquire()
}

// Option configures a Compositor during creation.
type Option func(*options)

type options struct {
	tables *lut.Tables
}

// WithTables makes the compositor use t instead of acquiring the shared
// tables itself. The caller keeps ownership: Close does not release t.
func WithTables(t *Tables) Option {
	return func(o *options) {
		o.tables = t
	}
}

// Compositor renders into one destination surface.
//
// Every operation locks the surfaces it touches for the duration of its
// pixel loop and unlocks them before returning, so the destination must
// not be locked by the caller. Operations silently clip to the
// destination bounds. An operation whose lock fails has no effect; the
// failure is logged at debug level.
//
// A Compositor is not safe for concurrent use.
type Compositor struct {
	dst    surface.Surface
	layout blend.Layout
	valid  bool

	t   *lut.Tables
	own bool
}

// New returns a compositor rendering into dst.
//
// Destinations whose format is not byte aligned with 8-bit channels are
// accepted, but every operation on them is a no-op.
func New(dst surface.Surface, opts ...Option) *Compositor {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Compositor{dst: dst, t: o.tables}
	if c.t == nil {
		c.t = lut.Acquire()
		c.own = true
	}

	c.layout, c.valid = layoutOf(dst.Format())
	if !c.valid {
		blit.Logger().Warn("compositor: unsupported destination format", "format", dst.Format())
	}
	return c
}

// Close releases the lookup tables acquired by New. The compositor must
// not be used afterwards. Close is idempotent.
func (c *Compositor) Close() {
	if c.t == nil {
		return
	}
	if c.own {
		c.t.Release()
	}
	c.t = nil
	c.valid = false
}

// Target returns the destination surface.
func (c *Compositor) Target() surface.Surface {
	return c.dst
}

// Bounds returns the destination bounds.
func (c *Compositor) Bounds() blit.Rect {
	return c.dst.Bounds()
}

func layoutOf(f surface.PixelFormat) (blend.Layout, bool) {
	r, g, b, a, ok := f.Offsets()
	if !ok {
		return blend.Layout{}, false
	}
	return blend.Layout{BPP: f.BytesPerPixel(), R: r, G: g, B: b, A: a}, true
}

// view is a locked pixel window addressed in surface coordinates.
type view struct {
	pix   []byte
	pitch int
	r     blit.Rect
	l     blend.Layout
}

func (v *view) offset(x, y int) int {
	return (y-v.r.Y)*v.pitch + (x-v.r.X)*v.l.BPP
}

func (v *view) at(x, y int) []byte {
	o := v.offset(x, y)
	return v.pix[o : o+v.l.BPP : o+v.l.BPP]
}

func (v *view) row(x, y, n int) []byte {
	o := v.offset(x, y)
	return v.pix[o : o+n*v.l.BPP]
}

func (v *view) contains(x, y int) bool {
	return x >= v.r.X && y >= v.r.Y && x < v.r.Right() && y < v.r.Bottom()
}

// clone copies the window into memory owned by the view.
func (v view) clone() view {
	stride := v.r.W * v.l.BPP
	pix := make([]byte, stride*v.r.H)
	for y := 0; y < v.r.H; y++ {
		copy(pix[y*stride:(y+1)*stride], v.row(v.r.X, v.r.Y+y, v.r.W))
	}
	v.pix, v.pitch = pix, stride
	return v
}

// lockDst locks r of the destination. The caller unlocks on success.
func (c *Compositor) lockDst(r blit.Rect, mode surface.LockMode) (view, bool) {
	reg, err := c.dst.LockRegion(mode, r)
	if err != nil {
		blit.Logger().Debug("compositor: destination lock failed", "rect", r, "err", err)
		return view{}, false
	}
	return view{pix: reg.Pix, pitch: reg.Pitch, r: reg.Rect, l: c.layout}, true
}

// lockSrc locks r of src for reading and returns its pixels and the
// function that releases them. When src is the destination the pixels
// are copied and the lock is released immediately.
func (c *Compositor) lockSrc(src surface.Surface, r blit.Rect) (view, func(), bool) {
	l, ok := layoutOf(src.Format())
	if !ok {
		blit.Logger().Debug("compositor: unsupported source format", "format", src.Format())
		return view{}, nil, false
	}
	reg, err := src.LockRegion(surface.LockReadOnly, r)
	if err != nil {
		blit.Logger().Debug("compositor: source lock failed", "rect", r, "err", err)
		return view{}, nil, false
	}
	v := view{pix: reg.Pix, pitch: reg.Pitch, r: reg.Rect, l: l}
	if src == c.dst {
		v = v.clone()
		src.Unlock()
		return v, func() {}, true
	}
	return v, src.Unlock, true
}

// dstMode returns the lock mode a blend mode needs on the destination.
func dstMode(m blit.BlendMode) surface.LockMode {
	if m == blit.Opaque {
		return surface.LockWriteOnly
	}
	return surface.LockReadWrite
}

// normalize maps unknown blend modes to Blend.
func normalize(p blit.Paint) blit.Paint {
	if !p.Mode.IsValid() {
		p.Mode = blit.Blend
	}
	return p
}

// visible reports whether drawing color s with mode m can change the
// destination.
func (c *Compositor) visible(m blit.BlendMode, s blit.Color) bool {
	switch m {
	case blit.Blend:
		return s.A != 0
	case blit.Add:
		a := int(s.A)
		return int(c.t.Div[int(s.R)*a])+int(c.t.Div[int(s.G)*a])+int(c.t.Div[int(s.B)*a]) != 0
	default:
		return true
	}
}

// canvas plots coverage values into a locked destination window.
type canvas struct {
	t    *lut.Tables
	v    view
	mode blit.BlendMode
}

func (cv *canvas) plot(x, y int, cov uint8, s blit.Color) {
	if cov == 0 || !cv.v.contains(x, y) {
		return
	}
	f, s := blend.Coverage(cv.t, cv.mode, s, cov)
	f(cv.t, cv.v.at(x, y), &cv.v.l, s)
}

// withCanvas locks bbox ∩ win read-write and runs draw on it.
func (c *Compositor) withCanvas(win, bbox blit.Rect, mode blit.BlendMode, draw func(cv *canvas)) {
	r := bbox.Intersect(win)
	if r.Empty() {
		return
	}
	v, ok := c.lockDst(r, surface.LockReadWrite)
	if !ok {
		return
	}
	defer c.dst.Unlock()
	draw(&canvas{t: c.t, v: v, mode: mode})
}
