// Package skin loads nine-slice block descriptions from TOML.
//
// A skin file names blocks cut from one atlas image. Each block may
// override its source rectangle, borders or tint per widget state, and
// may list states in which it is not drawn:
//
//	[blocks.button]
//	src = [0, 0, 24, 24]    # x, y, w, h in the atlas
//	borders = [4, 4, 4, 4]  # left, top, right, bottom
//	padding = [6, 4]        # horizontal, vertical
//	tile = ["center"]
//	mode = "Blend"
//	tint = "#ffffff"
//	skip = ["hidden"]
//
//	[blocks.button.states.hover]
//	src = [24, 0, 24, 24]
//
// Inset lists take one value for all sides, two for horizontal and
// vertical, or four in left, top, right, bottom order.
package skin

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/nineslice"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrUnknownBlock is returned by Block for names the skin lacks.
	ErrUnknownBlock = errors.New("skin: unknown block")

	// ErrInvalidBlock is returned by Load for malformed block entries.
	ErrInvalidBlock = errors.New("skin: invalid block")
)

// file mirrors the TOML document.
type file struct {
	Blocks map[string]blockDef `toml:"blocks"`
}

type blockDef struct {
	Src     []int               `toml:"src"`
	Borders []int               `toml:"borders"`
	Padding []int               `toml:"padding"`
	Tile    []string            `toml:"tile"`
	Mode    string              `toml:"mode"`
	Tint    string              `toml:"tint"`
	Skip    []string            `toml:"skip"`
	States  map[string]stateDef `toml:"states"`
}

type stateDef struct {
	Src     []int  `toml:"src"`
	Borders []int  `toml:"borders"`
	Tint    string `toml:"tint"`
}

var tileNames = map[string]nineslice.Tile{
	"top":    nineslice.TileTop,
	"bottom": nineslice.TileBottom,
	"left":   nineslice.TileLeft,
	"right":  nineslice.TileRight,
	"center": nineslice.TileCenter,
	"edges":  nineslice.TileEdges,
	"all":    nineslice.TileAll,
}

type entry struct {
	block  nineslice.Block
	paint  blit.Paint
	skip   map[string]bool
	states map[string]variant
}

type variant struct {
	block nineslice.Block
	paint blit.Paint
}

// Skin is a set of named blocks.
type Skin struct {
	blocks map[string]*entry
}

// Load decodes a skin from r. Unknown keys are rejected.
func Load(r io.Reader) (*Skin, error) {
	var f file
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		return nil, fmt.Errorf("skin: decode: %w", err)
	}

	s := &Skin{blocks: make(map[string]*entry, len(f.Blocks))}
	for name, def := range f.Blocks {
		e, err := resolve(def)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidBlock, name, err)
		}
		s.blocks[name] = e
	}
	blit.Logger().Debug("skin: loaded", "blocks", len(s.blocks))
	return s, nil
}

// LoadFile reads a skin from the named file.
func LoadFile(path string) (*Skin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("skin: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Names returns the block names in sorted order.
func (s *Skin) Names() []string {
	return slices.Sorted(maps.Keys(s.blocks))
}

// Block returns the block called name as drawn in state, along with the
// paint to draw it with. An empty or unknown state selects the base
// block. The returned block has Skip set for states the block lists as
// skipped.
func (s *Skin) Block(name, state string) (nineslice.Block, blit.Paint, error) {
	e, ok := s.blocks[name]
	if !ok {
		return nineslice.Block{}, blit.Paint{}, fmt.Errorf("%w: %q", ErrUnknownBlock, name)
	}
	b, p := e.block, e.paint
	if v, ok := e.states[state]; ok {
		b, p = v.block, v.paint
	}
	b.Skip = e.skip[state]
	return b, p, nil
}

func resolve(def blockDef) (*entry, error) {
	e := &entry{
		skip:   make(map[string]bool, len(def.Skip)),
		states: make(map[string]variant, len(def.States)),
	}

	var err error
	if e.block.Src, err = rect(def.Src); err != nil {
		return nil, err
	}
	if e.block.Borders, err = insets("borders", def.Borders); err != nil {
		return nil, err
	}
	if e.block.Padding, err = insets("padding", def.Padding); err != nil {
		return nil, err
	}
	for _, name := range def.Tile {
		t, ok := tileNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown tile part %q", name)
		}
		e.block.Tile |= t
	}
	if !e.block.Valid() {
		return nil, fmt.Errorf("borders %v do not fit src %v", def.Borders, def.Src)
	}

	e.paint = blit.PaintOf(blit.Blend)
	if def.Mode != "" {
		m, ok := blit.ParseBlendMode(def.Mode)
		if !ok {
			return nil, fmt.Errorf("unknown mode %q", def.Mode)
		}
		e.paint.Mode = m
	}
	if def.Tint != "" {
		if e.paint.Tint, err = blit.ParseHex(def.Tint); err != nil {
			return nil, err
		}
	}

	for _, state := range def.Skip {
		e.skip[state] = true
	}

	for state, sd := range def.States {
		v := variant{block: e.block, paint: e.paint}
		if sd.Src != nil {
			if v.block.Src, err = rect(sd.Src); err != nil {
				return nil, fmt.Errorf("state %q: %w", state, err)
			}
		}
		if sd.Borders != nil {
			if v.block.Borders, err = insets("borders", sd.Borders); err != nil {
				return nil, fmt.Errorf("state %q: %w", state, err)
			}
		}
		if sd.Tint != "" {
			if v.paint.Tint, err = blit.ParseHex(sd.Tint); err != nil {
				return nil, fmt.Errorf("state %q: %w", state, err)
			}
		}
		if !v.block.Valid() {
			return nil, fmt.Errorf("state %q: borders do not fit src %v", state, v.block.Src)
		}
		e.states[state] = v
	}
	return e, nil
}

func rect(v []int) (blit.Rect, error) {
	if len(v) != 4 {
		return blit.Rect{}, fmt.Errorf("src needs 4 values, got %d", len(v))
	}
	r := blit.Rt(v[0], v[1], v[2], v[3])
	if r.Empty() || r.X < 0 || r.Y < 0 {
		return blit.Rect{}, fmt.Errorf("src %v is empty or negative", v)
	}
	return r, nil
}

func insets(key string, v []int) (nineslice.Borders, error) {
	var b nineslice.Borders
	switch len(v) {
	case 0:
	case 1:
		b = nineslice.Borders{Left: v[0], Top: v[0], Right: v[0], Bottom: v[0]}
	case 2:
		b = nineslice.Borders{Left: v[0], Top: v[1], Right: v[0], Bottom: v[1]}
	case 4:
		b = nineslice.Borders{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}
	default:
		return b, fmt.Errorf("%s needs 1, 2 or 4 values, got %d", key, len(v))
	}
	if b.Left < 0 || b.Top < 0 || b.Right < 0 || b.Bottom < 0 {
		return b, fmt.Errorf("%s %v is negative", key, v)
	}
	return b, nil
}
