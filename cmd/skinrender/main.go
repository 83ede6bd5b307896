// Command skinrender draws one block of a skin into a PNG.
//
//	skinrender -skin skin.toml -block button -state hover -src atlas.png -w 200 -h 48 -o out.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/compositor"
	"github.com/gogpu/blit/nineslice"
	"github.com/gogpu/blit/skin"
	"github.com/gogpu/blit/surface"
)

func main() {
	var (
		skinPath = flag.String("skin", "skin.toml", "skin description")
		block    = flag.String("block", "", "block name")
		state    = flag.String("state", "", "widget state")
		srcPath  = flag.String("src", "atlas.png", "atlas image")
		width    = flag.Int("w", 200, "output width")
		height   = flag.Int("h", 48, "output height")
		clip     = flag.String("clip", "", "clip rectangle x,y,w,h")
		bg       = flag.String("bg", "", "background color, hex")
		smooth   = flag.Bool("smooth", false, "interpolate scaled parts")
		output   = flag.String("o", "out.png", "output file, .png or .jpg")
		quality  = flag.Int("q", 90, "JPEG quality")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sk, err := skin.LoadFile(*skinPath)
	if err != nil {
		log.Fatal(err)
	}
	if *block == "" {
		log.Fatalf("no -block given; skin has %v", sk.Names())
	}
	b, paint, err := sk.Block(*block, *state)
	if err != nil {
		log.Fatal(err)
	}

	atlas, err := surface.Load(*srcPath, surface.BGRA8)
	if err != nil {
		log.Fatal(err)
	}
	if *smooth {
		atlas.SetScaleMode(surface.Interpolate)
	}

	dst, err := surface.New(surface.Params{Width: *width, Height: *height, Type: surface.BGRA8})
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer dst.Destroy()

	c := compositor.New(dst)
	defer c.Close()

	if *bg != "" {
		col, err := blit.ParseHex(*bg)
		if err != nil {
			log.Fatal(err)
		}
		c.Fill(dst.Bounds(), col, blit.PaintOf(blit.Opaque))
	}

	r := &nineslice.Renderer{Paint: paint}
	if *clip != "" {
		cr, err := parseRect(*clip)
		if err != nil {
			log.Fatal(err)
		}
		r.DrawClipped(c.Clip(cr), atlas, b, dst.Bounds())
	} else {
		r.Draw(c, atlas, b, dst.Bounds())
	}

	if err := dst.Save(*output, *quality); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	content := b.ContentRect(dst.Bounds())
	log.Printf("%s/%s saved to %s (%dx%d, content %v)\n", *block, *state, *output, *width, *height, content)
}

func parseRect(s string) (blit.Rect, error) {
	var r blit.Rect
	if _, err := fmt.Sscanf(s, "%d,%d,%d,%d", &r.X, &r.Y, &r.W, &r.H); err != nil {
		return r, fmt.Errorf("clip %q: %w", s, err)
	}
	return r, nil
}
