//go:build !tinygo

// Command mkatlas dumps the generated digit atlases as PNG files for
// visual inspection.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"fiftyeight/face/glyph"
	"fiftyeight/face/sprites"
	"fiftyeight/face/widgets"
)

func main() {
	var (
		outDir = flag.String("out", ".", "Output directory.")
		scale  = flag.Int("scale", 1, "Integer upscale factor.")
	)
	flag.Parse()

	if *scale < 1 {
		fatalf("scale must be >= 1")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("%v", err)
	}

	families := []glyph.Family{
		glyph.Priority,
		glyph.MidPriority,
		glyph.Subpriority,
		glyph.Lesser,
		glyph.Least,
	}
	for _, f := range families {
		name := strings.ToLower(f.String()) + ".png"
		if err := dump(sprites.ForFamily(f), filepath.Join(*outDir, name), *scale); err != nil {
			fatalf("%s: %v", name, err)
		}
	}

	date := sprites.New(widgets.DateCellW, widgets.DateCellH)
	if err := dump(date, filepath.Join(*outDir, "date.png"), *scale); err != nil {
		fatalf("date.png: %v", err)
	}
}

func dump(a *sprites.Atlas, path string, scale int) error {
	w, h := a.Size()
	img := image.NewGray(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !a.Bit(x, y) {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetGray(x*scale+dx, y*scale+dy, color.Gray{Y: 0xFF})
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "mkatlas: "+format+"\n", args...)
	os.Exit(1)
}
