// Package sprites holds the digit atlas bitmaps. The glyph package only
// reasons about cell geometry; this package supplies the pixels.
//
// Atlases are generated at startup from segment strokes instead of
// shipping image assets: each family's digits are the same shapes scaled
// into that family's cell. Drawing goes through drivers.Displayer so the
// same blit path serves the host framebuffer and a real panel.
package sprites

import (
	"image/color"

	"tinygo.org/x/drivers"

	"fiftyeight/face/glyph"
)

// Atlas is a 1bpp sprite sheet of the digits 0-9 laid out on the shared
// glyph grid (three per row, zero alone on the last row). By
// construction it has GridCols*GridRows = 12 addressable cells, which
// satisfies the ten-digit minimum.
type Atlas struct {
	cellW  int
	cellH  int
	stride int // bytes per bitmap row
	bits   []byte
}

// ForFamily builds the digit atlas for one size class.
func ForFamily(f glyph.Family) *Atlas {
	return New(f.Width(), glyph.Height)
}

// New builds a digit atlas with the given cell size.
func New(cellW, cellH int) *Atlas {
	a := &Atlas{
		cellW:  cellW,
		cellH:  cellH,
		stride: (cellW*glyph.GridCols + 7) / 8,
	}
	a.bits = make([]byte, a.stride*cellH*glyph.GridRows)
	for d := 0; d <= 9; d++ {
		a.renderDigit(d)
	}
	return a
}

// CellSize returns one glyph cell's dimensions.
func (a *Atlas) CellSize() (w, h int) { return a.cellW, a.cellH }

// Size returns the full sheet dimensions.
func (a *Atlas) Size() (w, h int) {
	return a.cellW * glyph.GridCols, a.cellH * glyph.GridRows
}

// Bit reports whether the sheet pixel at (x, y) is set.
func (a *Atlas) Bit(x, y int) bool {
	w, h := a.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	return a.bits[y*a.stride+x/8]&(0x80>>(x%8)) != 0
}

func (a *Atlas) setBit(x, y int) {
	w, h := a.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	a.bits[y*a.stride+x/8] |= 0x80 >> (x % 8)
}

// DrawDigit blits one digit cell with its top-left corner at (x, y).
func (a *Atlas) DrawDigit(d drivers.Displayer, digit int, x, y int16, c color.RGBA) error {
	row, col, err := glyph.Cell(digit)
	if err != nil {
		return err
	}

	ox := col * a.cellW
	oy := row * a.cellH
	for py := 0; py < a.cellH; py++ {
		for px := 0; px < a.cellW; px++ {
			if a.Bit(ox+px, oy+py) {
				d.SetPixel(x+int16(px), y+int16(py), c)
			}
		}
	}
	return nil
}
