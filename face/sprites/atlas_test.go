package sprites

import (
	"image/color"
	"testing"

	"fiftyeight/face/glyph"
)

// recordDisplay counts SetPixel calls per coordinate.
type recordDisplay struct {
	w, h int
	set  map[[2]int16]int
}

func newRecordDisplay(w, h int) *recordDisplay {
	return &recordDisplay{w: w, h: h, set: make(map[[2]int16]int)}
}

func (d *recordDisplay) Size() (int16, int16) { return int16(d.w), int16(d.h) }
func (d *recordDisplay) Display() error       { return nil }
func (d *recordDisplay) SetPixel(x, y int16, _ color.RGBA) {
	d.set[[2]int16{x, y}]++
}

func TestEveryFamilyRendersEveryDigit(t *testing.T) {
	for fi := 0; fi < glyph.FamilyCount; fi++ {
		f := glyph.Family(fi)
		a := ForFamily(f)
		cw, ch := a.CellSize()
		if cw != f.Width() || ch != glyph.Height {
			t.Fatalf("%v atlas cell %dx%d, want %dx%d", f, cw, ch, f.Width(), glyph.Height)
		}
		for digit := 0; digit <= 9; digit++ {
			d := newRecordDisplay(cw, ch)
			if err := a.DrawDigit(d, digit, 0, 0, color.RGBA{A: 0xFF}); err != nil {
				t.Fatalf("%v digit %d: %v", f, digit, err)
			}
			if len(d.set) == 0 {
				t.Fatalf("%v digit %d drew nothing", f, digit)
			}
		}
	}
}

func TestDrawDigitRejectsOutOfRange(t *testing.T) {
	a := ForFamily(glyph.Priority)
	d := newRecordDisplay(64, 64)
	if err := a.DrawDigit(d, 10, 0, 0, color.RGBA{A: 0xFF}); err == nil {
		t.Fatalf("digit 10 accepted")
	}
	if err := a.DrawDigit(d, -1, 0, 0, color.RGBA{A: 0xFF}); err == nil {
		t.Fatalf("digit -1 accepted")
	}
	if len(d.set) != 0 {
		t.Fatalf("rejected digits still drew pixels")
	}
}

func TestDigitsStayInsideTheirCell(t *testing.T) {
	a := New(13, 18) // narrowest cell is the tightest fit
	for digit := 0; digit <= 9; digit++ {
		d := newRecordDisplay(13, 18)
		if err := a.DrawDigit(d, digit, 0, 0, color.RGBA{A: 0xFF}); err != nil {
			t.Fatalf("digit %d: %v", digit, err)
		}
		for p := range d.set {
			if p[0] < 0 || p[0] >= 13 || p[1] < 0 || p[1] >= 18 {
				t.Fatalf("digit %d leaked outside its cell at %v", digit, p)
			}
		}
	}
}

func TestDistinctDigitsDistinctBitmaps(t *testing.T) {
	a := ForFamily(glyph.Subpriority)
	cw, ch := a.CellSize()

	shape := func(digit int) string {
		d := newRecordDisplay(cw, ch)
		_ = a.DrawDigit(d, digit, 0, 0, color.RGBA{A: 0xFF})
		buf := make([]byte, cw*ch)
		for p := range d.set {
			buf[int(p[1])*cw+int(p[0])] = 1
		}
		return string(buf)
	}

	seen := make(map[string]int)
	for digit := 0; digit <= 9; digit++ {
		s := shape(digit)
		if prev, dup := seen[s]; dup {
			t.Fatalf("digits %d and %d render identically", prev, digit)
		}
		seen[s] = digit
	}
}

func TestZeroCellIsLastRow(t *testing.T) {
	a := ForFamily(glyph.Least)
	cw, _ := a.CellSize()

	// Digit 0 lives at row 3 col 0, so its sheet pixels start at
	// y >= 3*Height and x < cellW.
	found := false
	for y := 3 * glyph.Height; y < 4*glyph.Height; y++ {
		for x := 0; x < cw; x++ {
			if a.Bit(x, y) {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("zero glyph missing from the last grid row")
	}
	// Columns 1 and 2 of the last row stay empty.
	for y := 3 * glyph.Height; y < 4*glyph.Height; y++ {
		for x := cw; x < 3*cw; x++ {
			if a.Bit(x, y) {
				t.Fatalf("unexpected pixels beside the zero glyph at (%d,%d)", x, y)
			}
		}
	}
}
