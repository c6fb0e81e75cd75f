package sprites

import "fiftyeight/face/glyph"

// Digit shapes come from the classic seven-segment layout:
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
//
// One bit per segment, gfedcba order.
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

var segDigits = [10]uint8{
	0: segA | segB | segC | segD | segE | segF,
	1: segB | segC,
	2: segA | segB | segG | segE | segD,
	3: segA | segB | segG | segC | segD,
	4: segF | segG | segB | segC,
	5: segA | segF | segG | segC | segD,
	6: segA | segF | segG | segE | segC | segD,
	7: segA | segB | segC,
	8: segA | segB | segC | segD | segE | segF | segG,
	9: segA | segB | segC | segD | segF | segG,
}

// renderDigit strokes one digit into its grid cell, scaling segment
// thickness with the cell size so narrow families stay legible.
func (a *Atlas) renderDigit(digit int) {
	row, col, err := glyph.Cell(digit)
	if err != nil {
		return
	}
	ox := col * a.cellW
	oy := row * a.cellH

	w := a.cellW
	h := a.cellH

	// Stroke thicknesses, horizontal and vertical.
	th := w / 6
	if th < 2 {
		th = 2
	}
	tv := h / 8
	if tv < 2 {
		tv = 2
	}
	mid := h / 2

	fill := func(x0, y0, x1, y1 int) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				a.setBit(ox+x, oy+y)
			}
		}
	}

	segs := segDigits[digit]
	if segs&segA != 0 {
		fill(1, 0, w-1, tv)
	}
	if segs&segG != 0 {
		fill(1, mid-tv/2, w-1, mid-tv/2+tv)
	}
	if segs&segD != 0 {
		fill(1, h-tv, w-1, h)
	}
	if segs&segF != 0 {
		fill(0, 1, th, mid)
	}
	if segs&segB != 0 {
		fill(w-th, 1, w, mid)
	}
	if segs&segE != 0 {
		fill(0, mid, th, h-1)
	}
	if segs&segC != 0 {
		fill(w-th, mid, w, h-1)
	}
}
