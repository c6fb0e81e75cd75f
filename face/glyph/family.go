// Package glyph decides which digit size class renders each position of
// an HH:MM string and computes the pixel geometry to place every glyph.
//
// The package is pure: it never touches pixels. Atlas bitmaps live in
// face/sprites; this package only knows each family's fixed cell size
// and the shared sprite-sheet grid.
package glyph

import "fmt"

// Family is a fixed-width digit size class. Each family maps to one
// atlas image holding glyphs for digits 0-9 in the shared grid.
type Family uint8

const (
	// Priority is the widest, most legible class, used for the large
	// single hour digit.
	Priority Family = iota
	// MidPriority sits between Priority and Subpriority; the default
	// table uses it for two-digit evening hours in 24-hour mode.
	MidPriority
	// Lesser is a narrow class used for a minute leading zero.
	Lesser
	// Subpriority is the default class for two-digit fields.
	Subpriority
	// Least is the narrowest class: half-width "1" in mixed two-digit
	// hours, demoted trailing zeros, and the classifier fallback.
	Least

	familyCount
)

var familyWidths = [familyCount]int{
	Priority:    40,
	MidPriority: 32,
	Lesser:      20,
	Subpriority: 30,
	Least:       13,
}

// Height is the glyph cell height, constant across families.
const Height = 18

// Width returns the family's fixed glyph width in pixels.
func (f Family) Width() int {
	if f >= familyCount {
		return familyWidths[Least]
	}
	return familyWidths[f]
}

func (f Family) String() string {
	switch f {
	case Priority:
		return "priority"
	case MidPriority:
		return "midpriority"
	case Lesser:
		return "lesser"
	case Subpriority:
		return "subpriority"
	case Least:
		return "least"
	}
	return "unknown"
}

// FamilyCount is the number of defined size classes.
const FamilyCount = int(familyCount)

// Sprite-sheet grid shared by every family's atlas: three glyphs per
// row, digits 1-9 ascending, digit 0 alone on the last row.
const (
	GridCols = 3
	GridRows = 4
)

// Cell returns the atlas grid cell holding digit. Digits outside [0,9]
// are the only error in this package.
func Cell(digit int) (row, col int, err error) {
	if digit < 0 || digit > 9 {
		return 0, 0, fmt.Errorf("glyph: digit %d out of range", digit)
	}
	if digit == 0 {
		return 3, 0, nil
	}
	return (digit - 1) / GridCols, (digit - 1) % GridCols, nil
}
