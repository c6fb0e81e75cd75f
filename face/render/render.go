// Package render composes one watch-face frame: background, indicator
// dots, masking rectangle, the HH:MM glyph string, and corner widgets.
//
// Everything is recomputed from the Frame snapshot on every call; the
// renderer holds only the immutable atlases.
package render

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"fiftyeight/face/dial"
	"fiftyeight/face/glyph"
	"fiftyeight/face/sprites"
	"fiftyeight/face/widgets"
	"fiftyeight/hal"
)

var (
	colorLight = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorDark  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Circular path and dot geometry.
const (
	pathRadius = 50
	dotRadius  = 4
)

// Options mirror the externally supplied settings record. The core
// treats them as read-only for the duration of a frame.
type Options struct {
	DarkMode           bool
	TwentyFourHour     bool
	TwoLetterDay       bool
	ShowSecondDot      bool
	ShowHourMinuteDots bool
	StepGoal           int
	Widgets            widgets.Config
	Rules              []glyph.Rule // nil means glyph.DefaultRules
}

// Frame is the per-tick snapshot of external facts: wall clock, date,
// battery, steps. Nothing in it outlives one render pass.
type Frame struct {
	Hour    int // 0..23
	Minute  int // 0..59
	Second  int // 0..59
	Month   int // 1..12
	Day     int // 1..31
	Weekday int // 0 = Sunday

	BatteryPercent int
	Steps          int
}

// Renderer owns the glyph atlases and draws complete frames.
type Renderer struct {
	atlases   [glyph.FamilyCount]*sprites.Atlas
	dateAtlas *sprites.Atlas
	font      tinyfont.Fonter
}

// New builds the per-family digit atlases once; they are immutable
// afterwards and shared across frames.
func New() *Renderer {
	r := &Renderer{
		dateAtlas: sprites.New(widgets.DateCellW, widgets.DateCellH),
		font:      &proggy.TinySZ8pt7b,
	}
	for i := range r.atlases {
		r.atlases[i] = sprites.ForFamily(glyph.Family(i))
	}
	return r
}

// Draw renders one complete frame into the framebuffer. It does not
// call Present; the tick loop owns that.
func (r *Renderer) Draw(fb hal.Framebuffer, f Frame, o Options) {
	bg, ink := colorLight, colorDark
	if o.DarkMode {
		bg, ink = colorDark, colorLight
	}

	d := newFBDisplay(fb)
	fb.ClearRGB(bg.R, bg.G, bg.B)

	w := fb.Width()
	h := fb.Height()
	center := dial.Point{X: w / 2, Y: h / 2}

	// Dots first: the masking rectangle below erases whatever would
	// show through the time string.
	if o.ShowHourMinuteDots {
		p := dial.OnCircle(dial.HourPhase(f.Hour, f.Minute), pathRadius, center)
		fillCircle(d, p.X, p.Y, dotRadius, ink)
		p = dial.OnCircle(dial.MinutePhase(f.Minute), pathRadius, center)
		fillCircle(d, p.X, p.Y, dotRadius, ink)
	}
	if o.ShowSecondDot {
		p := dial.OnCircle(dial.SecondPhase(f.Second), pathRadius, center)
		fillCircle(d, p.X, p.Y, dotRadius, ink)
	}

	res := glyph.Layout(f.Hour, f.Minute, glyph.Options{
		TwentyFourHour: o.TwentyFourHour,
		Rules:          o.Rules,
	})
	x0 := (w - res.Width) / 2
	y0 := (h - res.Height) / 2

	fillRect(d, x0, y0, res.Width, res.Height, bg)

	for _, p := range res.Placements {
		switch p.Kind {
		case glyph.PlaceDigit:
			_ = r.atlases[p.Family].DrawDigit(d, p.Digit, int16(x0+p.X), int16(y0+p.Y), ink)
		case glyph.PlaceColon:
			r.drawColon(d, x0+p.X, y0+p.Y, ink)
		}
	}

	r.drawCorner(d, widgets.TopLeft, f, o, ink)
	r.drawCorner(d, widgets.TopRight, f, o, ink)
}

// drawColon stacks two 4x4 squares inside the 8px colon slot.
func (r *Renderer) drawColon(d *fbDisplay, x, y int, ink color.RGBA) {
	fillRect(d, x+2, y+4, 4, 4, ink)
	fillRect(d, x+2, y+10, 4, 4, ink)
}

func (r *Renderer) drawCorner(d *fbDisplay, corner widgets.Corner, f Frame, o Options, ink color.RGBA) {
	t := o.Widgets.TopLeft
	if corner == widgets.TopRight {
		t = o.Widgets.TopRight
	}
	if t == widgets.None {
		return
	}
	// AM/PM is meaningless in 24-hour mode.
	if t == widgets.AMPM && o.TwentyFourHour {
		return
	}

	wc := widgets.Context{Month: f.Month, Day: f.Day, Weekday: f.Weekday, TwoLetter: o.TwoLetterDay}

	x := widgets.Padding
	if corner == widgets.TopRight {
		x = d.fb.Width() - widgets.Width(t, wc) - widgets.Padding
	}
	y := widgets.Padding

	switch t {
	case widgets.MonthDate:
		r.drawDate(d, f.Month, x, y, ink)
	case widgets.DayDate:
		r.drawDate(d, f.Day, x, y, ink)
	case widgets.DayName:
		label := widgets.DayLabel(f.Weekday, o.TwoLetterDay)
		tinyfont.WriteLine(d, r.font, int16(x), int16(y)+widgets.DateCellH, label, ink)
	case widgets.AMPM:
		label := "AM"
		if widgets.IsPM(f.Hour) {
			label = "PM"
		}
		tinyfont.WriteLine(d, r.font, int16(x), int16(y)+widgets.DateCellH, label, ink)
	case widgets.Battery:
		filled := 9 - widgets.BatteryFrame(f.BatteryPercent)
		r.drawGauge(d, x, y, filled, 9, ink)
	case widgets.Steps:
		filled := widgets.StepsFrame(f.Steps, o.StepGoal) + 1
		r.drawGauge(d, x, y, filled, 9, ink)
	}
}

func (r *Renderer) drawDate(d *fbDisplay, value, x, y int, ink color.RGBA) {
	for _, digit := range widgets.DateDigits(value) {
		_ = r.dateAtlas.DrawDigit(d, digit, int16(x), int16(y), ink)
		x += widgets.DateCellW + widgets.DateGap
	}
}

// drawGauge renders a horizontal level indicator: 1px outline, a nub on
// the right, and a fill proportional to filled/total.
func (r *Renderer) drawGauge(d *fbDisplay, x, y, filled, total int, ink color.RGBA) {
	bodyW := widgets.GaugeW - 3 // leave room for the nub
	h := widgets.GaugeH

	// Outline.
	fillRect(d, x, y, bodyW, 1, ink)
	fillRect(d, x, y+h-1, bodyW, 1, ink)
	fillRect(d, x, y, 1, h, ink)
	fillRect(d, x+bodyW-1, y, 1, h, ink)

	// Nub.
	fillRect(d, x+bodyW, y+h/2-3, 3, 6, ink)

	if filled < 0 {
		filled = 0
	}
	if filled > total {
		filled = total
	}
	inner := (bodyW - 4) * filled / total
	if inner > 0 {
		fillRect(d, x+2, y+2, inner, h-4, ink)
	}
}
