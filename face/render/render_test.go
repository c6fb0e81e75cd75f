package render

import (
	"bytes"
	"testing"

	"fiftyeight/face/widgets"
	"fiftyeight/hal"
)

// memFB is an in-memory RGB565 framebuffer for tests.
type memFB struct {
	w, h int
	buf  []byte
}

func newMemFB(w, h int) *memFB {
	return &memFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int        { return f.w * 2 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) Present() error          { return nil }

func (f *memFB) ClearRGB(r, g, b uint8) {
	p := rgb565From888(r, g, b)
	lo := byte(p)
	hi := byte(p >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memFB) at(x, y int) uint16 {
	off := y*f.StrideBytes() + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

var testFrame = Frame{
	Hour: 1, Minute: 15, Second: 15,
	Month: 8, Day: 26, Weekday: 3,
	BatteryPercent: 80, Steps: 5000,
}

func defaultOptions() Options {
	return Options{
		ShowHourMinuteDots: true,
		StepGoal:           widgets.DefaultStepGoal,
	}
}

func TestDrawDeterministic(t *testing.T) {
	r := New()

	a := newMemFB(144, 168)
	b := newMemFB(144, 168)
	r.Draw(a, testFrame, defaultOptions())
	r.Draw(b, testFrame, defaultOptions())

	if !bytes.Equal(a.buf, b.buf) {
		t.Fatalf("identical frames rendered differently")
	}
}

func TestBackgroundFollowsDarkMode(t *testing.T) {
	r := New()
	fb := newMemFB(144, 168)

	r.Draw(fb, testFrame, defaultOptions())
	if got := fb.at(0, 0); got != rgb565From888(0xFF, 0xFF, 0xFF) {
		t.Fatalf("light mode corner pixel = %#04x, want white", got)
	}

	o := defaultOptions()
	o.DarkMode = true
	r.Draw(fb, testFrame, o)
	if got := fb.at(0, 0); got != rgb565From888(0, 0, 0) {
		t.Fatalf("dark mode corner pixel = %#04x, want black", got)
	}
}

// The masking rectangle must make the time box independent of the dots:
// at second=15 the second dot lands inside the box and has to be erased.
func TestMaskErasesDotsUnderTimeString(t *testing.T) {
	r := New()

	withDots := newMemFB(144, 168)
	withoutDots := newMemFB(144, 168)

	o := defaultOptions()
	o.ShowSecondDot = true
	r.Draw(withDots, testFrame, o)

	o.ShowSecondDot = false
	o.ShowHourMinuteDots = false
	r.Draw(withoutDots, testFrame, o)

	// 1:15 lays out to 114x18 centered on 144x168.
	x0, y0, w, h := (144-114)/2, (168-18)/2, 114, 18
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if withDots.at(x, y) != withoutDots.at(x, y) {
				t.Fatalf("dot leaked through the mask at (%d,%d)", x, y)
			}
		}
	}

	if bytes.Equal(withDots.buf, withoutDots.buf) {
		t.Fatalf("dots were not drawn at all")
	}
}

func TestCornerWidgetToggles(t *testing.T) {
	r := New()

	o := defaultOptions()
	o.Widgets = widgets.Config{TopRight: widgets.Battery}
	withWidget := newMemFB(144, 168)
	r.Draw(withWidget, testFrame, o)

	o.Widgets = widgets.Config{}
	bare := newMemFB(144, 168)
	r.Draw(bare, testFrame, o)

	ink := rgb565From888(0, 0, 0)
	found := false
	for y := widgets.Padding; y < widgets.Padding+widgets.GaugeH; y++ {
		for x := 144 - widgets.Padding - widgets.GaugeW; x < 144-widgets.Padding; x++ {
			if withWidget.at(x, y) == ink {
				found = true
			}
			if bare.at(x, y) == ink {
				t.Fatalf("widget pixels present with no widget configured at (%d,%d)", x, y)
			}
		}
	}
	if !found {
		t.Fatalf("battery widget drew nothing")
	}
}

func TestAMPMHiddenInTwentyFourHourMode(t *testing.T) {
	r := New()

	o := defaultOptions()
	o.Widgets = widgets.Config{TopLeft: widgets.AMPM}
	o.TwentyFourHour = true
	fb := newMemFB(144, 168)
	r.Draw(fb, testFrame, o)

	ink := rgb565From888(0, 0, 0)
	for y := widgets.Padding; y < widgets.Padding+widgets.AMPMH; y++ {
		for x := widgets.Padding; x < widgets.Padding+widgets.AMPMW; x++ {
			if fb.at(x, y) == ink {
				t.Fatalf("AM/PM drawn in 24-hour mode at (%d,%d)", x, y)
			}
		}
	}
}

func TestDateWidgetDrawsDigits(t *testing.T) {
	r := New()

	o := defaultOptions()
	o.Widgets = widgets.Config{TopLeft: widgets.DayDate}
	fb := newMemFB(144, 168)
	r.Draw(fb, testFrame, o)

	ink := rgb565From888(0, 0, 0)
	count := 0
	wide := widgets.DateCellW*2 + widgets.DateGap
	for y := widgets.Padding; y < widgets.Padding+widgets.DateCellH; y++ {
		for x := widgets.Padding; x < widgets.Padding+wide; x++ {
			if fb.at(x, y) == ink {
				count++
			}
		}
	}
	if count == 0 {
		t.Fatalf("day-date widget drew nothing")
	}
}
