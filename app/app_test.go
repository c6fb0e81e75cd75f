package app

import (
	"testing"
	"time"

	"fiftyeight/face/widgets"
	"fiftyeight/hal"
)

type fakeFB struct {
	buf      []byte
	presents int
}

func newFakeFB() *fakeFB { return &fakeFB{buf: make([]byte, 144*168*2)} }

func (f *fakeFB) Width() int { return 144 }
func (f *fakeFB) Height() int { return 168 }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int { return 144 * 2 }
func (f *fakeFB) Buffer() []byte { return f.buf }
func (f *fakeFB) ClearRGB(r, g, b uint8) {}
func (f *fakeFB) Present() error { f.presents++; return nil }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Ticks() <-chan uint64     { return nil }
func (c *fakeClock) Now() time.Time           { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeKeyboard struct {
	ch chan hal.KeyEvent
}

func (k *fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeHAL struct {
	fb  *fakeFB
	clk *fakeClock
	kbd *fakeKeyboard
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		fb:  newFakeFB(),
		clk: &fakeClock{now: time.Date(2025, 6, 1, 1, 23, 45, 0, time.UTC)},
		kbd: &fakeKeyboard{ch: make(chan hal.KeyEvent, 8)},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return nil }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }
func (h *fakeHAL) Clock() hal.Clock     { return h.clk }
func (h *fakeHAL) Battery() hal.Battery { return nil }
func (h *fakeHAL) Health() hal.Health   { return nil }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h.kbd }

func TestRedrawsOnlyWhenSecondChanges(t *testing.T) {
	h := newFakeHAL()
	step := New(h)

	for i := 0; i < 3; i++ {
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if h.fb.presents != 1 {
		t.Fatalf("presents = %d, want 1 (same second)", h.fb.presents)
	}

	h.clk.Advance(time.Second)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.fb.presents != 2 {
		t.Fatalf("presents = %d, want 2 after a second passed", h.fb.presents)
	}
}

func TestKeyToggleForcesRedraw(t *testing.T) {
	h := newFakeHAL()
	step := New(h)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	h.kbd.ch <- hal.KeyEvent{Press: true, Rune: 'd'}
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.fb.presents != 2 {
		t.Fatalf("presents = %d, want 2 after toggle", h.fb.presents)
	}

	// Releases are ignored.
	h.kbd.ch <- hal.KeyEvent{Press: false, Rune: 'd'}
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.fb.presents != 2 {
		t.Fatalf("presents = %d, want 2 after release", h.fb.presents)
	}
}

func TestArrowKeysFastForward(t *testing.T) {
	h := newFakeHAL()
	step := New(h)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	before := h.clk.Now()

	h.kbd.ch <- hal.KeyEvent{Press: true, Code: hal.KeyRight}
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	if got := h.clk.Now().Sub(before); got != time.Minute {
		t.Fatalf("clock advanced by %v, want 1m", got)
	}
	if h.fb.presents != 2 {
		t.Fatalf("presents = %d, want 2 after fast-forward", h.fb.presents)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.DarkMode || s.TwentyFourHour || s.TwoLetterDay || s.ShowSecondDot {
		t.Fatalf("unexpected default toggles: %+v", s)
	}
	if !s.ShowHourMinuteDots {
		t.Fatalf("hour/minute dots should default on")
	}
	if s.StepGoal != widgets.DefaultStepGoal {
		t.Fatalf("StepGoal = %d, want %d", s.StepGoal, widgets.DefaultStepGoal)
	}
	if s.TopLeft != widgets.DayDate || s.TopRight != widgets.Battery {
		t.Fatalf("default widgets = %s/%s, want day/battery", s.TopLeft, s.TopRight)
	}
}

func TestNextWidgetCycles(t *testing.T) {
	seen := map[widgets.Type]bool{}
	w := widgets.None
	for i := 0; i < len(widgetCycle); i++ {
		w = nextWidget(w)
		if seen[w] {
			t.Fatalf("widget %s repeated before cycle completed", w)
		}
		seen[w] = true
	}
	if w != widgets.None {
		t.Fatalf("cycle did not return to none, got %s", w)
	}
}
