// Package app drives the watch face: it owns the settings, reads the
// clock and sensors through the HAL, and redraws when the displayed
// second changes.
package app

import (
	"fmt"
	"time"

	"fiftyeight/face/render"
	"fiftyeight/hal"
	"fiftyeight/internal/buildinfo"
)

type face struct {
	h        hal.HAL
	renderer *render.Renderer
	settings Settings

	dirty    bool
	lastUnix int64
}

// New returns a step function that advances the face by one tick.
func New(h hal.HAL) func() error {
	return NewWithSettings(h, DefaultSettings())
}

func NewWithSettings(h hal.HAL, s Settings) func() error {
	f := &face{
		h:        h,
		renderer: render.New(),
		settings: s,
		dirty:    true,
	}
	logf(h, "fiftyeight %s: widgets %s/%s, goal %d",
		buildinfo.Short(), s.TopLeft, s.TopRight, s.StepGoal)
	return f.step
}

// Run blocks forever, stepping the face on every tick (TinyGo/native
// entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for range h.Clock().Ticks() {
		if err := step(); err != nil {
			logf(h, "step: %v", err)
		}
	}
}

func (f *face) step() error {
	f.pollKeys()

	now := f.h.Clock().Now()
	if !f.dirty && now.Unix() == f.lastUnix {
		return nil
	}
	f.dirty = false
	f.lastUnix = now.Unix()

	frame := render.Frame{
		Hour:    now.Hour(),
		Minute:  now.Minute(),
		Second:  now.Second(),
		Month:   int(now.Month()),
		Day:     now.Day(),
		Weekday: int(now.Weekday()),
	}
	if b := f.h.Battery(); b != nil {
		frame.BatteryPercent = b.Percent()
	}
	if s := f.h.Health(); s != nil {
		frame.Steps = s.Steps()
	}

	disp := f.h.Display()
	if disp == nil {
		return nil
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return nil
	}

	f.renderer.Draw(fb, frame, f.settings.renderOptions())
	return fb.Present()
}

func (f *face) pollKeys() {
	in := f.h.Input()
	if in == nil {
		return
	}
	kb := in.Keyboard()
	if kb == nil {
		return
	}
	ch := kb.Events()
	if ch == nil {
		return
	}
	for {
		select {
		case ev := <-ch:
			if ev.Press {
				f.handleKey(ev)
			}
		default:
			return
		}
	}
}

func (f *face) handleKey(ev hal.KeyEvent) {
	switch ev.Code {
	case hal.KeyRight:
		f.advanceClock(time.Minute)
		return
	case hal.KeyUp:
		f.advanceClock(time.Hour)
		return
	case hal.KeyDown:
		f.advanceClock(12 * time.Hour)
		return
	}

	switch ev.Rune {
	case 'd':
		f.settings.DarkMode = !f.settings.DarkMode
		f.toggled("dark mode", f.settings.DarkMode)
	case 't':
		f.settings.TwentyFourHour = !f.settings.TwentyFourHour
		f.toggled("24-hour format", f.settings.TwentyFourHour)
	case 'l':
		f.settings.TwoLetterDay = !f.settings.TwoLetterDay
		f.toggled("two-letter day", f.settings.TwoLetterDay)
	case 's':
		f.settings.ShowSecondDot = !f.settings.ShowSecondDot
		f.toggled("second dot", f.settings.ShowSecondDot)
	case 'o':
		f.settings.ShowHourMinuteDots = !f.settings.ShowHourMinuteDots
		f.toggled("hour/minute dots", f.settings.ShowHourMinuteDots)
	case 'w':
		f.settings.TopLeft = nextWidget(f.settings.TopLeft)
		logf(f.h, "top-left widget: %s", f.settings.TopLeft)
		f.dirty = true
	case 'q':
		f.settings.TopRight = nextWidget(f.settings.TopRight)
		logf(f.h, "top-right widget: %s", f.settings.TopRight)
		f.dirty = true
	}
}

// advanceClock fast-forwards the wall clock on platforms whose clock
// supports it (the simulator does, the watch does not).
func (f *face) advanceClock(d time.Duration) {
	type advancer interface {
		Advance(time.Duration)
	}
	if adv, ok := f.h.Clock().(advancer); ok {
		adv.Advance(d)
		f.dirty = true
	}
}

func (f *face) toggled(name string, on bool) {
	state := "off"
	if on {
		state = "on"
	}
	logf(f.h, "%s: %s", name, state)
	f.dirty = true
}

func logf(h hal.HAL, format string, args ...any) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}
