//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// Display geometry of the target watch.
const (
	DisplayWidth  = 144
	DisplayHeight = 168
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	clk    *hostClock
	bat    *hostBattery
	health *hostHealth
}

// New returns a host HAL implementation.
//
// The framebuffer matches the watch display; battery and steps are
// simulated so the corner widgets have something to show.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(DisplayWidth, DisplayHeight),
		kbd:    newHostKeyboard(),
		clk:    newHostClock(),
		bat:    newHostBattery(),
		health: newHostHealth(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Clock() Clock     { return h.clk }
func (h *hostHAL) Battery() Battery { return h.bat }
func (h *hostHAL) Health() Health   { return h.health }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
