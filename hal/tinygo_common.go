//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoClock struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoClock() *tinyGoClock {
	c := &tinyGoClock{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			c.seq++
			select {
			case c.ch <- c.seq:
			default:
			}
		}
	}()
	return c
}

func (c *tinyGoClock) Ticks() <-chan uint64 { return c.ch }

// Now returns the RTC time. TinyGo's time package counts from boot
// unless the RTC has been set externally; the face renders whatever it
// is given.
func (c *tinyGoClock) Now() time.Time { return time.Now() }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
