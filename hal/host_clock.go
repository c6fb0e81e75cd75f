//go:build !tinygo

package hal

import "time"

type hostClock struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration

	// offset lets the simulator fast-forward the wall clock.
	offset time.Duration
}

func newHostClock() *hostClock {
	return &hostClock{ch: make(chan uint64, 1024)}
}

func (c *hostClock) Ticks() <-chan uint64 { return c.ch }

func (c *hostClock) Now() time.Time { return time.Now().Add(c.offset) }

// Advance shifts the simulated wall clock by d. Used by the window
// backend's fast-forward keys.
func (c *hostClock) Advance(d time.Duration) { c.offset += d }

func (c *hostClock) step(n uint64) {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		c.acc = 0
		c.stepN(n)
		return
	}

	c.acc += now.Sub(c.last)
	c.last = now

	const tickDur = time.Millisecond
	ticks := uint64(c.acc / tickDur)
	if ticks == 0 {
		return
	}
	c.acc = c.acc % tickDur
	c.stepN(ticks)
}

func (c *hostClock) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		c.seq++
		select {
		case c.ch <- c.seq:
		default:
		}
	}
}
