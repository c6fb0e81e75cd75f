//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostBattery drains slowly from full so the battery widget cycles
// through its frames during a long simulator session.
type hostBattery struct {
	mu    sync.Mutex
	start time.Time
}

func newHostBattery() *hostBattery {
	return &hostBattery{start: time.Now()}
}

func (b *hostBattery) Percent() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	// 1% per 30 simulated seconds, wrapping back to full.
	drained := int(time.Since(b.start)/(30*time.Second)) % 101
	return 100 - drained
}

// hostHealth accumulates fake steps at a walking pace.
type hostHealth struct {
	mu    sync.Mutex
	start time.Time
	base  int
}

func newHostHealth() *hostHealth {
	return &hostHealth{start: time.Now(), base: 4200}
}

func (h *hostHealth) Steps() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Roughly two steps per second on top of the base count.
	return h.base + int(time.Since(h.start)/(500*time.Millisecond))
}
