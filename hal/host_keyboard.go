//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	// Letter keys become setting toggles in the app.
	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	// Arrows fast-forward the simulated clock.
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		emit(KeyEvent{Code: KeyUp, Press: true})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		emit(KeyEvent{Code: KeyDown, Press: true})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		emit(KeyEvent{Code: KeyLeft, Press: true})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		emit(KeyEvent{Code: KeyRight, Press: true})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		emit(KeyEvent{Code: KeyEscape, Press: true})
	}
}
