package tui

import (
	"time"

	"github.com/vovakirdan/boxworld/internal/core"
)

// KeyBuffer turns terminal key presses into per-tick input frames.
// Terminals never report key release, so a held direction lapses when no
// repeat arrives within the hold timeout, and switching to another direction
// yields one released frame before the new key is held.
type KeyBuffer struct {
	timeout time.Duration
	held    core.Direction
	run     bool
	last    time.Time
	action  bool
	pressed core.Direction
	release bool
}

// NewKeyBuffer creates a buffer with the given hold timeout.
func NewKeyBuffer(timeout time.Duration) *KeyBuffer {
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	return &KeyBuffer{timeout: timeout}
}

// Press records a direction press or repeat.
func (b *KeyBuffer) Press(d core.Direction, run bool, now time.Time) {
	if b.held != core.DirNone && b.held != d {
		b.release = true
	}
	b.held = d
	b.pressed = d
	b.run = run
	b.last = now
}

// Pulse records an action press. It is delivered in exactly one frame.
func (b *KeyBuffer) Pulse() {
	b.action = true
}

// Release drops the held direction immediately.
func (b *KeyBuffer) Release() {
	b.held = core.DirNone
	b.run = false
	b.release = false
}

// Frame returns the input for one tick and consumes the action pulse.
// A pending direction switch is reported as a frame with nothing held; the
// directional press itself is kept for the frame after.
func (b *KeyBuffer) Frame(now time.Time) core.InputFrame {
	if b.held != core.DirNone && now.Sub(b.last) > b.timeout {
		b.Release()
	}
	if b.release {
		b.release = false
		f := core.InputFrame{Run: b.run, Action: b.action}
		b.action = false
		return f
	}
	f := core.InputFrame{Held: b.held, Run: b.run, Action: b.action, Pressed: b.pressed}
	b.action = false
	b.pressed = core.DirNone
	return f
}
