// Package headless provides a front-end without any output. It counts the
// presented frames and serves a key state that is set by its owner, which
// makes it usable for automated runs and tests.
package headless

import (
	"sync"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Frontend is a front-end that does not render anything.
type Frontend struct {
	mu     sync.Mutex
	frames uint64
	last   chip8.Framebuffer
	keys   chip8.KeyState

	done     chan struct{}
	stopOnce sync.Once
}

// New returns a new headless front-end.
func New() *Frontend {
	return &Frontend{
		done: make(chan struct{}),
	}
}

// Present records the framebuffer.
func (f *Frontend) Present(fb chip8.Framebuffer) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.frames++
	f.last = fb
	return nil
}

// Keys returns the key state set by SetKey.
func (f *Frontend) Keys() chip8.KeyState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.keys
}

// SetKey updates the state of a single keypad key.
func (f *Frontend) SetKey(key uint8, pressed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys.Set(key, pressed)
}

// Frames returns the number of presented frames.
func (f *Frontend) Frames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

// LastFrame returns the most recently presented framebuffer.
func (f *Frontend) LastFrame() chip8.Framebuffer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// Done returns a channel that is closed after Stop or Close was called.
func (f *Frontend) Done() <-chan struct{} {
	return f.done
}

// Stop signals that the emulation should end.
func (f *Frontend) Stop() {
	f.stopOnce.Do(func() { close(f.done) })
}

// Close implements the frontend.Frontend interface.
func (f *Frontend) Close() error {
	f.Stop()
	return nil
}
