//go:build headless

// Package window provides a graphical front-end that shows the display in
// a scaled window.
package window

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// ErrNotSupported is returned by builds without window support.
var ErrNotSupported = errors.New("window front-end is not included in headless builds")

// Frontend is not available in headless builds.
type Frontend struct{}

// New returns ErrNotSupported.
func New(_ *log.Logger, _ int) (*Frontend, error) {
	return nil, ErrNotSupported
}

// Present implements the frontend.Frontend interface.
func (f *Frontend) Present(chip8.Framebuffer) error { return ErrNotSupported }

// Keys implements the frontend.Frontend interface.
func (f *Frontend) Keys() chip8.KeyState { return chip8.KeyState{} }

// ShowHalt does nothing in headless builds.
func (f *Frontend) ShowHalt(string) {}

// Done implements the frontend.Frontend interface.
func (f *Frontend) Done() <-chan struct{} { return nil }

// Close implements the frontend.Frontend interface.
func (f *Frontend) Close() error { return nil }
