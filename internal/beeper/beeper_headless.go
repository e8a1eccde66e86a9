//go:build headless

// Package beeper plays the CHIP-8 sound signal on the audio device.
package beeper

import "errors"

// Beeper is not available in headless builds.
type Beeper struct{}

// New returns an error, headless builds do not include audio output.
func New() (*Beeper, error) {
	return nil, errors.New("audio output is not included in headless builds")
}

// Beep implements the frontend.Speaker interface.
func (b *Beeper) Beep(bool) error { return nil }

// Close implements the frontend.Speaker interface.
func (b *Beeper) Close() error { return nil }
