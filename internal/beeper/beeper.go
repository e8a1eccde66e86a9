//go:build !headless

// Package beeper plays the CHIP-8 sound signal on the audio device.
package beeper

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/retroenv/retrochip8/internal/tone"
)

const bufferSize = 50 * time.Millisecond

// Beeper plays the tone on the default audio device while active.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	tone   *tone.Tone
	active atomic.Bool
}

// New opens the audio device and starts the playback of silence.
func New() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   tone.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &Beeper{
		ctx:  ctx,
		tone: tone.New(tone.SampleRate, tone.Frequency, tone.Amplitude),
	}
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return b, nil
}

// Beep implements the frontend.Speaker interface.
func (b *Beeper) Beep(active bool) error {
	b.active.Store(active)
	return nil
}

// Read provides the samples to the audio device.
func (b *Beeper) Read(p []byte) (int, error) {
	active := b.active.Load()
	samples := len(p) / 4
	for i := range samples {
		sample := b.tone.Next(active)
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(sample))
	}
	return samples * 4, nil
}

// Close stops the playback.
func (b *Beeper) Close() error {
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
