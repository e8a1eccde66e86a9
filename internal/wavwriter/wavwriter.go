// Package wavwriter records the sound signal of the machine to a WAV file.
package wavwriter

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/tone"
)

const (
	bitDepth = 16

	// SamplesPerFrame is the number of samples recorded per 60 Hz frame.
	SamplesPerFrame = tone.SampleRate / chip8.TimerFrequency

	// wavFormatPCM is the audio format code for uncompressed PCM data.
	wavFormatPCM = 1
)

// Writer buffers the samples of all frames and writes them to a mono
// 16 bit PCM WAV file on Close.
type Writer struct {
	path    string
	tone    *tone.Tone
	samples []int
}

// New returns a new writer for the given file.
func New(path string) *Writer {
	return &Writer{
		path: path,
		tone: tone.New(tone.SampleRate, tone.Frequency, tone.Amplitude),
	}
}

// Beep records a frame of either the tone or silence.
func (w *Writer) Beep(active bool) error {
	for range SamplesPerFrame {
		sample := w.tone.Next(active)
		w.samples = append(w.samples, int(sample*math.MaxInt16))
	}
	return nil
}

// Samples returns the number of recorded samples.
func (w *Writer) Samples() int {
	return len(w.samples)
}

// Close writes the recording to the file.
func (w *Writer) Close() error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}

	enc := wav.NewEncoder(f, tone.SampleRate, bitDepth, 1, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  tone.SampleRate,
		},
		Data:           w.samples,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("finishing wav file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing wav file: %w", err)
	}
	return nil
}
