// Package tone generates the square wave that represents the CHIP-8 sound
// signal.
package tone

// Tone parameters of the beeper.
const (
	SampleRate = 44100
	Frequency  = 440
	Amplitude  = 0.25
)

// Tone generates a square wave. The phase continues while the tone is
// silent so that toggling it does not reset the wave form.
type Tone struct {
	sampleRate int
	frequency  int
	amplitude  float32
	position   int
}

// New returns a square wave generator.
func New(sampleRate, frequency int, amplitude float32) *Tone {
	return &Tone{
		sampleRate: sampleRate,
		frequency:  frequency,
		amplitude:  amplitude,
	}
}

// Next returns the next sample, or silence if the tone is not active.
func (t *Tone) Next(active bool) float32 {
	half := t.position * 2 * t.frequency / t.sampleRate
	t.position++
	if t.position == t.sampleRate {
		t.position = 0
	}

	switch {
	case !active:
		return 0
	case half%2 == 0:
		return t.amplitude
	default:
		return -t.amplitude
	}
}
