// Package runner drives a machine at the CHIP-8 timer rate, connecting it to
// a front-end and speakers.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// FrameDuration is the host period of a single frame.
const FrameDuration = time.Second / chip8.TimerFrequency

// ErrStopped is returned by Run when the front-end requested to quit.
var ErrStopped = errors.New("emulation stopped")

// Runner executes frames of a machine.
type Runner struct {
	logger   *log.Logger
	machine  *chip8.Machine
	frontend frontend.Frontend
	speakers []frontend.Speaker
	opts     options.Program

	keys   chip8.KeyState
	frames uint64
}

// New creates a new runner. The machine keypad is replaced by the key state
// that the runner copies from the front-end at the start of every frame.
func New(logger *log.Logger, machine *chip8.Machine, fe frontend.Frontend,
	opts options.Program, speakers ...frontend.Speaker) *Runner {

	if opts.CyclesPerFrame < 1 {
		opts.CyclesPerFrame = options.DefaultCyclesPerFrame
	}

	r := &Runner{
		logger:   logger,
		machine:  machine,
		frontend: fe,
		speakers: speakers,
		opts:     opts,
	}
	machine.SetKeypad(&r.keys)
	return r
}

// Frames returns the number of completed frames.
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Frame runs a single frame: it polls the keys, executes the configured
// number of instructions, ticks the timers and updates the outputs.
func (r *Runner) Frame() error {
	r.keys = r.frontend.Keys()

	for range r.opts.CyclesPerFrame {
		if err := r.step(); err != nil {
			return err
		}
	}

	r.machine.TickTimers()

	active := r.machine.SoundActive()
	for _, speaker := range r.speakers {
		if err := speaker.Beep(active); err != nil {
			return fmt.Errorf("updating speaker: %w", err)
		}
	}

	if err := r.frontend.Present(r.machine.Framebuffer()); err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}

	r.frames++
	return nil
}

func (r *Runner) step() error {
	pc := r.machine.State.PC
	ins, err := r.machine.Step()
	if err != nil {
		// the caller reports the returned error
		r.logger.Debug("Execution halted",
			log.Hex("pc", pc),
			log.Hex("opcode", ins.Raw),
			log.Err(err))
		return fmt.Errorf("executing %s at $%03X: %w", ins, pc, err)
	}

	if r.opts.Trace {
		r.logger.Debug("Executed",
			log.Hex("pc", pc),
			log.Hex("opcode", ins.Raw),
			log.String("instruction", ins.String()))
	}
	return nil
}

// Run executes frames at TimerFrequency until the context is cancelled,
// the front-end is done, the frame limit is reached or an instruction fails.
// Cancellation returns the context error, a quit request of the front-end
// returns ErrStopped and reaching the frame limit returns nil.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	for {
		if r.opts.MaxFrames > 0 && r.frames >= r.opts.MaxFrames {
			r.logger.Debug("Frame limit reached", log.Int("frames", int(r.frames)))
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("running emulation: %w", ctx.Err())
		case <-r.frontend.Done():
			return ErrStopped
		case <-ticker.C:
			if err := r.Frame(); err != nil {
				return err
			}
		}
	}
}

// Close closes the front-end and all speakers.
func (r *Runner) Close() error {
	var errs []error
	for _, speaker := range r.speakers {
		if err := speaker.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing speaker: %w", err))
		}
	}
	if err := r.frontend.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing front-end: %w", err))
	}
	return errors.Join(errs...)
}
