// Package fileprocessor handles ROM file loading and processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/statedump"
	"github.com/retroenv/retrochip8/internal/statsview"
	"github.com/retroenv/retrochip8/internal/wavwriter"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Devices creates the interactive host devices. They are provided by the
// caller to keep this package independent of the graphics and audio
// libraries.
type Devices struct {
	// NewFrontend creates a terminal or window front-end.
	NewFrontend func(logger *log.Logger, opts options.Program) (frontend.Frontend, error)
	// NewBeeper creates the speaker that plays the tone on the audio device.
	NewBeeper func() (frontend.Speaker, error)
}

// halter is implemented by front-ends that can show the reason of a halt.
type halter interface {
	ShowHalt(message string)
}

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler, devices Devices) error {

	data, err := loader.New(logger).Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	if opts.Disasm {
		return disassemble(logger, data, opts, disasmOptions)
	}
	return emulate(ctx, logger, data, opts, devices)
}

func disassemble(logger *log.Logger, data []byte, opts options.Program, disasmOptions options.Disassembler) error {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok && writer != os.Stdout {
			_ = closer.Close()
		}
	}()

	if !opts.Quiet {
		logger.Info("Disassembling CHIP-8 ROM",
			log.String("file", opts.Input),
			log.Int("size", len(data)))
	}

	dis := disasm.New(logger, disasmOptions)
	if err := dis.Process(data, writer); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

func emulate(ctx context.Context, logger *log.Logger, data []byte, opts options.Program, devices Devices) error {
	machine := chip8.New(chip8.WithRandom(chip8.NewRandom(opts.Seed)))
	if err := machine.Load(data); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	fe, err := createFrontend(logger, opts, devices)
	if err != nil {
		return fmt.Errorf("creating front-end: %w", err)
	}
	speakers := createSpeakers(logger, opts, devices)

	if opts.Statsview != "" {
		server := statsview.Launch(logger, opts.Statsview)
		defer server.Stop()
	}

	if !opts.Quiet {
		logger.Info("Running CHIP-8 ROM",
			log.String("file", opts.Input),
			log.String("frontend", opts.Frontend),
			log.Int("cycles_per_frame", opts.CyclesPerFrame))
	}

	r := runner.New(logger, machine, fe, opts, speakers...)
	runErr := r.Run(ctx)
	if errors.Is(runErr, runner.ErrStopped) {
		runErr = nil
	}

	halted := runErr != nil && !errors.Is(runErr, context.Canceled)
	if h, ok := fe.(halter); ok && halted {
		h.ShowHalt("halted: " + runErr.Error())
		select {
		case <-ctx.Done():
		case <-fe.Done():
		}
	}

	closeErr := r.Close()

	if opts.DumpState != "" {
		if err := statedump.Write(opts.DumpState, machine); err != nil {
			return errors.Join(runErr, closeErr, err)
		}
		logger.Info("Machine state written", log.String("file", opts.DumpState))
	}

	return errors.Join(runErr, closeErr)
}

func createFrontend(logger *log.Logger, opts options.Program, devices Devices) (frontend.Frontend, error) {
	if opts.Frontend == options.FrontendHeadless {
		return headless.New(), nil
	}
	if devices.NewFrontend == nil {
		return nil, fmt.Errorf("front-end %s is not available", opts.Frontend)
	}
	fe, err := devices.NewFrontend(logger, opts)
	if err != nil {
		return nil, fmt.Errorf("creating %s front-end: %w", opts.Frontend, err)
	}
	return fe, nil
}

// createSpeakers returns the configured speakers. A missing audio device
// is not fatal, the emulation continues without sound.
func createSpeakers(logger *log.Logger, opts options.Program, devices Devices) []frontend.Speaker {
	var speakers []frontend.Speaker

	if opts.Frontend != options.FrontendHeadless && devices.NewBeeper != nil {
		beeper, err := devices.NewBeeper()
		if err != nil {
			logger.Warn("Audio output not available", log.Err(err))
		} else {
			speakers = append(speakers, beeper)
		}
	}

	if opts.Wav != "" {
		speakers = append(speakers, wavwriter.New(opts.Wav))
	}
	return speakers
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints the program name and version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// VersionString returns the full version information.
func VersionString(version, commit, date string) string {
	return buildinfo.Version(version, commit, date)
}
