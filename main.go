// Package main implements the main entry point for a CHIP-8 emulator and disassembler
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/beeper"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/fileprocessor"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, disasmOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.LoggerFor(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.LoggerFor(opts)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)
	logger.Debug("Build info", log.String("version", fileprocessor.VersionString(version, commit, date)))

	devices := fileprocessor.Devices{
		NewFrontend: newFrontend,
		NewBeeper:   newBeeper,
	}

	if err := fileprocessor.ProcessFile(ctx, logger, opts, disasmOptions, devices); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation stopped")
			return
		}
		logger.Error("Processing failed", log.Err(err))
		os.Exit(1)
	}
}

func newFrontend(logger *log.Logger, opts options.Program) (frontend.Frontend, error) {
	if opts.Frontend == options.FrontendWindow {
		w, err := window.New(logger, opts.Scale)
		if err != nil {
			return nil, err
		}
		return w, nil
	}

	t, err := terminal.New()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func newBeeper() (frontend.Speaker, error) {
	b, err := beeper.New()
	if err != nil {
		return nil, err
	}
	return b, nil
}
