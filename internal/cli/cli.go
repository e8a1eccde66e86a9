// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	disasmOptions := options.NewDisassembler()
	noHexComments, noOffsets := readDisasmOptionFlags(flags)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, disasmOptions, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, disasmOptions, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, disasmOptions, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	disasmOptions.HexComments = !*noHexComments
	disasmOptions.OffsetComments = !*noOffsets

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(options.Frontends, opts.Frontend) {
		return fmt.Errorf("unsupported front-end: %s. Valid options: %s",
			opts.Frontend, strings.Join(options.Frontends, ", "))
	}

	if opts.CyclesPerFrame < 1 {
		return fmt.Errorf("invalid cycles per frame %d: must be at least 1", opts.CyclesPerFrame)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d: must be at least 1", opts.Scale)
	}

	return validateOptionCombinations(*opts)
}

// validateOptionCombinations rejects options that can not be used together.
func validateOptionCombinations(opts options.Program) error {
	if !opts.Disasm {
		return nil
	}
	if opts.Wav != "" {
		return fmt.Errorf("-wav can not be combined with -disasm")
	}
	if opts.DumpState != "" {
		return fmt.Errorf("-dumpstate can not be combined with -disasm")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file for -disasm, printed on console if no name given")
	flags.StringVar(&opts.Wav, "wav", "", "record the beeper output to the given .wav file")
	flags.StringVar(&opts.DumpState, "dumpstate", "", "write a graphviz dump of the machine state to the given file when the emulation halts")
	flags.StringVar(&opts.Frontend, "frontend", options.DefaultFrontend, "front-end to use (headless/terminal/window)")
	flags.StringVar(&opts.Statsview, "statsview", "", "serve runtime statistics on the given address, for example localhost:12600")
	flags.BoolVar(&opts.Disasm, "disasm", false, "disassemble the ROM instead of running it")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.IntVar(&opts.CyclesPerFrame, "cycles", options.DefaultCyclesPerFrame, "instructions executed per 60 Hz frame")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses a time based seed")
	flags.Uint64Var(&opts.MaxFrames, "frames", 0, "stop the emulation after the given number of frames, 0 runs until stopped")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "pixel scale factor of the window front-end")
}

func readDisasmOptionFlags(flags *flag.FlagSet) (noHexComments, noOffsets *bool) {
	noHexComments = flags.Bool("nohexcomments", false, "do not output opcode bytes as hex values in comments")
	noOffsets = flags.Bool("nooffsets", false, "do not output offsets in comments")
	return noHexComments, noOffsets
}
