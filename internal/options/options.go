// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendHeadless = "headless"
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// Frontends lists all supported front-end names.
var Frontends = []string{FrontendHeadless, FrontendTerminal, FrontendWindow}

// Defaults of the emulation options.
const (
	DefaultFrontend       = FrontendTerminal
	DefaultCyclesPerFrame = 10
	DefaultScale          = 10
)

// Parameters contains file path options.
type Parameters struct {
	Input     string `flag:"i" usage:"input ROM file"`
	Output    string `flag:"o" usage:"output .asm file for -disasm (default: stdout)"`
	Wav       string `flag:"wav" usage:"record the beeper to a .wav file"`
	DumpState string `flag:"dumpstate" usage:"write a graphviz dump of the machine state on halt"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend  string `flag:"frontend" usage:"front-end: headless, terminal, window" default:"terminal"`
	Disasm    bool   `flag:"disasm" usage:"disassemble the ROM instead of running it"`
	Trace     bool   `flag:"trace" usage:"log every executed instruction"`
	Debug     bool   `flag:"debug" usage:"enable debug logging"`
	Quiet     bool   `flag:"q" usage:"quiet mode"`
	Statsview string `flag:"statsview" usage:"serve runtime statistics on the given address"`
}

// Emulation contains options controlling the emulation speed and output.
type Emulation struct {
	CyclesPerFrame int    `flag:"cycles" usage:"instructions executed per 60 Hz frame" default:"10"`
	Seed           int64  `flag:"seed" usage:"random seed, 0 uses a time based seed"`
	MaxFrames      uint64 `flag:"frames" usage:"stop after the given number of frames, 0 runs forever"`
	Scale          int    `flag:"scale" usage:"window scale factor" default:"10"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Emulation
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	HexComments    bool
	OffsetComments bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments:    true,
		OffsetComments: true,
	}
}
