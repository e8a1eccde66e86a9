// Package disasm implements a CHIP-8 disassembler that follows the control
// flow of a program to separate code from data.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// offsetType classifies a byte of the program.
type offsetType uint8

const (
	dataOffset       offsetType = iota
	codeOffset                  // first byte of an instruction
	codeContinuation            // second byte of an instruction
)

// offset contains the disassembly information of a single program byte.
type offset struct {
	typ   offsetType
	label string
	ins   chip8.Instruction
}

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	program []byte
	offsets []offset
	queue   []uint16
}

// New returns a new disassembler.
func New(logger *log.Logger, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
	}
}

// Process disassembles the program, which is expected to be loaded at the
// program start address, and writes the assembly listing to the writer.
func (dis *Disasm) Process(program []byte, w io.Writer) error {
	if len(program) > chip8.MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceeds the maximum of %d bytes",
			chip8.ErrProgramTooLarge, len(program), chip8.MaxProgramSize)
	}

	dis.program = program
	dis.offsets = make([]offset, len(program))
	dis.queue = dis.queue[:0]

	dis.followExecutionFlow()

	code := 0
	for _, o := range dis.offsets {
		if o.typ == codeOffset {
			code++
		}
	}
	dis.logger.Debug("Control flow traced",
		log.Int("instructions", code),
		log.Int("size", len(program)))

	if err := dis.writeProgram(w); err != nil {
		return fmt.Errorf("writing program: %w", err)
	}
	return nil
}

// index returns the program index of the address and whether the address
// is part of the program.
func (dis *Disasm) index(address uint16) (int, bool) {
	if address < chip8.ProgramStart {
		return 0, false
	}
	idx := int(address - chip8.ProgramStart)
	return idx, idx < len(dis.program)
}

// addLabel sets a label for the address if it does not have one yet.
func (dis *Disasm) addLabel(address uint16, name string) {
	idx, ok := dis.index(address)
	if !ok || dis.offsets[idx].label != "" {
		return
	}
	dis.offsets[idx].label = name
}

// targetLabel returns the label of the address that an instruction references.
// Labels inside of instructions can not be emitted and are not returned.
func (dis *Disasm) targetLabel(ins chip8.Instruction) (string, bool) {
	switch ins.Op {
	case chip8.OpJp, chip8.OpCall, chip8.OpLdI:
	default:
		return "", false
	}

	idx, ok := dis.index(ins.NNN)
	if !ok {
		return "", false
	}
	o := dis.offsets[idx]
	if o.label == "" || o.typ == codeContinuation {
		return "", false
	}
	return o.label, true
}
