// Package statedump writes a graphviz representation of the machine state,
// used to inspect a halted machine.
package statedump

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/retroenv/retrochip8/internal/chip8"
)

// Snapshot contains the parts of the machine state that are dumped. Memory
// and display are left out to keep the graph readable.
type Snapshot struct {
	PC          string
	I           string
	Instruction string
	V           [chip8.RegisterCount]byte
	Stack       []string
	DelayTimer  uint8
	SoundTimer  uint8

	WaitingForKey bool
	LitPixels     int
}

// NewSnapshot captures the state of the machine.
func NewSnapshot(m *chip8.Machine) *Snapshot {
	s := &Snapshot{
		PC:            fmt.Sprintf("$%03X", m.State.PC),
		I:             fmt.Sprintf("$%03X", m.State.I),
		V:             m.State.V,
		DelayTimer:    m.State.DelayTimer,
		SoundTimer:    m.State.SoundTimer,
		WaitingForKey: m.State.WaitingForKey,
		LitPixels:     m.State.Display.Lit(),
	}

	if opcode, err := m.Opcode(m.State.PC); err == nil {
		s.Instruction = chip8.Decode(opcode).String()
	}
	for _, address := range m.State.Stack[:m.State.SP] {
		s.Stack = append(s.Stack, fmt.Sprintf("$%03X", address))
	}
	return s
}

// Write writes the graph of the machine state to the given file.
func Write(path string, m *chip8.Machine) error {
	var buf bytes.Buffer
	memviz.Map(&buf, NewSnapshot(m))

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing state dump: %w", err)
	}
	return nil
}
