package chip8

import "fmt"

// Machine is a CHIP-8 virtual machine. It is not safe for concurrent use,
// the owner drives Step and TickTimers from a single goroutine.
type Machine struct {
	State State

	keypad Keypad
	random RandomSource
}

// Option configures a Machine.
type Option func(*Machine)

// WithKeypad sets the keypad that is queried by the key instructions.
func WithKeypad(keypad Keypad) Option {
	return func(m *Machine) {
		m.keypad = keypad
	}
}

// WithRandom sets the random source used by the RND instruction.
func WithRandom(random RandomSource) Option {
	return func(m *Machine) {
		m.random = random
	}
}

// New returns a new machine in reset state. Unless configured otherwise no key
// is ever pressed and RND uses a time seeded random source.
func New(options ...Option) *Machine {
	m := &Machine{}
	for _, option := range options {
		option(m)
	}
	if m.keypad == nil {
		m.keypad = &KeyState{}
	}
	if m.random == nil {
		m.random = NewRandom(0)
	}
	m.State.Reset()
	return m
}

// SetKeypad replaces the keypad that is queried by the key instructions.
func (m *Machine) SetKeypad(keypad Keypad) {
	m.keypad = keypad
}

// Load resets the machine and copies the program to ProgramStart.
// A program that does not fit into memory is rejected and leaves the
// machine unchanged.
func (m *Machine) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceeds the maximum of %d bytes",
			ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	m.State.Reset()
	copy(m.State.Memory[ProgramStart:], program)
	return nil
}

// Opcode returns the opcode stored at the given address.
func (m *Machine) Opcode(address uint16) (uint16, error) {
	if err := checkAddressRange(int(address), opcodeSize); err != nil {
		return 0, err
	}
	return uint16(m.State.Memory[address])<<8 | uint16(m.State.Memory[address+1]), nil
}

// Step executes the instruction at PC and advances PC. The decoded
// instruction is returned for tracing. On error PC and the rest of the
// state are left untouched and the error of the instruction is returned
// as is.
func (m *Machine) Step() (Instruction, error) {
	opcode, err := m.Opcode(m.State.PC)
	if err != nil {
		return Instruction{}, err
	}

	ins := Decode(opcode)
	adv, err := m.execute(ins)
	if err != nil {
		return ins, err
	}

	m.State.PC += uint16(adv)
	return ins, nil
}

// TickTimers decrements the delay and sound timers. It has to be called by
// the host at TimerFrequency, independent of the number of executed steps.
func (m *Machine) TickTimers() {
	if m.State.DelayTimer > 0 {
		m.State.DelayTimer--
	}
	if m.State.SoundTimer > 0 {
		m.State.SoundTimer--
	}
}

// SoundActive returns whether the beeper should currently sound.
func (m *Machine) SoundActive() bool {
	return m.State.SoundTimer > 0
}

// Framebuffer returns a copy of the display.
func (m *Machine) Framebuffer() Framebuffer {
	return m.State.Display
}
