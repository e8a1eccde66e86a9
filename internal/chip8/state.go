package chip8

// Framebuffer is the monochrome display, indexed as [y][x]. A true value
// is a lit pixel.
type Framebuffer [DisplayHeight][DisplayWidth]bool

// Lit returns the number of lit pixels.
func (f *Framebuffer) Lit() int {
	count := 0
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				count++
			}
		}
	}
	return count
}

// State contains the complete mutable state of a CHIP-8 machine.
type State struct {
	Memory [MemorySize]byte
	V      [RegisterCount]byte
	I      uint16
	PC     uint16

	Stack [StackSize]uint16
	SP    uint8

	Display Framebuffer

	DelayTimer uint8
	SoundTimer uint8

	// WaitingForKey is set while a LD Vx, K instruction is suspended.
	WaitingForKey bool
	heldAtWait    KeyState
}

// Reset clears the state and installs the font set. The program counter
// is set to the program start address.
func (s *State) Reset() {
	*s = State{}
	copy(s.Memory[FontAddress:], font[:])
	s.PC = ProgramStart
}

// push stores a return address on the stack.
func (s *State) push(address uint16) error {
	if int(s.SP) >= StackSize {
		return ErrStackOverflow
	}
	s.Stack[s.SP] = address
	s.SP++
	return nil
}

// pop returns the most recently pushed return address.
func (s *State) pop() (uint16, error) {
	if s.SP == 0 {
		return 0, ErrStackUnderflow
	}
	s.SP--
	return s.Stack[s.SP], nil
}

// setFlag sets VF to 1 if set is true, otherwise to 0.
func (s *State) setFlag(set bool) {
	if set {
		s.V[FlagRegister] = 1
	} else {
		s.V[FlagRegister] = 0
	}
}
