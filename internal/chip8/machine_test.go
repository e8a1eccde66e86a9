package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	m := New()

	assert.Equal(t, uint16(ProgramStart), m.State.PC)
	assert.Equal(t, uint8(0), m.State.SP)
	assert.Equal(t, font[:], m.State.Memory[FontAddress:FontAddress+len(font)])
	assert.NotNil(t, m.keypad)
	assert.NotNil(t, m.random)
}

func TestLoad(t *testing.T) {
	t.Run("program is copied to program start", func(t *testing.T) {
		m := New()
		data := []byte{1, 2, 3, 4, 5, 6, 7}

		assert.NoError(t, m.Load(data))

		assert.Equal(t, data, m.State.Memory[ProgramStart:ProgramStart+len(data)])

		reference := New()
		copy(reference.State.Memory[ProgramStart:], data)
		assert.Equal(t, reference.State, m.State)
	})

	t.Run("load resets previous state", func(t *testing.T) {
		m := New()
		m.State.V[3] = 9
		m.State.PC = 0x300
		m.State.Display[1][1] = true

		assert.NoError(t, m.Load([]byte{0x00, 0xE0}))

		assert.Equal(t, byte(0), m.State.V[3])
		assert.Equal(t, uint16(ProgramStart), m.State.PC)
		assert.Equal(t, 0, m.State.Display.Lit())
	})

	t.Run("largest program fits", func(t *testing.T) {
		m := New()
		data := make([]byte, MaxProgramSize)
		data[len(data)-1] = 0xAB

		assert.NoError(t, m.Load(data))
		assert.Equal(t, byte(0xAB), m.State.Memory[MaxAddress])
	})

	t.Run("program too large", func(t *testing.T) {
		m := New()
		m.State.V[0] = 0x12
		before := m.State

		err := m.Load(make([]byte, MaxProgramSize+1))

		assert.True(t, errors.Is(err, ErrProgramTooLarge))
		assert.Equal(t, before, m.State)
	})
}

func TestStep_Skip(t *testing.T) {
	t.Run("condition holds", func(t *testing.T) {
		m, _ := newTestMachine(t, 0x3055)
		m.State.V[0] = 0x55

		step(t, m, 1)
		assert.Equal(t, uint16(0x204), m.State.PC)
	})

	t.Run("condition does not hold", func(t *testing.T) {
		m, _ := newTestMachine(t, 0x3066)
		m.State.V[0] = 0x55

		step(t, m, 1)
		assert.Equal(t, uint16(0x202), m.State.PC)
	})

	t.Run("register loaded by program", func(t *testing.T) {
		m, _ := newTestMachine(t, 0x6055, 0x3055)

		step(t, m, 1)
		assert.Equal(t, byte(0x55), m.State.V[0])
		assert.Equal(t, uint16(0x202), m.State.PC)

		step(t, m, 1)
		assert.Equal(t, uint16(0x206), m.State.PC)
	})
}

func TestStep_AddCarry(t *testing.T) {
	m, _ := newTestMachine(t, 0x8014, 0x8014)
	m.State.V[0] = 254
	m.State.V[1] = 1

	step(t, m, 1)
	assert.Equal(t, byte(255), m.State.V[0])
	assert.Equal(t, byte(0), m.State.V[FlagRegister])

	step(t, m, 1)
	assert.Equal(t, byte(0), m.State.V[0])
	assert.Equal(t, byte(1), m.State.V[FlagRegister])
	assert.Equal(t, uint16(0x204), m.State.PC)
}

func TestStep_Jump(t *testing.T) {
	m, _ := newTestMachine(t, 0x1208, 0x0000, 0x0000, 0x0000, 0x6005, 0xB300)

	step(t, m, 1)
	assert.Equal(t, uint16(0x208), m.State.PC)

	step(t, m, 2)
	assert.Equal(t, uint16(0x305), m.State.PC)
}

func TestStep_CallReturn(t *testing.T) {
	m, _ := newTestMachine(t, 0x2206, 0x0000, 0x0000, 0x00EE)

	step(t, m, 1)
	assert.Equal(t, uint16(0x206), m.State.PC)
	assert.Equal(t, uint8(1), m.State.SP)
	assert.Equal(t, uint16(0x202), m.State.Stack[0])

	step(t, m, 1)
	assert.Equal(t, uint16(0x202), m.State.PC)
	assert.Equal(t, uint8(0), m.State.SP)
}

// nestedCalls builds a program that nests calls depth levels deep. Each
// call site is followed by a RET so that the returns unwind the chain.
func nestedCalls(t *testing.T, depth int, last uint16) *Machine {
	t.Helper()

	m, _ := newTestMachine(t, 0x2300, 0x1202)
	for level := 0; level < depth-1; level++ {
		address := 0x300 + 4*level
		target := uint16(0x300 + 4*(level+1))
		copy(m.State.Memory[address:], program(0x2000|target, 0x00EE))
	}
	copy(m.State.Memory[0x300+4*(depth-1):], program(last))
	return m
}

func TestStep_NestedCalls(t *testing.T) {
	m := nestedCalls(t, StackSize, 0x00EE)

	step(t, m, StackSize)
	assert.Equal(t, uint8(StackSize), m.State.SP)
	assert.Equal(t, uint16(0x300+4*(StackSize-1)), m.State.PC)

	step(t, m, StackSize)
	assert.Equal(t, uint8(0), m.State.SP)
	assert.Equal(t, uint16(0x202), m.State.PC)
}

func TestStep_StackOverflow(t *testing.T) {
	m := nestedCalls(t, StackSize, 0x2400)

	step(t, m, StackSize)
	before := m.State

	ins, err := m.Step()

	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, OpCall, ins.Op)
	assert.Equal(t, before, m.State)
}

func TestStep_StackUnderflow(t *testing.T) {
	m, _ := newTestMachine(t, 0x00EE)
	before := m.State

	_, err := m.Step()

	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, before, m.State)
}

func TestStep_Unknown(t *testing.T) {
	m, _ := newTestMachine(t, 0x6001, 0xFFFF)

	step(t, m, 1)
	before := m.State

	ins, err := m.Step()

	assert.True(t, errors.Is(err, ErrUnimplementedOpcode))
	assert.Equal(t, uint16(0xFFFF), ins.Raw)
	assert.Equal(t, before, m.State)

	// retrying reports the same error without progressing
	_, err = m.Step()
	assert.True(t, errors.Is(err, ErrUnimplementedOpcode))
	assert.Equal(t, uint16(0x202), m.State.PC)
}

func TestStep_FetchOutOfBounds(t *testing.T) {
	m, _ := newTestMachine(t)
	m.State.PC = MaxAddress

	_, err := m.Step()

	assert.True(t, errors.Is(err, ErrOutOfBoundsAddress))
	assert.Equal(t, uint16(MaxAddress), m.State.PC)

	m.State.PC = MaxAddress - 1
	m.State.Memory[MaxAddress-1] = 0x00
	m.State.Memory[MaxAddress] = 0xE0
	_, err = m.Step()
	assert.NoError(t, err)
}

func TestStep_WaitForKey(t *testing.T) {
	m, keys := newTestMachine(t, 0xF30A, 0x00E0)

	step(t, m, 3)
	assert.Equal(t, uint16(0x200), m.State.PC)
	assert.True(t, m.State.WaitingForKey)

	keys.Set(0x4, true)
	step(t, m, 1)
	assert.Equal(t, uint16(0x202), m.State.PC)
	assert.Equal(t, byte(0x4), m.State.V[3])
	assert.False(t, m.State.WaitingForKey)
}

func TestStep_ClearScreen(t *testing.T) {
	m, _ := newTestMachine(t, 0xA050, 0xD005, 0x00E0)

	step(t, m, 2)
	fb := m.Framebuffer()
	assert.True(t, fb.Lit() > 0)

	step(t, m, 1)
	assert.Equal(t, Framebuffer{}, m.Framebuffer())
}

func TestTickTimers(t *testing.T) {
	m := New()
	m.State.DelayTimer = 2
	m.State.SoundTimer = 1
	assert.True(t, m.SoundActive())

	m.TickTimers()
	assert.Equal(t, uint8(1), m.State.DelayTimer)
	assert.Equal(t, uint8(0), m.State.SoundTimer)
	assert.False(t, m.SoundActive())

	m.TickTimers()
	m.TickTimers()
	assert.Equal(t, uint8(0), m.State.DelayTimer)
	assert.Equal(t, uint8(0), m.State.SoundTimer)
}

func TestFramebufferIsCopy(t *testing.T) {
	m := New()

	fb := m.Framebuffer()
	fb[0][0] = true

	assert.False(t, m.State.Display[0][0])
}

func TestOpcode(t *testing.T) {
	m, _ := newTestMachine(t, 0x1234)

	opcode, err := m.Opcode(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), opcode)

	_, err = m.Opcode(MaxAddress)
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)

	for range 16 {
		assert.Equal(t, a.Byte(), b.Byte())
	}
}
