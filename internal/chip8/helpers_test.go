package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// fixedRandom returns the same byte for every call.
type fixedRandom byte

func (f fixedRandom) Byte() byte {
	return byte(f)
}

// program encodes opcodes as big-endian bytes.
func program(opcodes ...uint16) []byte {
	data := make([]byte, 0, len(opcodes)*opcodeSize)
	for _, op := range opcodes {
		data = append(data, byte(op>>8), byte(op))
	}
	return data
}

// newTestMachine returns a machine with the given opcodes loaded, a fixed
// random source and a keypad that can be controlled by the test.
func newTestMachine(t *testing.T, opcodes ...uint16) (*Machine, *KeyState) {
	t.Helper()

	keys := &KeyState{}
	m := New(WithKeypad(keys), WithRandom(fixedRandom(0xFF)))
	assert.NoError(t, m.Load(program(opcodes...)))
	return m, keys
}

// step executes count steps and fails the test on any error.
func step(t *testing.T, m *Machine, count int) {
	t.Helper()

	for range count {
		_, err := m.Step()
		assert.NoError(t, err)
	}
}
