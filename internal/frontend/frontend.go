// Package frontend defines the host collaborators of the emulator: a
// front-end that presents the display and provides the keypad state, and
// speakers that consume the sound signal.
package frontend

import (
	"unicode"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Frontend renders frames and provides input.
type Frontend interface {
	// Present shows the given framebuffer. It is called once per frame.
	Present(fb chip8.Framebuffer) error
	// Keys returns the current state of the hex keypad.
	Keys() chip8.KeyState
	// Done is closed when the user asked to quit.
	Done() <-chan struct{}
	// Close releases all resources of the front-end.
	Close() error
}

// Speaker consumes the sound signal of the machine.
type Speaker interface {
	// Beep sets whether the tone is currently sounding. It is called once per frame.
	Beep(active bool) error
	// Close releases all resources of the speaker.
	Close() error
}

// keyLayout maps the left hand block of a QWERTY keyboard to the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var keyLayout = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyFromRune returns the keypad key for a host key, case insensitive.
func KeyFromRune(r rune) (uint8, bool) {
	key, ok := keyLayout[unicode.ToLower(r)]
	return key, ok
}

// HostKeys returns the host key for every keypad key, indexed by keypad key.
func HostKeys() [chip8.KeyCount]rune {
	var keys [chip8.KeyCount]rune
	for r, key := range keyLayout {
		keys[key] = r
	}
	return keys
}
