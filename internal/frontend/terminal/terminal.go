// Package terminal provides a front-end that renders the display as text in
// a terminal in raw mode and reads the keypad from standard input.
//
// Terminals do not report key releases, a key therefore counts as held for
// a few frames after its last key press event.
package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"golang.org/x/term"
)

// holdFrames is the number of frames that a key stays pressed after a key press event.
const holdFrames = 6

// Minimum terminal size, two display rows are rendered per text row.
const (
	minColumns = chip8.DisplayWidth
	minRows    = chip8.DisplayHeight / 2
)

const (
	keyEscape = 0x1B
	keyCtrlC  = 0x03

	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// ErrTerminalTooSmall is returned when the terminal can not show the display.
var ErrTerminalTooSmall = errors.New("terminal too small")

// Frontend renders into a terminal.
type Frontend struct {
	fd       int
	out      io.Writer
	oldState *term.State

	keys heldKeys
	buf  bytes.Buffer

	done     chan struct{}
	quitOnce sync.Once
	stopCh   chan struct{}
	readDone chan struct{}
}

func newFrontend(fd int, out io.Writer) *Frontend {
	return &Frontend{
		fd:       fd,
		out:      out,
		done:     make(chan struct{}),
		stopCh:   make(chan struct{}),
		readDone: make(chan struct{}),
	}
}

// checkSize returns an error if the terminal has less than the required size.
func checkSize(fd int) error {
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("getting terminal size: %w", err)
	}
	if width < minColumns || height < minRows {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrTerminalTooSmall, width, height, minColumns, minRows)
	}
	return nil
}

// Present renders the framebuffer and ages the held keys by one frame.
func (f *Frontend) Present(fb chip8.Framebuffer) error {
	f.buf.Reset()
	render(&f.buf, &fb)
	f.keys.tick()

	if _, err := f.out.Write(f.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Keys returns the keys that are currently considered held.
func (f *Frontend) Keys() chip8.KeyState {
	return f.keys.snapshot()
}

// Done returns a channel that is closed when Escape or Ctrl+C was pressed.
func (f *Frontend) Done() <-chan struct{} {
	return f.done
}

func (f *Frontend) quit() {
	f.quitOnce.Do(func() { close(f.done) })
}

// handleInput processes a chunk of bytes read from the terminal.
func (f *Frontend) handleInput(data []byte) {
	if len(data) == 1 && data[0] == keyEscape {
		f.quit()
		return
	}

	for _, b := range data {
		switch b {
		case keyCtrlC:
			f.quit()
			return
		case keyEscape:
			// escape sequences of cursor and function keys are ignored
			return
		}

		if key, ok := frontend.KeyFromRune(rune(b)); ok {
			f.keys.press(key)
		}
	}
}

// render writes the framebuffer using half block characters, every text
// row shows two display rows.
func render(buf *bytes.Buffer, fb *chip8.Framebuffer) {
	buf.WriteString(cursorHome)
	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			top, bottom := fb[y][x], fb[y+1][x]
			switch {
			case top && bottom:
				buf.WriteRune('█')
			case top:
				buf.WriteRune('▀')
			case bottom:
				buf.WriteRune('▄')
			default:
				buf.WriteByte(' ')
			}
		}
		buf.WriteString("\r\n")
	}
}

// heldKeys tracks the remaining frames that each key is held.
type heldKeys struct {
	mu        sync.Mutex
	remaining [chip8.KeyCount]int
}

func (h *heldKeys) press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remaining[key&0xF] = holdFrames
}

func (h *heldKeys) tick() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key, frames := range h.remaining {
		if frames > 0 {
			h.remaining[key] = frames - 1
		}
	}
}

func (h *heldKeys) snapshot() chip8.KeyState {
	h.mu.Lock()
	defer h.mu.Unlock()

	var state chip8.KeyState
	for key, frames := range h.remaining {
		state[key] = frames > 0
	}
	return state
}
