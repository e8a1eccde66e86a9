//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// pollInterval is the sleep time of the input reader when no input is pending.
const pollInterval = 5 * time.Millisecond

// New switches the terminal to raw mode and starts reading the keyboard.
func New() (*Frontend, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("standard input is not a terminal")
	}
	if err := checkSize(int(os.Stdout.Fd())); err != nil {
		return nil, err
	}

	f := newFrontend(fd, os.Stdout)

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}
	f.oldState = oldState

	if err := unix.SetNonblock(fd, true); err != nil {
		_ = term.Restore(fd, oldState)
		return nil, fmt.Errorf("setting non-blocking input: %w", err)
	}

	_, _ = f.out.Write([]byte(clearScreen + hideCursor))

	go f.readInput()
	return f, nil
}

func (f *Frontend) readInput() {
	defer close(f.readDone)
	buf := make([]byte, 16)

	for {
		select {
		case <-f.stopCh:
			return
		default:
		}

		n, err := unix.Read(f.fd, buf)
		if n > 0 {
			f.handleInput(buf[:n])
			continue
		}
		if err != nil && !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EWOULDBLOCK) {
			f.quit()
			return
		}
		time.Sleep(pollInterval)
	}
}

// Close stops the input reader and restores the terminal.
func (f *Frontend) Close() error {
	close(f.stopCh)
	<-f.readDone
	f.quit()

	_, _ = f.out.Write([]byte(showCursor + "\r\n"))

	var errs []error
	if err := unix.SetNonblock(f.fd, false); err != nil {
		errs = append(errs, fmt.Errorf("restoring blocking input: %w", err))
	}
	if err := term.Restore(f.fd, f.oldState); err != nil {
		errs = append(errs, fmt.Errorf("restoring terminal: %w", err))
	}
	return errors.Join(errs...)
}
