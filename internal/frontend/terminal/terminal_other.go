//go:build !unix

package terminal

import "errors"

// New returns an error, the terminal front-end requires a unix terminal.
func New() (*Frontend, error) {
	return nil, errors.New("terminal front-end is not supported on this platform")
}

// Close implements the frontend.Frontend interface.
func (f *Frontend) Close() error {
	f.quit()
	return nil
}
