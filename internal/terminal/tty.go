// Package terminal owns raw-mode setup on the controlling terminal and turns
// its byte stream into key presses.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not attached to a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// TTY is a terminal switched into raw mode.
type TTY struct {
	*Reader

	fd    int
	state *term.State
	once  sync.Once
}

// Open puts stdin into raw mode and returns a key reader over it.
func Open() (*TTY, error) {
	return OpenFile(os.Stdin)
}

// OpenFile puts f into raw mode and returns a key reader over it.
func OpenFile(f *os.File) (*TTY, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	return &TTY{Reader: NewReader(f), fd: fd, state: state}, nil
}

// Close restores the terminal mode captured by Open. It is safe to call more
// than once.
func (t *TTY) Close() error {
	var err error
	t.once.Do(func() {
		if t.state != nil {
			err = term.Restore(t.fd, t.state)
		}
	})
	return err
}
