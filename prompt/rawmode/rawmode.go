// Package rawmode scopes character-at-a-time, no-echo terminal input.
//
// A prompt acquires one Handle for its whole read loop and arranges
// restoration on every exit path, normally via defer. Nesting handles on
// the same descriptor is unsupported.
package rawmode

import (
	"fmt"

	"golang.org/x/term"
)

// Handle is the capability "this terminal is in raw mode". It restores
// the prior mode exactly once no matter how many exit paths call Restore.
type Handle struct {
	fd       int
	prior    *term.State
	restored bool
}

// Enter switches the terminal on fd to raw mode and returns the handle
// that undoes it.
func Enter(fd int) (*Handle, error) {
	prior, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("rawmode: enter: %w", err)
	}
	return &Handle{fd: fd, prior: prior}, nil
}

// Restore puts the terminal back into its prior mode. It is idempotent:
// the interrupt path restores eagerly before exiting while the deferred
// restore still runs, and only the first call touches the terminal.
func (h *Handle) Restore() error {
	if h == nil || h.restored {
		return nil
	}
	h.restored = true
	if err := term.Restore(h.fd, h.prior); err != nil {
		return fmt.Errorf("rawmode: restore: %w", err)
	}
	return nil
}

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
