// Package testkeys feeds prompts a pre-declared key stream so the full
// decode/transition/redraw paths run unattended, without a TTY.
//
// Activation is out-of-band and checked once per process, in priority
// order:
//
//  1. PROMPTIO_TEST_KEYS="down,down,enter" — comma-separated key names.
//  2. fd 3 — newline-separated key names on a side channel distinct from
//     standard input: ./app 3< keystrokes.txt
//
// Key names: up, down, left, right, enter, space, escape, backspace, tab,
// ctrl-c. Anything else is sent as literal characters.
package testkeys

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/hnimtadd/promptio/prompt/key"
)

const EnvVar = "PROMPTIO_TEST_KEYS"

// sideChannelFD is where scripted key names may be piped in. Stdin stays
// untouched so the program under test can still read real data from it.
const sideChannelFD = 3

// ErrExhausted reports that the declared key list is used up. It wraps
// key.ErrNoInput so callers can treat a drained queue and a closed reader
// the same way. The queue never blocks and never wraps around.
var ErrExhausted = fmt.Errorf("testkeys: %w", key.ErrNoInput)

// entry is one scripted keypress. interrupt entries reproduce a ctrl-c
// byte, which surfaces as an error rather than a token.
type entry struct {
	tok       key.Token
	interrupt bool
}

// Queue replays a fixed token list in declaration order. Consumption only
// moves forward; replaying the same list is bit-for-bit reproducible.
type Queue struct {
	entries []entry
	pos     int
}

var (
	resolveOnce  sync.Once
	processQueue *Queue
)

// FromProcess resolves the process-wide queue exactly once and returns
// it, or nil when neither activation source is present. The result never
// changes for the process lifetime.
func FromProcess() *Queue {
	resolveOnce.Do(func() {
		if env := os.Getenv(EnvVar); env != "" {
			processQueue = NewQueue(splitNames(env, ","))
			return
		}
		processQueue = fromSideChannel()
	})
	return processQueue
}

// NewQueue builds a queue directly from key names, bypassing the
// process-wide sources. Tests use this to script prompts in-process.
func NewQueue(names []string) *Queue {
	q := &Queue{}
	for _, name := range names {
		q.entries = append(q.entries, parseName(name)...)
	}
	return q
}

// TryNext returns the next scripted token. Past the end it returns
// ErrExhausted forever.
func (q *Queue) TryNext() (key.Token, error) {
	if q.pos >= len(q.entries) {
		return key.Token{}, ErrExhausted
	}
	e := q.entries[q.pos]
	q.pos++
	if e.interrupt {
		return key.Token{}, key.ErrInterrupted
	}
	return e.tok, nil
}

func fromSideChannel() *Queue {
	f := os.NewFile(sideChannelFD, "promptio-test-keys")
	if f == nil {
		return nil
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil || len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return NewQueue(splitNames(string(data), "\n"))
}

func splitNames(raw, sep string) []string {
	var names []string
	for _, part := range strings.Split(raw, sep) {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// parseName maps one declared name to its entries. A single-rune name is
// a literal character; a longer unrecognized name is typed out rune by
// rune, which keeps scripts like "hello,enter" readable.
func parseName(name string) []entry {
	switch name {
	case "up":
		return []entry{{tok: key.Up}}
	case "down":
		return []entry{{tok: key.Down}}
	case "left":
		return []entry{{tok: key.Left}}
	case "right":
		return []entry{{tok: key.Right}}
	case "enter":
		return []entry{{tok: key.Enter}}
	case "space":
		return []entry{{tok: key.Space}}
	case "escape":
		return []entry{{tok: key.Escape}}
	case "backspace":
		return []entry{{tok: key.Backspace}}
	case "tab":
		return []entry{{tok: key.Tab}}
	case "ctrl-c":
		return []entry{{interrupt: true}}
	}
	var entries []entry
	for _, r := range name {
		entries = append(entries, entry{tok: key.Char(r)})
	}
	return entries
}
