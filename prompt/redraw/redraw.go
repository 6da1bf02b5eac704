// Package redraw repaints a prompt's visible region in place.
//
// The engine only ever erases the lines it drew itself; the rest of the
// screen is never touched.
package redraw

import (
	"io"

	"github.com/hnimtadd/promptio/prompt/ansi"
)

// Region tracks how many terminal lines the most recent render occupies.
// A prompt owns exactly one Region, starting at zero lines; the count is
// discarded when the prompt finalizes.
//
// Invariant: every erase emits exactly one clear per previously drawn
// line. Drift in either direction corrupts the terminal, either by
// leaving stale lines behind or by eating the caller's scrollback.
type Region struct {
	out   io.Writer
	lines int
}

func New(out io.Writer) *Region {
	return &Region{out: out}
}

// Lines returns the current drawn-line count.
func (r *Region) Lines() int { return r.lines }

// Repaint erases the previous render and draws lines in its place.
//
// Lines are terminated with CRLF: the terminal is in raw mode during a
// prompt loop, so output post-processing is off and a bare LF would not
// return the carriage.
func (r *Region) Repaint(lines []string) {
	r.erase()
	for _, line := range lines {
		io.WriteString(r.out, line)
		io.WriteString(r.out, "\r\n")
	}
	r.lines = len(lines)
}

// Finalize erases the previous render, writes the one-line summary and
// ends the region. The next Repaint starts from zero lines.
func (r *Region) Finalize(result string) {
	r.erase()
	io.WriteString(r.out, result)
	io.WriteString(r.out, "\r\n")
	r.lines = 0
}

func (r *Region) erase() {
	for range r.lines {
		ansi.MoveUp(r.out, 1)
		ansi.ClearLine(r.out)
	}
}
