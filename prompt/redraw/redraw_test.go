package redraw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const clearSeq = "\x1b[2K"

func TestRepaintClearCountMatchesPreviousRender(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	// First paint has nothing to erase.
	r.Repaint([]string{"a", "b", "c"})
	assert.Equal(t, 0, strings.Count(buf.String(), clearSeq))
	assert.Equal(t, 3, r.Lines())

	// Consecutive repaints of varying length: each erase must clear
	// exactly the previous render's line count.
	for _, tc := range []struct {
		lines     []string
		wantClear int
	}{
		{lines: []string{"a", "b", "c", "d", "e"}, wantClear: 3},
		{lines: []string{"x"}, wantClear: 5},
		{lines: []string{"x", "y"}, wantClear: 1},
	} {
		buf.Reset()
		r.Repaint(tc.lines)
		assert.Equal(t, tc.wantClear, strings.Count(buf.String(), clearSeq))
		assert.Equal(t, tc.wantClear, strings.Count(buf.String(), "\x1b[1A"))
		assert.Equal(t, len(tc.lines), r.Lines())
	}
}

func TestFinalizeErasesAndResets(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Repaint([]string{"one", "two"})

	buf.Reset()
	r.Finalize("done")
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, clearSeq))
	assert.Contains(t, out, "done\r\n")
	assert.Equal(t, 0, r.Lines())

	// A region is reusable after finalize and starts from zero again.
	buf.Reset()
	r.Repaint([]string{"fresh"})
	assert.Equal(t, 0, strings.Count(buf.String(), clearSeq))
}

func TestRepaintWritesCRLF(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Repaint([]string{"only"})
	assert.Equal(t, "only\r\n", buf.String())
}
