package ansi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorPrimitives(t *testing.T) {
	var buf bytes.Buffer

	MoveUp(&buf, 3)
	assert.Equal(t, "\x1b[3A", buf.String())

	buf.Reset()
	MoveUp(&buf, 0)
	assert.Empty(t, buf.String())

	buf.Reset()
	ClearLine(&buf)
	assert.Equal(t, "\r\x1b[2K", buf.String())

	buf.Reset()
	HideCursor(&buf)
	ShowCursor(&buf)
	assert.Equal(t, "\x1b[?25l\x1b[?25h", buf.String())
}
