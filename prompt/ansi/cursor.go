package ansi

import (
	"fmt"
	"io"
)

// Cursor and line primitives used by the redraw engine. Each emits one
// fixed escape sequence and nothing else; all repaint policy lives with
// the caller.

const csi = "\x1b["

// MoveUp moves the cursor up n lines, staying in the same column.
func MoveUp(w io.Writer, n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(w, csi+"%dA", n)
}

// ClearLine returns the cursor to column 0 and erases the whole line.
func ClearLine(w io.Writer) {
	io.WriteString(w, "\r"+csi+"2K")
}

func HideCursor(w io.Writer) {
	io.WriteString(w, csi+"?25l")
}

func ShowCursor(w io.Writer) {
	io.WriteString(w, csi+"?25h")
}
