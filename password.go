package promptio

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	dw "github.com/mattn/go-runewidth"

	"github.com/hnimtadd/promptio/prompt/ansi"
	"github.com/hnimtadd/promptio/prompt/key"
)

// Password reads a line of text like Text, but every accepted character
// echoes one mask glyph per display cell and the summary line never
// shows the entry. The finalized value is the raw buffer, not the mask.
func (p *Prompter) Password(message string) (string, error) {
	h, err := p.enterRaw()
	if err != nil {
		return "", err
	}
	defer h.Restore()
	g := p.guardCursor(false)
	defer g.show()

	promptLine := headerLine(message) + " "
	io.WriteString(p.out, promptLine)

	var buffer []rune
	for {
		tok, err := p.readKey(false)
		switch {
		case err == nil:
		case errors.Is(err, key.ErrInterrupted):
			return "", p.interrupt(h, g, func() {
				io.WriteString(p.out, dimStyle.Render(" (cancelled)")+"\r\n")
			})
		case errors.Is(err, key.ErrNoInput):
			io.WriteString(p.out, dimStyle.Render(" (cancelled)")+"\r\n")
			return "", ErrCancelled
		default:
			return "", fmt.Errorf("promptio: password: %w", err)
		}

		switch tok.Type {
		case key.TypeEnter:
			io.WriteString(p.out, "\r\n")
			ansi.MoveUp(p.out, 1)
			ansi.ClearLine(p.out)
			masked := "(empty)"
			if len(buffer) > 0 {
				masked = strings.Repeat("*", dw.StringWidth(string(buffer)))
			}
			io.WriteString(p.out, successStyle.Render(symSuccess)+boldStyle.Render(message)+" "+dimStyle.Render(masked)+"\r\n")
			return string(buffer), nil
		case key.TypeBackspace:
			if len(buffer) == 0 {
				break
			}
			last := buffer[len(buffer)-1]
			buffer = buffer[:len(buffer)-1]
			p.eraseCells(dw.RuneWidth(last))
		case key.TypeSpace:
			buffer = append(buffer, ' ')
			io.WriteString(p.out, "*")
		case key.TypeChar:
			if unicode.IsPrint(tok.Rune) {
				buffer = append(buffer, tok.Rune)
				io.WriteString(p.out, strings.Repeat("*", dw.RuneWidth(tok.Rune)))
			}
		case key.TypeEscape:
			io.WriteString(p.out, dimStyle.Render(" (cancelled)")+"\r\n")
			return "", ErrCancelled
		}
	}
}
