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

// Text reads a line of free text. Characters echo as they are accepted;
// raw mode does not echo for us. Enter finalizes to the buffer, or to
// def when the buffer is empty. A validator may reject the candidate, in
// which case the error prints inline and editing continues with the
// buffer intact. Escape returns ErrCancelled.
func (p *Prompter) Text(message, def string, validator func(string) error) (string, error) {
	h, err := p.enterRaw()
	if err != nil {
		return "", err
	}
	defer h.Restore()
	g := p.guardCursor(false)
	defer g.show()

	promptLine := headerLine(message)
	if def != "" {
		promptLine += dimStyle.Render(" (" + def + ")")
	}
	promptLine += " "
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
			return "", fmt.Errorf("promptio: text: %w", err)
		}

		switch tok.Type {
		case key.TypeEnter:
			io.WriteString(p.out, "\r\n")
			result := string(buffer)
			if result == "" {
				result = def
			}
			if validator != nil {
				if verr := validator(result); verr != nil {
					io.WriteString(p.out, errorStyle.Render("  ✗ "+verr.Error())+"\r\n")
					io.WriteString(p.out, promptLine+string(buffer))
					continue
				}
			}
			ansi.MoveUp(p.out, 1)
			ansi.ClearLine(p.out)
			io.WriteString(p.out, successLine(message, result)+"\r\n")
			return result, nil
		case key.TypeBackspace:
			if len(buffer) == 0 {
				break
			}
			last := buffer[len(buffer)-1]
			buffer = buffer[:len(buffer)-1]
			p.eraseCells(dw.RuneWidth(last))
		case key.TypeSpace:
			buffer = append(buffer, ' ')
			io.WriteString(p.out, " ")
		case key.TypeChar:
			if unicode.IsPrint(tok.Rune) {
				buffer = append(buffer, tok.Rune)
				io.WriteString(p.out, string(tok.Rune))
			}
		case key.TypeEscape:
			io.WriteString(p.out, dimStyle.Render(" (cancelled)")+"\r\n")
			return "", ErrCancelled
		}
	}
}

// eraseCells backs the cursor over n display cells and blanks them. Wide
// glyphs occupy two cells, so the erase width comes from runewidth, not
// from rune count.
func (p *Prompter) eraseCells(n int) {
	if n <= 0 {
		return
	}
	back := strings.Repeat("\b", n)
	io.WriteString(p.out, back+strings.Repeat(" ", n)+back)
}
