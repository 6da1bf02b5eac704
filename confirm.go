package promptio

import (
	"errors"
	"fmt"
	"io"

	"github.com/hnimtadd/promptio/prompt/key"
)

// Confirm asks a yes/no question. y and n answer immediately regardless
// of the default; enter answers with def. Escape returns ErrCancelled —
// cancellation is never conflated with a false answer.
func (p *Prompter) Confirm(prompt string, def bool) (bool, error) {
	hint := "(Y/n) "
	if !def {
		hint = "(y/N) "
	}

	h, err := p.enterRaw()
	if err != nil {
		return false, err
	}
	defer h.Restore()
	g := p.guardCursor(false)
	defer g.show()

	io.WriteString(p.out, headerLine(prompt)+" "+dimStyle.Render(hint))

	answer := func(v bool) (bool, error) {
		if v {
			io.WriteString(p.out, yesStyle.Render("Yes")+"\r\n")
		} else {
			io.WriteString(p.out, noStyle.Render("No")+"\r\n")
		}
		return v, nil
	}
	cancel := func() {
		io.WriteString(p.out, dimStyle.Render("(cancelled)")+"\r\n")
	}

	for {
		tok, err := p.readKey(false)
		switch {
		case err == nil:
		case errors.Is(err, key.ErrInterrupted):
			return false, p.interrupt(h, g, cancel)
		case errors.Is(err, key.ErrNoInput):
			cancel()
			return false, ErrCancelled
		default:
			return false, fmt.Errorf("promptio: confirm: %w", err)
		}

		switch tok.Type {
		case key.TypeChar:
			switch tok.Rune {
			case 'y':
				return answer(true)
			case 'n':
				return answer(false)
			}
		case key.TypeEnter:
			return answer(def)
		case key.TypeEscape:
			cancel()
			return false, ErrCancelled
		}
	}
}
