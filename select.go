package promptio

import (
	"errors"
	"fmt"

	"github.com/hnimtadd/promptio/prompt/key"
	"github.com/hnimtadd/promptio/prompt/redraw"
)

type selectState struct {
	prompt   string
	options  []string
	selected int
}

// up and down wrap, so selected always stays in [0, len(options)).
func (s *selectState) up() {
	s.selected = (s.selected - 1 + len(s.options)) % len(s.options)
}

func (s *selectState) down() {
	s.selected = (s.selected + 1) % len(s.options)
}

func (s *selectState) frame() []string {
	lines := make([]string, 0, len(s.options)+1)
	lines = append(lines, headerLine(s.prompt))
	for i, opt := range s.options {
		if i == s.selected {
			lines = append(lines, "  "+pointerStyle.Render(symPointer)+selectedStyle.Render(opt))
		} else {
			lines = append(lines, "    "+dimStyle.Render(opt))
		}
	}
	return lines
}

// Select presents prompt with an interactive menu. Up/Down (or k/j) move
// the selection with wraparound, enter commits, escape cancels with
// ErrCancelled.
func (p *Prompter) Select(prompt string, options []string, defaultIndex int) (string, error) {
	if len(options) == 0 {
		return "", errors.New("promptio: select needs at least one option")
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}
	st := &selectState{prompt: prompt, options: options, selected: defaultIndex}

	h, err := p.enterRaw()
	if err != nil {
		return "", err
	}
	defer h.Restore()
	g := p.guardCursor(true)
	defer g.show()

	region := redraw.New(p.out)
	for {
		region.Repaint(st.frame())

		tok, err := p.readKey(true)
		switch {
		case err == nil:
		case errors.Is(err, key.ErrInterrupted):
			return "", p.interrupt(h, g, func() {
				region.Finalize(cancelledLine(prompt))
			})
		case errors.Is(err, key.ErrNoInput):
			region.Finalize(cancelledLine(prompt))
			return "", ErrCancelled
		default:
			return "", fmt.Errorf("promptio: select: %w", err)
		}

		switch tok.Type {
		case key.TypeUp:
			st.up()
		case key.TypeDown:
			st.down()
		case key.TypeEnter:
			choice := st.options[st.selected]
			region.Finalize(successLine(prompt, choice))
			return choice, nil
		case key.TypeEscape:
			region.Finalize(cancelledLine(prompt))
			return "", ErrCancelled
		}
	}
}
