package promptio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hnimtadd/promptio/prompt/key"
	"github.com/hnimtadd/promptio/prompt/redraw"
)

type multiSelectState struct {
	prompt  string
	options []string
	cursor  int
	checked map[int]bool
}

func (s *multiSelectState) up() {
	s.cursor = (s.cursor - 1 + len(s.options)) % len(s.options)
}

func (s *multiSelectState) down() {
	s.cursor = (s.cursor + 1) % len(s.options)
}

func (s *multiSelectState) toggle() {
	if s.checked[s.cursor] {
		delete(s.checked, s.cursor)
	} else {
		s.checked[s.cursor] = true
	}
}

func (s *multiSelectState) frame() []string {
	lines := make([]string, 0, len(s.options)+1)
	lines = append(lines, headerLine(s.prompt)+dimStyle.Render(" (space to select, enter to confirm)"))
	for i, opt := range s.options {
		checkbox := dimStyle.Render(symCheckOff)
		label := opt
		if s.checked[i] {
			checkbox = answerStyle.Render(symCheckOn)
			label = selectedStyle.Render(opt)
		}
		if i == s.cursor {
			lines = append(lines, "  "+pointerStyle.Render(symPointer)+checkbox+" "+label)
		} else {
			lines = append(lines, "    "+checkbox+" "+label)
		}
	}
	return lines
}

// picked returns the checked options in ascending index order, however
// they were toggled.
func (s *multiSelectState) picked() []string {
	var out []string
	for i, opt := range s.options {
		if s.checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// MultiSelect presents a checklist. Space toggles the option under the
// cursor, enter commits the checked set, escape cancels with
// ErrCancelled.
func (p *Prompter) MultiSelect(prompt string, options []string, defaults []int) ([]string, error) {
	if len(options) == 0 {
		return nil, errors.New("promptio: multiselect needs at least one option")
	}
	st := &multiSelectState{
		prompt:  prompt,
		options: options,
		checked: make(map[int]bool, len(defaults)),
	}
	for _, i := range defaults {
		if i >= 0 && i < len(options) {
			st.checked[i] = true
		}
	}

	h, err := p.enterRaw()
	if err != nil {
		return nil, err
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
			return nil, p.interrupt(h, g, func() {
				region.Finalize(cancelledLine(prompt))
			})
		case errors.Is(err, key.ErrNoInput):
			region.Finalize(cancelledLine(prompt))
			return nil, ErrCancelled
		default:
			return nil, fmt.Errorf("promptio: multiselect: %w", err)
		}

		switch tok.Type {
		case key.TypeUp:
			st.up()
		case key.TypeDown:
			st.down()
		case key.TypeSpace:
			st.toggle()
		case key.TypeEnter:
			picked := st.picked()
			result := "(none)"
			if len(picked) > 0 {
				result = strings.Join(picked, ", ")
			}
			region.Finalize(successLine(prompt, result))
			return picked, nil
		case key.TypeEscape:
			region.Finalize(cancelledLine(prompt))
			return nil, ErrCancelled
		}
	}
}
