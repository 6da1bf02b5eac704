// Package promptio presents interactive prompts on a terminal: select
// menus, multi-select checklists, confirmations, free-text entry and
// masked password entry.
//
// Prompts read raw keystrokes one at a time and redraw only the lines
// they drew themselves. With PROMPTIO_TEST_KEYS set (or key names piped
// on fd 3) the same code paths run from a scripted key list instead of a
// TTY, so flows can be exercised unattended.
package promptio

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/hnimtadd/promptio/logger"
	"github.com/hnimtadd/promptio/prompt/ansi"
	"github.com/hnimtadd/promptio/prompt/key"
	"github.com/hnimtadd/promptio/prompt/rawmode"
	"github.com/hnimtadd/promptio/prompt/style"
	"github.com/hnimtadd/promptio/prompt/testkeys"
)

var (
	// ErrCancelled reports that the user dismissed a prompt with escape.
	// It is a distinct value on every prompt, including Confirm, so a
	// cancellation can never be mistaken for a "no" answer.
	ErrCancelled = errors.New("promptio: cancelled")

	// ErrInterrupted reports a ctrl-c. Prompts normally exit the process
	// on this path; it only reaches callers that install their own exit
	// function.
	ErrInterrupted = key.ErrInterrupted
)

// exitCodeInterrupt is the conventional exit status after ctrl-c.
const exitCodeInterrupt = 130

// Glyphs of the prompt renderer.
const (
	symQuestion = "? "
	symSuccess  = "✔ "
	symPointer  = "❯ "
	symCheckOn  = "◉"
	symCheckOff = "○"
)

var (
	questionStyle = style.Attr{FG: style.Cyan, Bold: true}
	successStyle  = style.Attr{FG: style.Green, Bold: true}
	boldStyle     = style.Attr{Bold: true}
	answerStyle   = style.Attr{FG: style.Cyan}
	pointerStyle  = style.Attr{FG: style.Cyan}
	selectedStyle = style.Attr{FG: style.Cyan, Bold: true}
	dimStyle      = style.Attr{Dim: true}
	yesStyle      = style.Attr{FG: style.Green}
	noStyle       = style.Attr{FG: style.Red}
	errorStyle    = style.Attr{FG: style.Red}
)

type Options struct {
	// In is the terminal input stream. Defaults to os.Stdin. Raw mode is
	// only entered when it is a live terminal.
	In io.Reader

	// Out is the terminal output stream, written unbuffered. Defaults to
	// os.Stdout.
	Out io.Writer

	// Keys overrides the scripted key source. When nil the process-wide
	// queue (env var or fd 3) is consulted once and cached.
	Keys *testkeys.Queue

	Logger logger.Logger

	// Exit runs on ctrl-c after raw mode and the cursor are restored.
	// Defaults to os.Exit.
	Exit func(code int)
}

// Prompter threads every process-wide concern of the original design
// (raw-mode state, test-key queue, exit hook) through one explicit
// object. Prompts run one at a time; a Prompter is not safe for
// concurrent use.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	dec    *key.Decoder
	keys   *testkeys.Queue
	logger logger.Logger
	exit   func(code int)
}

func New(opts Options) *Prompter {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop
	}
	keys := opts.Keys
	if keys == nil {
		keys = testkeys.FromProcess()
	}
	exit := opts.Exit
	if exit == nil {
		exit = os.Exit
	}
	return &Prompter{
		in:     in,
		out:    out,
		dec:    key.NewDecoder(in, log),
		keys:   keys,
		logger: log,
		exit:   exit,
	}
}

var defaultPrompter = sync.OnceValue(func() *Prompter {
	return New(Options{})
})

// Select presents prompt with an interactive menu and returns the chosen
// option. Escape returns ErrCancelled.
func Select(prompt string, options []string, defaultIndex int) (string, error) {
	return defaultPrompter().Select(prompt, options, defaultIndex)
}

// MultiSelect presents a checklist and returns the checked options in
// ascending index order. Escape returns ErrCancelled.
func MultiSelect(prompt string, options []string, defaults []int) ([]string, error) {
	return defaultPrompter().MultiSelect(prompt, options, defaults)
}

// Confirm asks a yes/no question. Enter answers with def; escape returns
// ErrCancelled, never false.
func Confirm(prompt string, def bool) (bool, error) {
	return defaultPrompter().Confirm(prompt, def)
}

// Text reads a line of free text. An empty buffer finalizes to def.
func Text(message, def string, validator func(string) error) (string, error) {
	return defaultPrompter().Text(message, def, validator)
}

// Password reads a line of text, echoing a mask glyph per display cell.
func Password(message string) (string, error) {
	return defaultPrompter().Password(message)
}

// readKey returns the next token, preferring the scripted queue over the
// terminal decoder. vimNav remaps j/k to Down/Up on both paths so menus
// behave identically attended and scripted.
func (p *Prompter) readKey(vimNav bool) (key.Token, error) {
	if p.keys != nil {
		tok, err := p.keys.TryNext()
		if err != nil {
			return key.Token{}, err
		}
		if vimNav && tok.Type == key.TypeChar {
			switch tok.Rune {
			case 'j':
				return key.Down, nil
			case 'k':
				return key.Up, nil
			}
		}
		return tok, nil
	}
	return p.dec.Next(vimNav)
}

// enterRaw acquires raw mode for one read loop. Scripted runs and piped
// input stay in the current mode; the returned nil handle restores as a
// no-op, so callers defer Restore unconditionally.
func (p *Prompter) enterRaw() (*rawmode.Handle, error) {
	if p.keys != nil {
		return nil, nil
	}
	f, ok := p.in.(*os.File)
	if !ok || !rawmode.IsTerminal(int(f.Fd())) {
		return nil, nil
	}
	return rawmode.Enter(int(f.Fd()))
}

// cursorGuard re-shows the cursor exactly once however many exit paths
// run. Prompts that never hide the cursor still carry one so the
// interrupt path can guarantee a visible cursor before the process ends.
type cursorGuard struct {
	out  io.Writer
	done bool
}

func (p *Prompter) guardCursor(hide bool) *cursorGuard {
	if hide {
		ansi.HideCursor(p.out)
	}
	return &cursorGuard{out: p.out}
}

func (g *cursorGuard) show() {
	if g == nil || g.done {
		return
	}
	g.done = true
	ansi.ShowCursor(g.out)
}

// interrupt unwinds a ctrl-c: raw mode off first, then the cancelled
// summary, then the cursor back on, then process exit. The asymmetry
// with escape (which merely returns ErrCancelled) is deliberate.
func (p *Prompter) interrupt(h *rawmode.Handle, g *cursorGuard, summarize func()) error {
	if err := h.Restore(); err != nil {
		p.logger.Error("restoring terminal mode", "err", err)
	}
	summarize()
	g.show()
	p.exit(exitCodeInterrupt)
	// Only reached when the exit hook returns, i.e. under test.
	return ErrInterrupted
}

func headerLine(prompt string) string {
	return questionStyle.Render(symQuestion) + boldStyle.Render(prompt)
}

func successLine(prompt, answer string) string {
	return successStyle.Render(symSuccess) + boldStyle.Render(prompt) + " " + answerStyle.Render(answer)
}

func cancelledLine(prompt string) string {
	return headerLine(prompt) + dimStyle.Render(" (cancelled)")
}
