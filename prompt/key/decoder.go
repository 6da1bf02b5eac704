package key

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/hnimtadd/promptio/logger"
	"github.com/hnimtadd/promptio/prompt/ansi"
)

var (
	// ErrInterrupted reports a ctrl-c byte (0x03). It is deliberately not a
	// token: callers must unwind raw mode before acting on it, and making it
	// an error keeps that path impossible to ignore.
	ErrInterrupted = errors.New("key: interrupted")

	// ErrNoInput reports that the input source is exhausted. A blocked TTY
	// read never returns this; it comes from closed pipes and drained test
	// key queues.
	ErrNoInput = errors.New("key: no more input")
)

// escSeqWindow bounds how many bytes one read may pull in while resolving
// an escape sequence. Raw mode delivers a full arrow-key sequence
// (ESC [ final) in a single read, and a lone ESC keypress delivers exactly
// one byte, so the window also disambiguates "bare escape" from "arrow".
// It is sized to hold the longest recognized sequence and the longest
// UTF-8 character.
const escSeqWindow = 4

// Decoder classifies raw input bytes into Tokens, resolving multi-byte
// escape sequences and UTF-8 characters.
//
// It reads from r one window at a time and consumes the buffered bytes
// token by token, so several keypresses arriving in one read are not lost.
type Decoder struct {
	r       io.Reader
	buf     [escSeqWindow]byte
	pending []byte
	logger  logger.Logger
}

func NewDecoder(r io.Reader, log logger.Logger) *Decoder {
	if log == nil {
		log = logger.Nop
	}
	return &Decoder{r: r, logger: log}
}

// Next blocks for one keypress and returns its token.
//
// When vimNav is set, literal j/k remap to Down/Up. Menus enable this;
// text entry must not, so that j and k stay typeable.
//
// A ctrl-c byte returns ErrInterrupted. An exhausted reader returns
// ErrNoInput. Other read failures propagate as-is.
func (d *Decoder) Next(vimNav bool) (Token, error) {
	c, err := d.readByte()
	if err != nil {
		return Token{}, err
	}

	switch c {
	case ansi.C0.ETX:
		return Token{}, ErrInterrupted
	case ansi.C0.CR, ansi.C0.LF:
		return Enter, nil
	case ansi.C0.DEL, ansi.C0.BS:
		return Backspace, nil
	case ansi.C0.HT:
		return Tab, nil
	case ansi.C0.SP:
		return Space, nil
	case ansi.C0.ESC:
		return d.nextEscape(), nil
	}

	r := d.decodeRune(c)
	if vimNav {
		switch r {
		case 'j':
			return Down, nil
		case 'k':
			return Up, nil
		}
	}
	return Char(r), nil
}

// nextEscape resolves the bytes following an ESC. Only the CSI arrow
// sequences produce distinct tokens; anything truncated or unrecognized
// resolves to a bare Escape.
func (d *Decoder) nextEscape() Token {
	// No buffered follow-up within the window means the user pressed the
	// escape key itself.
	if len(d.pending) == 0 {
		return Escape
	}

	if d.pending[0] != '[' {
		// ESC-prefixed but not CSI. Swallow the byte like the CSI path
		// does so it cannot leak back in as a stray character.
		d.pending = d.pending[1:]
		return Escape
	}
	d.pending = d.pending[1:]

	if len(d.pending) == 0 {
		// Truncated CSI.
		return Escape
	}
	final := d.pending[0]
	d.pending = d.pending[1:]

	switch final {
	case 'A':
		return Up
	case 'B':
		return Down
	case 'C':
		return Right
	case 'D':
		return Left
	default:
		d.logger.Debug("unrecognized CSI final byte", "byte", final)
		return Escape
	}
}

// decodeRune completes a UTF-8 sequence whose first byte is c.
func (d *Decoder) decodeRune(c byte) rune {
	if c < utf8.RuneSelf {
		return rune(c)
	}
	seq := []byte{c}
	for !utf8.FullRune(seq) && len(seq) < utf8.UTFMax {
		b, err := d.readByte()
		if err != nil {
			break
		}
		seq = append(seq, b)
	}
	r, _ := utf8.DecodeRune(seq)
	return r
}

func (d *Decoder) readByte() (byte, error) {
	if len(d.pending) == 0 {
		n, err := d.r.Read(d.buf[:])
		if n == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				return 0, ErrNoInput
			}
			return 0, err
		}
		d.pending = d.buf[:n]
	}
	c := d.pending[0]
	d.pending = d.pending[1:]
	return c, nil
}
