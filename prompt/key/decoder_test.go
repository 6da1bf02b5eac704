package key

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderNext(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		vimNav   bool
		expected Token
	}{
		{name: "printable byte", input: []byte("a"), expected: Char('a')},
		{name: "space is Space, not Char", input: []byte(" "), expected: Space},
		{name: "carriage return", input: []byte("\r"), expected: Enter},
		{name: "line feed", input: []byte("\n"), expected: Enter},
		{name: "DEL is backspace", input: []byte{0x7f}, expected: Backspace},
		{name: "BS is backspace", input: []byte{0x08}, expected: Backspace},
		{name: "tab", input: []byte("\t"), expected: Tab},
		{name: "CSI A", input: []byte("\x1b[A"), expected: Up},
		{name: "CSI B", input: []byte("\x1b[B"), expected: Down},
		{name: "CSI C", input: []byte("\x1b[C"), expected: Right},
		{name: "CSI D", input: []byte("\x1b[D"), expected: Left},
		{name: "lone ESC", input: []byte("\x1b"), expected: Escape},
		{name: "truncated CSI", input: []byte("\x1b["), expected: Escape},
		{name: "unrecognized CSI final", input: []byte("\x1b[H"), expected: Escape},
		{name: "non-CSI escape", input: []byte("\x1bO"), expected: Escape},
		{name: "j without vim nav", input: []byte("j"), expected: Char('j')},
		{name: "j with vim nav", input: []byte("j"), vimNav: true, expected: Down},
		{name: "k with vim nav", input: []byte("k"), vimNav: true, expected: Up},
		{name: "multi-byte rune", input: []byte("é"), expected: Char('é')},
		{name: "wide rune", input: []byte("漢"), expected: Char('漢')},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder(bytes.NewReader(tc.input), nil)
			tok, err := d.Next(tc.vimNav)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tok)
		})
	}
}

func TestDecoderInterrupt(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte{0x03}), nil)
	_, err := d.Next(false)
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestDecoderExhausted(t *testing.T) {
	d := NewDecoder(bytes.NewReader(nil), nil)
	_, err := d.Next(false)
	assert.ErrorIs(t, err, ErrNoInput)
}

// Keypresses that arrive in a single read must all be decoded; buffered
// bytes past the first token cannot be dropped.
func TestDecoderBufferedSequence(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte("\x1b[Ahi\r")), nil)

	expected := []Token{Up, Char('h'), Char('i'), Enter}
	for _, want := range expected {
		tok, err := d.Next(false)
		require.NoError(t, err)
		assert.Equal(t, want, tok)
	}

	_, err := d.Next(false)
	assert.ErrorIs(t, err, ErrNoInput)
}

// An ESC that swallows the next byte as part of an unrecognized sequence
// must not corrupt the tokens that follow it.
func TestDecoderEscapeThenText(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte("\x1bOx")), nil)

	tok, err := d.Next(false)
	require.NoError(t, err)
	assert.Equal(t, Escape, tok)

	tok, err = d.Next(false)
	require.NoError(t, err)
	assert.Equal(t, Char('x'), tok)
}
