package testkeys

import (
	"testing"

	"github.com/hnimtadd/promptio/prompt/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueNames(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected []key.Token
	}{
		{
			name:     "navigation names",
			keys:     []string{"down", "down", "enter"},
			expected: []key.Token{key.Down, key.Down, key.Enter},
		},
		{
			name:     "all special names",
			keys:     []string{"up", "left", "right", "space", "escape", "backspace", "tab"},
			expected: []key.Token{key.Up, key.Left, key.Right, key.Space, key.Escape, key.Backspace, key.Tab},
		},
		{
			name:     "single characters",
			keys:     []string{"h", "i"},
			expected: []key.Token{key.Char('h'), key.Char('i')},
		},
		{
			name:     "longer literal expands per rune",
			keys:     []string{"hi", "enter"},
			expected: []key.Token{key.Char('h'), key.Char('i'), key.Enter},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := NewQueue(tc.keys)
			for _, want := range tc.expected {
				tok, err := q.TryNext()
				require.NoError(t, err)
				assert.Equal(t, want, tok)
			}
			_, err := q.TryNext()
			assert.ErrorIs(t, err, ErrExhausted)
		})
	}
}

func TestQueueExhaustedForever(t *testing.T) {
	q := NewQueue([]string{"enter"})
	_, err := q.TryNext()
	require.NoError(t, err)

	// No wraparound, no blocking.
	for range 3 {
		_, err := q.TryNext()
		assert.ErrorIs(t, err, ErrExhausted)
		assert.ErrorIs(t, err, key.ErrNoInput)
	}
}

func TestQueueCtrlC(t *testing.T) {
	q := NewQueue([]string{"ctrl-c"})
	_, err := q.TryNext()
	assert.ErrorIs(t, err, key.ErrInterrupted)
}

func TestQueueReproducible(t *testing.T) {
	keys := []string{"down", "x", "space", "enter"}
	a, b := NewQueue(keys), NewQueue(keys)
	for {
		ta, errA := a.TryNext()
		tb, errB := b.TryNext()
		assert.Equal(t, ta, tb)
		assert.Equal(t, errA, errB)
		if errA != nil {
			break
		}
	}
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"down", "enter"}, splitNames(" down , enter ,", ","))
	assert.Equal(t, []string{"a", "b"}, splitNames("a\n\nb\n", "\n"))
	assert.Nil(t, splitNames("  ", ","))
}
