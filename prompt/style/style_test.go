package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		attr     Attr
		text     string
		expected string
	}{
		{name: "zero attr is identity", attr: Attr{}, text: "plain", expected: "plain"},
		{name: "bold", attr: Attr{Bold: true}, text: "x", expected: "\x1b[1mx\x1b[0m"},
		{name: "dim", attr: Attr{Dim: true}, text: "x", expected: "\x1b[2mx\x1b[0m"},
		{
			name:     "named fg",
			attr:     Attr{FG: Cyan},
			text:     "x",
			expected: "\x1b[36mx\x1b[0m",
		},
		{
			name:     "bold named fg",
			attr:     Attr{FG: Green, Bold: true},
			text:     "ok",
			expected: "\x1b[1;32mok\x1b[0m",
		},
		{
			name:     "named bg",
			attr:     Attr{BG: Red},
			text:     "x",
			expected: "\x1b[41mx\x1b[0m",
		},
		{
			name:     "bright fg",
			attr:     Attr{FG: BrightWhite},
			text:     "x",
			expected: "\x1b[97mx\x1b[0m",
		},
		{
			name:     "direct color fg",
			attr:     Attr{FG: FromRGB(40, 44, 52)},
			text:     "x",
			expected: "\x1b[38;2;40;44;52mx\x1b[0m",
		},
		{
			name:     "direct color bg",
			attr:     Attr{BG: FromRGB(1, 2, 3)},
			text:     "x",
			expected: "\x1b[48;2;1;2;3mx\x1b[0m",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.attr.Render(tc.text))
		})
	}
}

func TestRenderCached(t *testing.T) {
	attr := Attr{FG: Cyan, Bold: true, Underline: true}
	first := attr.Render("a")
	second := attr.Render("b")
	assert.Equal(t, "\x1b[1;4;36ma\x1b[0m", first)
	assert.Equal(t, "\x1b[1;4;36mb\x1b[0m", second)
}
