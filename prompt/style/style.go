// Package style renders text with ANSI SGR attributes. It is a pure
// text-to-text layer: no terminal state, no cursor movement.
package style

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mitchellh/hashstructure/v2"
)

type RGB struct {
	R, G, B uint8
}

type ColorType int

const (
	ColorTypeNone ColorType = iota
	ColorTypeNamed
	ColorTypeRGB
)

// Color is either unset, one of the 16 named ANSI colors, or a direct
// 24-bit value.
type Color struct {
	Type ColorType
	Name Name
	RGB  RGB
}

func FromRGB(r, g, b uint8) Color {
	return Color{Type: ColorTypeRGB, RGB: RGB{R: r, G: g, B: b}}
}

// Attr is the full attribute set for one run of text.
type Attr struct {
	FG Color
	BG Color

	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Strikethrough bool
}

// Render wraps text in the composed SGR prefix and a reset. A zero Attr
// returns text unchanged, so unstyled paths cost nothing and stay byte
// comparable in tests.
func (a Attr) Render(text string) string {
	prefix := a.prefix()
	if prefix == "" {
		return text
	}
	return prefix + text + "\x1b[0m"
}

// prefixCache memoizes composed SGR prefixes by attribute hash. Prompts
// re-render the same handful of attributes once per keystroke, so the
// compose cost is paid once per distinct Attr instead.
var prefixCache sync.Map // uint64 -> string

func (a Attr) prefix() string {
	hash, err := hashstructure.Hash(a, hashstructure.FormatV2, nil)
	if err == nil {
		if cached, ok := prefixCache.Load(hash); ok {
			return cached.(string)
		}
	}

	var codes []string
	if a.Bold {
		codes = append(codes, "1")
	}
	if a.Dim {
		codes = append(codes, "2")
	}
	if a.Italic {
		codes = append(codes, "3")
	}
	if a.Underline {
		codes = append(codes, "4")
	}
	if a.Blink {
		codes = append(codes, "5")
	}
	if a.Reverse {
		codes = append(codes, "7")
	}
	if a.Strikethrough {
		codes = append(codes, "9")
	}
	codes = appendColor(codes, a.FG, false)
	codes = appendColor(codes, a.BG, true)

	prefix := ""
	if len(codes) > 0 {
		prefix = "\x1b[" + strings.Join(codes, ";") + "m"
	}
	if err == nil {
		prefixCache.Store(hash, prefix)
	}
	return prefix
}

func appendColor(codes []string, c Color, bg bool) []string {
	switch c.Type {
	case ColorTypeNone:
		return codes
	case ColorTypeNamed:
		code, ok := namedCodes[c.Name]
		if !ok {
			return codes
		}
		if bg {
			code += 10
		}
		return append(codes, strconv.Itoa(code))
	case ColorTypeRGB:
		lead := "38"
		if bg {
			lead = "48"
		}
		return append(codes, fmt.Sprintf("%s;2;%d;%d;%d", lead, c.RGB.R, c.RGB.G, c.RGB.B))
	default:
		return codes
	}
}
