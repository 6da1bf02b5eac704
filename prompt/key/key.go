package key

import "fmt"

// Type tags a decoded key token. The set is closed: the decoder resolves
// every input byte sequence to one of these or to an error, so a prompt
// transition table can switch over it exhaustively.
type Type int

const (
	TypeChar Type = iota
	TypeUp
	TypeDown
	TypeLeft
	TypeRight
	TypeEnter
	TypeSpace
	TypeEscape
	TypeBackspace
	TypeTab
)

func (t Type) String() string {
	switch t {
	case TypeChar:
		return "Char"
	case TypeUp:
		return "Up"
	case TypeDown:
		return "Down"
	case TypeLeft:
		return "Left"
	case TypeRight:
		return "Right"
	case TypeEnter:
		return "Enter"
	case TypeSpace:
		return "Space"
	case TypeEscape:
		return "Escape"
	case TypeBackspace:
		return "Backspace"
	case TypeTab:
		return "Tab"
	default:
		return "Unknown"
	}
}

// Token is a single decoded keypress. Rune is set only for TypeChar.
//
// The space bar is always TypeSpace, never Char(' '), so that "toggle an
// option" and "type a space" stay unambiguous in the transition tables.
type Token struct {
	Type Type
	Rune rune
}

// Char returns a literal-character token.
func Char(r rune) Token { return Token{Type: TypeChar, Rune: r} }

var (
	Up        = Token{Type: TypeUp}
	Down      = Token{Type: TypeDown}
	Left      = Token{Type: TypeLeft}
	Right     = Token{Type: TypeRight}
	Enter     = Token{Type: TypeEnter}
	Space     = Token{Type: TypeSpace}
	Escape    = Token{Type: TypeEscape}
	Backspace = Token{Type: TypeBackspace}
	Tab       = Token{Type: TypeTab}
)

func (t Token) String() string {
	if t.Type == TypeChar {
		return fmt.Sprintf("Char(%q)", t.Rune)
	}
	return t.Type.String()
}
