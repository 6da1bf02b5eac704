package style

// Name identifies one of the 16 standard ANSI colors.
type Name int

const (
	NameBlack Name = iota
	NameRed
	NameGreen
	NameYellow
	NameBlue
	NameMagenta
	NameCyan
	NameWhite
	NameBrightBlack
	NameBrightRed
	NameBrightGreen
	NameBrightYellow
	NameBrightBlue
	NameBrightMagenta
	NameBrightCyan
	NameBrightWhite
)

// Foreground SGR codes; backgrounds are offset by 10.
var namedCodes = map[Name]int{
	NameBlack:         30,
	NameRed:           31,
	NameGreen:         32,
	NameYellow:        33,
	NameBlue:          34,
	NameMagenta:       35,
	NameCyan:          36,
	NameWhite:         37,
	NameBrightBlack:   90,
	NameBrightRed:     91,
	NameBrightGreen:   92,
	NameBrightYellow:  93,
	NameBrightBlue:    94,
	NameBrightMagenta: 95,
	NameBrightCyan:    96,
	NameBrightWhite:   97,
}

// Ready-made colors for Attr literals.
var (
	Black         = Color{Type: ColorTypeNamed, Name: NameBlack}
	Red           = Color{Type: ColorTypeNamed, Name: NameRed}
	Green         = Color{Type: ColorTypeNamed, Name: NameGreen}
	Yellow        = Color{Type: ColorTypeNamed, Name: NameYellow}
	Blue          = Color{Type: ColorTypeNamed, Name: NameBlue}
	Magenta       = Color{Type: ColorTypeNamed, Name: NameMagenta}
	Cyan          = Color{Type: ColorTypeNamed, Name: NameCyan}
	White         = Color{Type: ColorTypeNamed, Name: NameWhite}
	BrightBlack   = Color{Type: ColorTypeNamed, Name: NameBrightBlack}
	BrightRed     = Color{Type: ColorTypeNamed, Name: NameBrightRed}
	BrightGreen   = Color{Type: ColorTypeNamed, Name: NameBrightGreen}
	BrightYellow  = Color{Type: ColorTypeNamed, Name: NameBrightYellow}
	BrightBlue    = Color{Type: ColorTypeNamed, Name: NameBrightBlue}
	BrightMagenta = Color{Type: ColorTypeNamed, Name: NameBrightMagenta}
	BrightCyan    = Color{Type: ColorTypeNamed, Name: NameBrightCyan}
	BrightWhite   = Color{Type: ColorTypeNamed, Name: NameBrightWhite}
)
