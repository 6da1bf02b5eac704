package ansi

// C0 (7-bit) control characters from ANSI.
//
// This is not complete, control characters are only added to this as the
// key decoder handles them.
//
// see chapter 3 for detail information about control characters based on
// VT100, which is compatiable with the ANSI standard:
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
type c0 struct {
	ETX uint8 // ETX is the end of text character (Caret: ^C), sent by ctrl-c.
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	ESC uint8 // ESC is the escape character (Caret: ^[).
	SP  uint8 // SP is the space character.
	DEL uint8 // DEL is the delete character, sent by the backspace key.
}

var C0 = c0{
	ETX: 0x03,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	CR:  0x0D,
	ESC: 0x1B,
	SP:  0x20,
	DEL: 0x7F,
}
