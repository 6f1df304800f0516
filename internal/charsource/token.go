package charsource

import "fmt"

// Kind discriminates the three token variants. An explicit tag instead
// of a flag bit packed into the codepoint, so no value range can ever
// collide with the marker.
type Kind uint8

const (
	// KindEOF is terminal: once returned, Next keeps returning it.
	KindEOF Kind = iota
	// KindChar is a successfully decoded codepoint.
	KindChar
	// KindRaw is one octet that could not be decoded and is carried
	// through verbatim.
	KindRaw
)

// Token is one unit of decoded input.
type Token struct {
	Kind Kind
	Rune rune // valid when Kind == KindChar
	Byte byte // valid when Kind == KindRaw
}

func Char(r rune) Token { return Token{Kind: KindChar, Rune: r} }
func Raw(b byte) Token  { return Token{Kind: KindRaw, Byte: b} }
func EOF() Token        { return Token{Kind: KindEOF} }

func (t Token) String() string {
	switch t.Kind {
	case KindChar:
		return fmt.Sprintf("char(U+%04X)", t.Rune)
	case KindRaw:
		return fmt.Sprintf("raw(%02X)", t.Byte)
	default:
		return "eof"
	}
}
