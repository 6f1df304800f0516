package dump

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"chd/internal/charsource"
)

// Renderer formats one line of dump output at a time.
type Renderer struct {
	linesize int
}

// NewRenderer builds a renderer for linesize characters per line.
func NewRenderer(linesize int) *Renderer {
	return &Renderer{linesize: linesize}
}

// Render formats up to linesize tokens into one dump line. offset is the
// running character position; it is a uint32 on purpose — the label
// wraps modulo 2^32 so it stays eight digits for any input length.
func (r *Renderer) Render(tokens []charsource.Token, offset uint32) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%08X: ", offset)

	for _, t := range tokens {
		switch {
		case t.Kind == charsource.KindRaw:
			fmt.Fprintf(&b, "   *%02X", t.Byte)
		case t.Rune < 256:
			fmt.Fprintf(&b, "    %02X", t.Rune)
		default:
			fmt.Fprintf(&b, "%6X", t.Rune)
		}
	}

	b.WriteString(strings.Repeat(" ", fieldWidth*(r.linesize-len(tokens))+5))

	for _, t := range tokens {
		if t.Kind == charsource.KindRaw {
			// Raw bytes have no codepoint to draw.
			b.WriteRune(replacement)
			b.WriteByte(' ')
			continue
		}
		switch runewidth.RuneWidth(t.Rune) {
		case 2:
			b.WriteRune(t.Rune)
		case 1:
			b.WriteRune(t.Rune)
			b.WriteByte(' ')
		default:
			if t.Rune < 0x20 {
				b.WriteRune(rune(controlPictures + t.Rune))
			} else {
				b.WriteRune(replacement)
			}
			b.WriteByte(' ')
		}
	}

	b.WriteByte('\n')
	return b.String()
}
