package dump

import (
	"bytes"

	"chd/internal/charset"
)

// Parser inverts Render. It owns the run's conversion state: translating
// a codepoint back into bytes may depend on previously emitted bytes, so
// one Parser must process every line of a reverse-mode run.
type Parser struct {
	linesize int
	enc      *charset.Encoder
}

// NewParser builds a parser around the run's persistent encoder.
func NewParser(linesize int, enc *charset.Encoder) *Parser {
	return &Parser{linesize: linesize, enc: enc}
}

// ParseLine decodes one dump line into output bytes and reports how many
// tokens it held. Everything the scan can reach is ASCII by construction
// of the renderer, so the line is handled as raw bytes.
func (p *Parser) ParseLine(line []byte) (out []byte, tokens int) {
	// Skip the offset label: everything up to and including the first
	// space. No space means no fields.
	sep := bytes.IndexByte(line, ' ')
	if sep < 0 {
		return nil, 0
	}
	pos := sep + 1

	for tokens < p.linesize {
		end := pos + fieldWidth
		if end > len(line) {
			end = len(line)
		}
		if pos >= end {
			break
		}
		val, raw, ok := matchField(line[pos:end])
		if !ok {
			// Not a field: padding, glyph column, or a truncated
			// trailing line. Valid end-of-line signal, not an error.
			break
		}
		if raw {
			out = append(out, p.enc.RawByte(byte(val))...)
		} else {
			out = append(out, p.encodeChar(rune(val))...)
		}
		pos += fieldWidth
		tokens++
	}
	return out, tokens
}

// Finalize flushes the trailing shift state. Call exactly once, after
// the last line of the run.
func (p *Parser) Finalize() []byte {
	return p.enc.Flush()
}

// encodeChar encodes one codepoint, substituting the replacement
// character when the charset cannot express it, and plain '?' when it
// cannot even express that.
func (p *Parser) encodeChar(r rune) []byte {
	if b, err := p.enc.EncodeRune(r); err == nil {
		return b
	}
	if b, err := p.enc.EncodeRune(replacement); err == nil {
		return b
	}
	b, err := p.enc.EncodeRune('?')
	if err != nil {
		return nil
	}
	return b
}

// matchField matches one fixed-width field window against the two
// recognized patterns:
//
//	optional spaces, then 1..6 hex digits        -> codepoint
//	optional spaces, then '*' and exactly 2 hex  -> raw byte
//
// Digits must run to the end of the window; the renderer never emits
// anything else, and the strictness keeps padding and glyphs from
// matching.
func matchField(w []byte) (val uint32, raw bool, ok bool) {
	i := 0
	for i < len(w) && w[i] == ' ' {
		i++
	}
	if i < len(w) && w[i] == '*' {
		raw = true
		i++
	}
	start := i
	for i < len(w) {
		d, isHex := hexDigit(w[i])
		if !isHex {
			return 0, false, false
		}
		val = val<<4 | uint32(d)
		i++
	}
	digits := i - start
	if digits == 0 {
		return 0, false, false
	}
	if raw && digits != 2 {
		return 0, false, false
	}
	return val, raw, true
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
