package charset

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Encoder is the persistent conversion state of one reverse-mode run.
// Shift-based charsets (ISO-2022-JP) depend on previously emitted bytes,
// so a single Encoder must serve every character of the run and be
// flushed exactly once at the end.
type Encoder struct {
	t transform.Transformer
}

// EncodeRune converts one codepoint into its output byte sequence,
// advancing the shift state. Codepoints outside the Unicode scalar range
// encode as U+FFFD. Codepoints the charset has no mapping for return an
// error and leave the caller to substitute.
func (e *Encoder) EncodeRune(r rune) ([]byte, error) {
	var src [utf8.UTFMax]byte
	n := utf8.EncodeRune(src[:], r)
	var dst [4 * MaxEncodedLen]byte
	nDst, _, err := e.t.Transform(dst[:], src[:n], false)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), dst[:nDst]...), nil
}

// RawByte produces the byte sequence for a flagged raw byte: the shift
// state is first driven back to neutral by encoding NUL, then the final
// byte of that sequence is overwritten with the raw value.
func (e *Encoder) RawByte(b byte) []byte {
	out, err := e.EncodeRune(0)
	if err != nil || len(out) == 0 {
		return []byte{b}
	}
	out[len(out)-1] = b
	return out
}

// Flush emits whatever trailing bytes return the conversion state to
// neutral. Called once at the end of a run, never mid-stream.
func (e *Encoder) Flush() []byte {
	out, err := e.EncodeRune(0)
	if err != nil || len(out) == 0 {
		return nil
	}
	// Drop the NUL; only the shift-back sequence belongs in the output.
	return out[:len(out)-1]
}
