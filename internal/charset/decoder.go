package charset

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrInvalid reports that the input begins with bytes that do not form a
// valid character in the active charset.
var ErrInvalid = errors.New("invalid byte sequence")

// Decoder decodes one character from the front of a byte window.
//
// p holds the next unconsumed input bytes; atEOF reports that p ends the
// stream. On success size is the number of bytes the character occupies.
// ErrInvalid means the caller decides between raw-byte fallback and
// abandoning the source; transform.ErrShortSrc asks for a larger window.
type Decoder interface {
	Decode(p []byte, atEOF bool) (r rune, size int, err error)
}

// utf8Decoder — без состояния, обычный utf8 из стандартной библиотеки.
type utf8Decoder struct{}

func (utf8Decoder) Decode(p []byte, atEOF bool) (rune, int, error) {
	if len(p) == 0 {
		return 0, 0, transform.ErrShortSrc
	}
	if !utf8.FullRune(p) && !atEOF {
		return 0, 0, transform.ErrShortSrc
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size == 1 {
		// Invalid byte or truncated tail; a genuine U+FFFD decodes
		// with size 3 and does not land here.
		return 0, 0, ErrInvalid
	}
	return r, size, nil
}

// charmapDecoder handles every single-byte charmap. Undefined positions
// in the map decode to U+FFFD, which no charmap maps a real byte to.
type charmapDecoder struct {
	cm *charmap.Charmap
}

func (d charmapDecoder) Decode(p []byte, atEOF bool) (rune, int, error) {
	if len(p) == 0 {
		return 0, 0, transform.ErrShortSrc
	}
	r := d.cm.DecodeByte(p[0])
	if r == utf8.RuneError {
		return 0, 0, ErrInvalid
	}
	return r, 1, nil
}

// xtextDecoder drives a stateless multibyte transformer (Shift-JIS, EUC,
// GBK, Big5, ...) one character at a time: grow the source prefix until
// the transformer produces output, resetting before every attempt so no
// hidden state survives between characters.
type xtextDecoder struct {
	t     transform.Transformer
	owner *Charset

	replOnce  bool
	replBytes []byte
}

func (d *xtextDecoder) Decode(p []byte, atEOF bool) (rune, int, error) {
	var dst [utf8.UTFMax]byte
	for n := 1; n <= len(p); n++ {
		d.t.Reset()
		nDst, nSrc, err := d.t.Transform(dst[:], p[:n], atEOF && n == len(p))
		if nDst > 0 {
			r, _ := utf8.DecodeRune(dst[:nDst])
			if r == utf8.RuneError && !d.isEncodedReplacement(p[:nSrc]) {
				return 0, 0, ErrInvalid
			}
			return r, nSrc, nil
		}
		switch err {
		case transform.ErrShortSrc, nil:
			continue
		case transform.ErrShortDst:
			continue
		default:
			return 0, 0, ErrInvalid
		}
	}
	if atEOF {
		if len(p) == 0 {
			return 0, 0, transform.ErrShortSrc
		}
		return 0, 0, ErrInvalid
	}
	return 0, 0, transform.ErrShortSrc
}

// isEncodedReplacement distinguishes a legitimately encoded U+FFFD (which
// GB18030 can carry) from the transformer's substitution for bad input.
func (d *xtextDecoder) isEncodedReplacement(consumed []byte) bool {
	if !d.replOnce {
		d.replOnce = true
		out, err := d.owner.enc.NewEncoder().Bytes([]byte("�"))
		if err == nil {
			d.replBytes = out
		}
	}
	return len(d.replBytes) > 0 && bytes.Equal(d.replBytes, consumed)
}
