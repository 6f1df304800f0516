// Package charset resolves the active text encoding and provides the
// per-source decoder and per-run stateful encoder the dump codec runs on.
package charset

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MaxEncodedLen bounds the byte length of a single encoded character in
// any supported charset (GB18030 and UTF-8 both top out at 4; the slack
// covers escape-prefixed forms).
const MaxEncodedLen = 16

// Charset is one resolved text encoding. The zero value is not usable;
// construct through Resolve.
type Charset struct {
	name string
	enc  encoding.Encoding

	utf8 bool
	cm   *charmap.Charmap
	// encodeOnly marks encodings that cannot be decoded one character
	// at a time: shift-state families (ISO-2022-JP, HZ-GB-2312) and the
	// UTF-16/UTF-32 forms, whose streams are not ASCII-transparent.
	encodeOnly bool
}

// Resolve maps an encoding name to a Charset. An empty name resolves from
// the locale environment. Unknown names are configuration errors.
func Resolve(name string) (*Charset, error) {
	if name == "" {
		name = FromLocale()
	}
	if isUTF8Name(name) {
		return &Charset{name: "UTF-8", enc: unicode.UTF8, utf8: true}, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	cs := &Charset{name: name, enc: enc}
	if cm, ok := enc.(*charmap.Charmap); ok {
		cs.cm = cm
	}
	switch enc {
	case japanese.ISO2022JP, simplifiedchinese.HZGB2312:
		// Сдвиговое состояние теряется между символами.
		cs.encodeOnly = true
	}
	if cs.cm == nil && !asciiTransparent(enc) {
		cs.encodeOnly = true
	}
	return cs, nil
}

// asciiTransparent reports whether a bare ASCII byte decodes to itself.
// The UTF-16/UTF-32 forms fail this; their decoders also restart
// BOM/endianness detection on every reset, so per-character decoding
// cannot work for them.
func asciiTransparent(e encoding.Encoding) bool {
	out, err := e.NewDecoder().Bytes([]byte("A"))
	return err == nil && len(out) == 1 && out[0] == 'A'
}

// FromLocale extracts the charset name from LC_ALL, LC_CTYPE or LANG
// ("en_US.UTF-8" -> "UTF-8"). UTF-8 when nothing usable is set.
func FromLocale() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			cs := v[i+1:]
			if j := strings.IndexByte(cs, '@'); j >= 0 {
				cs = cs[:j]
			}
			if cs != "" {
				return cs
			}
		}
		// Locale without an explicit charset (e.g. "C", "POSIX").
		return "UTF-8"
	}
	return "UTF-8"
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return true
	}
	return false
}

// Name returns the resolved charset name.
func (c *Charset) Name() string {
	return c.name
}

// IsUTF8 reports whether output needs no re-encoding.
func (c *Charset) IsUTF8() bool {
	return c.utf8
}

// NewDecoder returns a decoder for one forward-mode run. Encodings that
// cannot be decoded character-at-a-time are rejected.
func (c *Charset) NewDecoder() (Decoder, error) {
	switch {
	case c.encodeOnly:
		return nil, fmt.Errorf("encoding %q cannot be decoded character-at-a-time and is supported for reverse output only", c.name)
	case c.utf8:
		return utf8Decoder{}, nil
	case c.cm != nil:
		return charmapDecoder{cm: c.cm}, nil
	default:
		return &xtextDecoder{t: c.enc.NewDecoder(), owner: c}, nil
	}
}

// NewEncoder returns the persistent conversion state for one reverse-mode
// run.
func (c *Charset) NewEncoder() *Encoder {
	return &Encoder{t: c.enc.NewEncoder()}
}

// OutputTransformer converts UTF-8 dump text into the charset for the
// forward-mode output stream, replacing anything the charset cannot
// represent.
func (c *Charset) OutputTransformer() transform.Transformer {
	return encoding.ReplaceUnsupported(c.enc.NewEncoder())
}
