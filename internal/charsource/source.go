// Package charsource turns an ordered set of byte sources into a stream
// of decoded character tokens with a well-defined fallback for bytes the
// active charset cannot decode.
package charsource

import (
	"golang.org/x/text/transform"

	"chd/internal/charset"
	"chd/internal/input"
)

// Reporter — тонкий интерфейс, чтобы не тянуть diag сюда.
// Источник **только вызывает** его; форматирует внешний слой.
type Reporter interface {
	Report(name string, err error)
}

// Options configures a Source.
type Options struct {
	// Ignore turns undecodable bytes into raw tokens instead of ending
	// the source.
	Ignore bool
	// Reporter receives per-source failures; may be nil.
	Reporter Reporter
}

// Source yields tokens from the set's sources in order. Every underlying
// byte is consumed exactly once; sources are closed exactly once each.
type Source struct {
	set  *input.Set
	dec  charset.Decoder
	opts Options

	cur  *input.Source
	done bool
}

// New validates that the charset can decode and builds the token source.
func New(set *input.Set, cs *charset.Charset, opts Options) (*Source, error) {
	dec, err := cs.NewDecoder()
	if err != nil {
		return nil, err
	}
	return &Source{set: set, dec: dec, opts: opts}, nil
}

// Next returns the next token. KindEOF is stable: further calls keep
// returning it.
func (s *Source) Next() Token {
	for {
		if s.done {
			return EOF()
		}
		if s.cur == nil {
			cur, ok := s.set.Open()
			if !ok {
				s.done = true
				return EOF()
			}
			s.cur = cur
		}
		p, atEOF, err := s.cur.Peek(charset.MaxEncodedLen)
		if err != nil {
			s.finish(err)
			continue
		}
		if len(p) == 0 && atEOF {
			s.finish(nil)
			continue
		}
		r, size, derr := s.dec.Decode(p, atEOF)
		switch derr {
		case nil:
			s.cur.Discard(size)
			return Char(r)
		case charset.ErrInvalid:
			if s.opts.Ignore {
				b := p[0]
				s.cur.Discard(1)
				return Raw(b)
			}
			s.finish(derr)
		case transform.ErrShortSrc:
			// Окно меньше одного символа быть не может; страховка
			// от зацикливания.
			s.finish(charset.ErrInvalid)
		default:
			s.finish(derr)
		}
	}
}

// finish ends the current source: report the error that ended it, close
// it once, move the cursor on.
func (s *Source) finish(err error) {
	if err != nil {
		s.report(s.cur.Name, err)
	}
	if cerr := s.cur.Close(); cerr != nil {
		s.report(s.cur.Name, cerr)
	}
	s.cur = nil
}

func (s *Source) report(name string, err error) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(name, err)
	}
}
