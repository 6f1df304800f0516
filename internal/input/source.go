package input

import (
	"bufio"
	"io"
	"os"
)

// Source is one open byte source. Reads go through a buffered reader so
// the decoder can peek without consuming.
type Source struct {
	Name string

	r      *bufio.Reader
	f      *os.File
	closed bool
}

// Peek returns up to n unconsumed bytes without advancing. atEOF reports
// that the returned bytes are the last ones this source will produce. A
// non-nil err is a real read failure, never io.EOF.
func (s *Source) Peek(n int) (p []byte, atEOF bool, err error) {
	p, err = s.r.Peek(n)
	if len(p) > 0 {
		// Surface a sticky error only once the buffer drains.
		return p, err == io.EOF, nil
	}
	if err == io.EOF {
		return nil, true, nil
	}
	return nil, false, err
}

// Discard consumes n bytes previously seen through Peek.
func (s *Source) Discard(n int) {
	_, _ = s.r.Discard(n)
}

// ReadLine returns the next text line including its terminator. At end
// of input a final unterminated line is still returned; err is io.EOF
// only when nothing remains.
func (s *Source) ReadLine() ([]byte, error) {
	line, err := s.r.ReadBytes('\n')
	if len(line) > 0 {
		return line, nil
	}
	return nil, err
}

// Close releases the underlying file. Standard input is never closed.
// Closing twice is a no-op.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}
