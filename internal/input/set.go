// Package input manages the ordered list of named byte sources a run
// consumes: files by name, with "-" standing in for standard input.
package input

import (
	"bufio"
	"io"
	"os"
)

// Reporter — тонкий интерфейс, чтобы не тянуть diag сюда.
type Reporter interface {
	Report(name string, err error)
}

// Set walks an ordered list of source names. Exhausted or unopenable
// names are dropped from the front and never revisited.
type Set struct {
	pending []string
	stdin   io.Reader
	rep     Reporter
}

// NewSet builds a set over the given names. An empty list reads standard
// input, same as the single name "-". stdin supplies the reader behind
// "-" so tests can substitute it.
func NewSet(names []string, stdin io.Reader, rep Reporter) *Set {
	if len(names) == 0 {
		names = []string{"-"}
	}
	if rep == nil {
		rep = nopReporter{}
	}
	return &Set{pending: append([]string(nil), names...), stdin: stdin, rep: rep}
}

type nopReporter struct{}

func (nopReporter) Report(string, error) {}

// Open advances to the next source that opens successfully. Open
// failures are reported and the cursor moves on; ok is false once the
// list is exhausted.
func (s *Set) Open() (src *Source, ok bool) {
	for len(s.pending) > 0 {
		name := s.pending[0]
		s.pending = s.pending[1:]
		if name == "-" {
			// Человекочитаемое имя для сообщений об ошибках.
			return &Source{Name: "stdin", r: bufio.NewReader(s.stdin)}, true
		}
		f, err := os.Open(name)
		if err != nil {
			s.rep.Report(name, err)
			continue
		}
		return &Source{Name: name, r: bufio.NewReader(f), f: f}, true
	}
	return nil, false
}

func (s *Set) report(name string, err error) {
	s.rep.Report(name, err)
}
