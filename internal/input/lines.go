package input

import "io"

// Lines iterates text lines across every source of a set, in order.
// Used by reverse mode, where input is dump text rather than raw bytes.
type Lines struct {
	set *Set
	cur *Source
}

// Lines returns a line iterator over the remaining sources.
func (s *Set) Lines() *Lines {
	return &Lines{set: s}
}

// Next returns the next line, or ok=false when every source is
// exhausted. Read failures are reported and end the failing source.
func (l *Lines) Next() (line []byte, ok bool) {
	for {
		if l.cur == nil {
			cur, opened := l.set.Open()
			if !opened {
				return nil, false
			}
			l.cur = cur
		}
		line, err := l.cur.ReadLine()
		if len(line) > 0 {
			return line, true
		}
		if err != nil && err != io.EOF {
			l.set.report(l.cur.Name, err)
		}
		if cerr := l.cur.Close(); cerr != nil {
			l.set.report(l.cur.Name, cerr)
		}
		l.cur = nil
	}
}
