package driver

import (
	"fmt"
	"io"

	"chd/internal/charset"
	"chd/internal/config"
	"chd/internal/dump"
	"chd/internal/input"
)

// Undump parses dump lines from the set and writes the reconstructed
// bytes to out. One conversion state serves the whole run and is flushed
// exactly once at the end.
//
// The limit is checked between lines only: a line already being decoded
// is emitted in full even when it crosses the limit.
// Read failures are reported through the set's own reporter.
func Undump(opts config.Options, set *input.Set, cs *charset.Charset, out io.Writer) error {
	parser := dump.NewParser(opts.Count, cs.NewEncoder())
	lines := set.Lines()

	remaining := opts.Limit
	for remaining > 0 {
		line, ok := lines.Next()
		if !ok {
			break
		}
		emitted, tokens := parser.ParseLine(line)
		if len(emitted) > 0 {
			if _, err := out.Write(emitted); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		remaining -= int64(tokens)
	}

	if tail := parser.Finalize(); len(tail) > 0 {
		if _, err := out.Write(tail); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
