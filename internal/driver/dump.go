// Package driver wires the leaf packages into the two run modes: dump
// (bytes to hex+glyph lines) and undump (lines back to bytes).
package driver

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"golang.org/x/text/transform"

	"chd/internal/charset"
	"chd/internal/charsource"
	"chd/internal/config"
	"chd/internal/diag"
	"chd/internal/dump"
	"chd/internal/input"
)

// Dump renders the set's contents as dump lines on out. Per-source I/O
// failures go to rep and do not stop the run; only setup errors return.
func Dump(opts config.Options, set *input.Set, cs *charset.Charset, rep diag.Reporter, out io.Writer) error {
	src, err := charsource.New(set, cs, charsource.Options{
		Ignore:   opts.Ignore,
		Reporter: rep,
	})
	if err != nil {
		return err
	}

	w := out
	var tw *transform.Writer
	if !cs.IsUTF8() {
		// Glyphs must reach the terminal in the active charset, the
		// hex fields are plain ASCII either way.
		tw = transform.NewWriter(out, cs.OutputTransformer())
		w = tw
	}

	renderer := dump.NewRenderer(opts.Count)
	line := make([]charsource.Token, 0, opts.Count)

	// Skip the configured number of characters. The offset label still
	// counts them: the first line is labeled with the skip amount.
	eof := false
	for skipped := int64(0); skipped < opts.Start; skipped++ {
		if src.Next().Kind == charsource.KindEOF {
			eof = true
			break
		}
	}

	// Позиция оборачивается по модулю 2^32 — ровно восемь цифр метки.
	pos := uint32(opts.Start)
	remaining := opts.Limit
	for !eof && remaining > 0 {
		line = line[:0]
		for len(line) < opts.Count && remaining > 0 {
			t := src.Next()
			if t.Kind == charsource.KindEOF {
				eof = true
				break
			}
			line = append(line, t)
			remaining--
		}
		if len(line) == 0 {
			continue
		}
		if _, err := io.WriteString(w, renderer.Render(line, pos)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		n, err := safecast.Conv[uint32](len(line))
		if err != nil {
			return fmt.Errorf("line length overflow: %w", err)
		}
		pos += n
	}

	if tw != nil {
		if err := tw.Close(); err != nil {
			return fmt.Errorf("flush output encoder: %w", err)
		}
	}
	return nil
}
