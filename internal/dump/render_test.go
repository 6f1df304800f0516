package dump_test

import (
	"strings"
	"testing"

	"chd/internal/charsource"
	"chd/internal/dump"
)

func chars(s string) []charsource.Token {
	var tokens []charsource.Token
	for _, r := range s {
		tokens = append(tokens, charsource.Char(r))
	}
	return tokens
}

func TestRenderBasicASCII(t *testing.T) {
	r := dump.NewRenderer(8)
	got := r.Render(chars("AB"), 0)
	want := "00000000:     41    42" + strings.Repeat(" ", 41) + "A B \n"
	if got != want {
		t.Errorf("Render(AB):\n got %q\nwant %q", got, want)
	}
}

func TestRenderOffsetLabel(t *testing.T) {
	r := dump.NewRenderer(2)
	got := r.Render(chars("AB"), 0xDEADBEEF)
	if !strings.HasPrefix(got, "DEADBEEF: ") {
		t.Errorf("offset label: got %q", got)
	}
}

func TestRenderFieldKinds(t *testing.T) {
	tests := []struct {
		name  string
		token charsource.Token
		field string
		glyph string
	}{
		{"ascii", charsource.Char('A'), "    41", "A "},
		{"latin1 range", charsource.Char('é'), "    E9", "é "},
		{"beyond byte", charsource.Char('世'), "  4E16", "世"},
		{"raw byte", charsource.Raw(0xFF), "   *FF", "� "},
		{"control", charsource.Char('\n'), "    0A", "␊ "},
		{"nul", charsource.Char(0), "    00", "␀ "},
		{"del", charsource.Char(0x7F), "    7F", "� "},
		{"combining", charsource.Char('́'), "   301", "� "},
		{"astral", charsource.Char(0x1F600), " 1F600", "\U0001F600"},
	}

	r := dump.NewRenderer(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Render([]charsource.Token{tt.token}, 0)
			want := "00000000: " + tt.field + "     " + tt.glyph + "\n"
			if got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

// Колонка глифов начинается на одной и той же позиции независимо от
// количества токенов в строке.
func TestRenderGlyphColumnAlignment(t *testing.T) {
	const linesize = 8
	r := dump.NewRenderer(linesize)
	want := dump.GlyphColumn(linesize)

	for count := 1; count <= linesize; count++ {
		line := r.Render(chars(strings.Repeat("x", count)), 0)
		glyphs := strings.Repeat("x ", count) + "\n"
		idx := strings.Index(line, glyphs)
		if idx != want {
			t.Errorf("count=%d: glyph column at %d, want %d (line %q)", count, idx, want, line)
		}
	}
}

func TestRenderEmptyTokens(t *testing.T) {
	r := dump.NewRenderer(4)
	got := r.Render(nil, 0x10)
	want := "00000010: " + strings.Repeat(" ", 4*6+5) + "\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
