// Package dump renders character tokens as aligned hex+glyph lines and
// parses those lines back into the exact original byte stream.
package dump

// Fixed layout of a dump line:
//
//	00000000:     41    42  ...padding...  A B
//	^label    ^ 6-wide hex fields          ^ glyph column
const (
	// labelWidth covers "XXXXXXXX: ".
	labelWidth = 10
	// fieldWidth is the width of every hex field, whichever kind.
	fieldWidth = 6

	// controlPictures is where the Unicode control-picture glyphs start;
	// a C0 code v renders as the glyph at controlPictures+v.
	controlPictures = 0x2400
	// replacement stands in for anything without a printable glyph.
	replacement = '�'
)

// GlyphColumn returns the 0-indexed column where the glyph column starts
// for the given line size. Identical for every rendered line.
func GlyphColumn(linesize int) int {
	return labelWidth + fieldWidth*linesize + 5
}
