package core

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// PlaceholderGlyph is drawn when a configured glyph cannot be shown.
const PlaceholderGlyph = '?'

// Glyph returns the single-cell rune for a configured glyph string.
// Empty, multi-rune, non-printable or double-width glyphs fall back to
// PlaceholderGlyph so a bad asset never breaks the layout.
func Glyph(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return PlaceholderGlyph, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return PlaceholderGlyph, false
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return PlaceholderGlyph, false
	}
	return r, true
}
