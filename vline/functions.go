package vline

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

var (
	narrow = &runewidth.Condition{EastAsianWidth: false}
	wide   = &runewidth.Condition{EastAsianWidth: true}
)

// RuneWidth returns the number of screen cells ch occupies.
// ok is false for characters with no printable width (control characters,
// including LF), which callers treat as zero cells.
//
//   - ambiguousWide: East Asian ambiguous characters take two cells
func RuneWidth(ch rune, ambiguousWide bool) (w int, ok bool) {
	if ch < 0 || ch > unicode.MaxRune || unicode.IsControl(ch) {
		return 0, false
	}
	if ambiguousWide {
		return wide.RuneWidth(ch), true
	}
	return narrow.RuneWidth(ch), true
}

// CellWidth is RuneWidth with absent widths folded to zero.
func CellWidth(ch rune, ambiguousWide bool) int {
	w, _ := RuneWidth(ch, ambiguousWide)
	return w
}
