package caret

import "iter"

// Buffer is the read-only view of a text buffer a caret navigates.
// A caret holds no reference to it between calls.
type Buffer interface {
	// Total number of lines, at least 1 for any usable buffer.
	NumLines() int
	// Character count of the line including a trailing LF, false if out of range.
	LineLength(line int) (int, bool)
	// Characters of the line including a trailing LF, false if out of range.
	LineChars(line int) (iter.Seq[rune], bool)
}
