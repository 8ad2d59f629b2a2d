// Package caret tracks a logical edit position in a text buffer and maps
// between buffer columns (character index) and screen columns (cells).
package caret

import (
	"fmt"

	"github.com/ge-editor/gecore/verb"

	"github.com/ge-editor/caret/pkg_error"
)

// Screen column remembered across consecutive vertical moves
type savedColumn struct {
	column int
	ok     bool
}

var noSavedColumn = savedColumn{}

// Caret is a position in buffer coordinates.
// The saved column is in screen cell coordinates.
type Caret struct {
	line   int
	column int
	saved  savedColumn
}

// New returns a caret at the start of a buffer.
func New() Caret {
	return Caret{}
}

func (c Caret) Line() int {
	return c.line
}

func (c Caret) Column() int {
	return c.column
}

// SavedColumn returns the screen column a vertical move aims for,
// if a previous vertical move could not reach it.
func (c Caret) SavedColumn() (int, bool) {
	return c.saved.column, c.saved.ok
}

func (c Caret) String() string {
	if c.saved.ok {
		return fmt.Sprintf("Caret(%d:%d, saved %d)", c.line, c.column, c.saved.column)
	}
	return fmt.Sprintf("Caret(%d:%d)", c.line, c.column)
}

// Adjust moves the caret. Requests other than Set assume the caret is at a
// valid position of buffer and panic otherwise.
// The caret is left untouched when a request resolves to the current position,
// except that Set always clears the saved column.
func (c *Caret) Adjust(adjustment Adjustment, buffer Buffer) {
	if adjustment.kind != set {
		c.mustBeValid(buffer)
	}

	line, column := c.line, c.column
	newLine, newColumn, newSaved := line, column, c.saved

	switch adjustment.kind {
	case charPrev:
		newColumn, newSaved = max(0, column-1), noSavedColumn
	case charNext:
		maxColumn := max(0, mustLineLength(line, buffer)-1)
		newColumn, newSaved = min(maxColumn, column+1), noSavedColumn
	case lineUp:
		if line > 0 {
			newLine, newColumn, newSaved = c.verticalMovement(line, line-1, buffer)
		}
	case lineDown:
		if line < max(0, buffer.NumLines()-1) {
			newLine, newColumn, newSaved = c.verticalMovement(line, line+1, buffer)
		}
	case set:
		newLine, newColumn, newSaved = adjustment.line, adjustment.column, noSavedColumn
	default:
		panic(fmt.Sprintf("caret: invalid adjustment %v", adjustment))
	}

	if line != newLine || column != newColumn || adjustment.kind == set {
		c.line, c.column, c.saved = newLine, newColumn, newSaved
	}
}

// Restricts the caret column to valid character positions in screen space.
func (c *Caret) verticalMovement(fromLine, toLine int, buffer Buffer) (int, int, savedColumn) {
	toLineLength := mustLineLength(toLine, buffer)
	toLineScreenLength := BufferToScreenColumn(toLine, toLineLength, buffer)
	maxColumn := max(0, toLineScreenLength-1)

	desiredColumn := c.saved.column
	if !c.saved.ok {
		desiredColumn = BufferToScreenColumn(fromLine, c.column, buffer)
	}
	screenColumn := min(maxColumn, desiredColumn)

	bufferColumn, ok := ScreenToBufferColumn(toLine, screenColumn, buffer)
	if !ok {
		lineOutOfRange(toLine, buffer)
	}

	// NOTE: compares a buffer column with a screen column. The two only agree
	// when every character before the caret is one cell wide.
	if bufferColumn == desiredColumn {
		return toLine, bufferColumn, noSavedColumn
	}
	return toLine, bufferColumn, savedColumn{column: desiredColumn, ok: true}
}

func (c *Caret) mustBeValid(buffer Buffer) {
	length := mustLineLength(c.line, buffer)
	if c.column < 0 || c.column > length {
		err := fmt.Errorf("%w: column %d, line %d has %d characters", pkg_error.ErrColumnOutOfRange, c.column, c.line, length)
		verb.PP("caret: %v", err)
		panic(err)
	}
}

// Clamp returns the valid position of buffer nearest to (line, column).
func Clamp(line, column int, buffer Buffer) (int, int) {
	line = min(max(0, line), max(0, buffer.NumLines()-1))
	length, ok := buffer.LineLength(line)
	if !ok {
		return 0, 0
	}
	return line, min(max(0, column), length)
}

func mustLineLength(line int, buffer Buffer) int {
	length, ok := buffer.LineLength(line)
	if !ok {
		lineOutOfRange(line, buffer)
	}
	return length
}

func lineOutOfRange(line int, buffer Buffer) {
	err := fmt.Errorf("%w: line %d, buffer has %d lines", pkg_error.ErrLineOutOfRange, line, buffer.NumLines())
	verb.PP("caret: %v", err)
	panic(err)
}
