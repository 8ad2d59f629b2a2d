package caret

import "fmt"

type adjustmentKind uint8

const (
	lineUp adjustmentKind = iota + 1
	lineDown
	charNext
	charPrev
	set
)

// Adjustment is a caret move request.
// Build one with LineUp, LineDown, CharNext, CharPrev or Set(line, column).
// The zero Adjustment is invalid.
type Adjustment struct {
	kind   adjustmentKind
	line   int
	column int
}

// LineUp moves the caret to the previous line, keeping its screen column.
func LineUp() Adjustment { return Adjustment{kind: lineUp} }

// LineDown moves the caret to the next line, keeping its screen column.
func LineDown() Adjustment { return Adjustment{kind: lineDown} }

// CharNext moves the caret one character right, stopping at the last one.
func CharNext() Adjustment { return Adjustment{kind: charNext} }

// CharPrev moves the caret one character left, stopping at column 0.
func CharPrev() Adjustment { return Adjustment{kind: charPrev} }

// Set places the caret at an absolute buffer position.
// The position is not validated; see Clamp.
func Set(line, column int) Adjustment {
	return Adjustment{kind: set, line: line, column: column}
}

// Target returns the position of a Set adjustment.
func (a Adjustment) Target() (line, column int, ok bool) {
	if a.kind != set {
		return 0, 0, false
	}
	return a.line, a.column, true
}

// IsVertical reports whether a is LineUp or LineDown.
func (a Adjustment) IsVertical() bool {
	return a.kind == lineUp || a.kind == lineDown
}

func (a Adjustment) String() string {
	switch a.kind {
	case lineUp:
		return "LineUp"
	case lineDown:
		return "LineDown"
	case charNext:
		return "CharNext"
	case charPrev:
		return "CharPrev"
	case set:
		return fmt.Sprintf("Set(%d, %d)", a.line, a.column)
	}
	return "Invalid"
}
