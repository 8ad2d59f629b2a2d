package caret

import (
	"github.com/ge-editor/gecore/define"

	"github.com/ge-editor/caret/vline"
)

// Ambiguous East Asian characters are measured narrow.
const ambiguousWide = false

// BufferToScreenColumn sums up the widths of the characters before column.
// A missing line measures 0.
func BufferToScreenColumn(line, column int, buffer Buffer) int {
	chars, ok := buffer.LineChars(line)
	if !ok {
		return 0
	}
	sum, index := 0, 0
	for ch := range chars {
		if index >= column {
			break
		}
		sum += vline.CellWidth(ch, ambiguousWide)
		index++
	}
	return sum
}

// ScreenToBufferColumn scans a line, counting characters up to screenColumn.
// The count stops before the first character whose cells would end past
// screenColumn. LF is skipped. ok is false if the line does not exist.
func ScreenToBufferColumn(line, screenColumn int, buffer Buffer) (column int, ok bool) {
	chars, ok := buffer.LineChars(line)
	if !ok {
		return 0, false
	}
	sum := 0
	for ch := range chars {
		if ch == define.LF {
			continue
		}
		sum += vline.CellWidth(ch, ambiguousWide)
		if sum > screenColumn {
			break
		}
		column++
	}
	return column, true
}
