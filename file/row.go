package file

import (
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/ge-editor/gecore/define"
)

// Row is one line of text. A terminated row ends with LF.
type Row []rune

func NewRow() Row {
	return make(Row, 0, 64) // cap is...
}

// IsTerminated reports whether the row ends with LF.
func (m Row) IsTerminated() bool {
	return len(m) > 0 && m[len(m)-1] == define.LF
}

// Chars yields the runes of the row, LF included.
func (m Row) Chars() iter.Seq[rune] {
	return slices.Values(m)
}

func (m Row) String() string {
	return string(m)
}

// Convert []byte to []rune and append to row.
func (m *Row) bytes(b []byte) {
	for i := 0; i < len(b); {
		c, size := utf8.DecodeRune(b[i:])
		i += size
		*m = append(*m, c)
	}
}
