package buffer

import (
	"github.com/ge-editor/caret"
	"github.com/ge-editor/caret/file"
	"github.com/ge-editor/caret/mark"
)

func newMeta() *Meta {
	return &Meta{
		Caret: caret.New(),
		Mark:  nil,
	}
}

// Meta is the per-view state of a file: its caret and mark.
type Meta struct {
	caret.Caret
	Mark *mark.Mark
}

// Adjust moves the caret within ff, the file of the buffer set owning m.
func (m *Meta) Adjust(adjustment caret.Adjustment, ff *file.File) {
	m.Caret.Adjust(adjustment, ff)
}

// Revalidate pulls the caret back into ff after the file changed underneath it.
func (m *Meta) Revalidate(ff *file.File) {
	line, column := caret.Clamp(m.Line(), m.Column(), ff)
	if line != m.Line() || column != m.Column() {
		m.Caret.Adjust(caret.Set(line, column), ff)
	}
}

// SetMark remembers the caret position.
func (m *Meta) SetMark(ff *file.File, content string) *mark.Mark {
	m.Mark = mark.NewMark(ff.GetPath(), m.Caret, content)
	return m.Mark
}

// SwapCaretAndMark jumps to the mark and leaves a mark at the old position.
func (m *Meta) SwapCaretAndMark(ff *file.File) bool {
	if m.Mark == nil {
		return false
	}
	prev := m.Mark
	m.Mark = mark.NewMark(ff.GetPath(), m.Caret, prev.Content)
	m.Caret.Adjust(prev.Adjustment(ff), ff)
	return true
}
