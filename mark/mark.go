package mark

import (
	"github.com/ge-editor/utils"

	"github.com/ge-editor/caret"
)

// Mark is a remembered caret position in a file
type Mark struct {
	FilePath string
	Line     int
	Column   int
	Content  string // text of the marked line, shown when jumping back
}

func NewMark(filePath string, current caret.Caret, content string) *Mark {
	return &Mark{
		FilePath: filePath,
		Line:     current.Line(),
		Column:   current.Column(),
		Content:  content,
	}
}

// Adjustment moves a caret back to the mark.
// The position is clamped, the buffer may have shrunk since the mark was set.
func (m *Mark) Adjustment(buffer caret.Buffer) caret.Adjustment {
	return caret.Set(caret.Clamp(m.Line, m.Column, buffer))
}

// Marks is the mark ring shared by all buffers, oldest first.
type Marks []*Mark

func NewMarks() *Marks {
	return &Marks{}
}

// SetMark appends a, dropping an older mark at the same position
func (m *Marks) SetMark(a *Mark) {
	m.UnsetMark(a)
	*m = append(*m, a)
}

func (m *Marks) UnsetMark(d *Mark) bool {
	i := m.index(d)
	if i < 0 {
		return false
	}

	*m = append((*m)[:i], (*m)[i+1:]...)
	return true
}

// Last returns the newest mark, nil if the ring is empty
func (m *Marks) Last() *Mark {
	if len(*m) == 0 {
		return nil
	}
	return (*m)[len(*m)-1]
}

// FindLastByPath returns the newest mark in filePath, nil if there is none
func (m *Marks) FindLastByPath(filePath string) *Mark {
	for i := len(*m) - 1; i >= 0; i-- {
		if samePath((*m)[i].FilePath, filePath) {
			return (*m)[i]
		}
	}
	return nil
}

// Prev returns the mark set before d.
// Nil when d is the oldest or no longer in the ring.
func (m *Marks) Prev(d *Mark) *Mark {
	i := m.index(d)
	if i <= 0 {
		return nil
	}
	return (*m)[i-1]
}

// Next returns the mark set after d.
func (m *Marks) Next(d *Mark) *Mark {
	i := m.index(d)
	if i < 0 || i >= len(*m)-1 {
		return nil
	}
	return (*m)[i+1]
}

func (m *Marks) Len() int {
	return len(*m)
}

// return -1 if not found
func (m *Marks) index(d *Mark) int {
	for i := len(*m) - 1; i >= 0; i-- { // newest first
		if d == (*m)[i] || equal(d, (*m)[i]) {
			return i
		}
	}
	return -1
}

func equal(a, b *Mark) bool {
	return a.Line == b.Line && a.Column == b.Column && samePath(a.FilePath, b.FilePath)
}

// Paths of unsaved files do not exist on disk yet
func samePath(a, b string) bool {
	return a == b || utils.SameFile(a, b)
}
