// bufferSet
// - Holds a file and the carets navigating it
//   These are kept together as a set.

package buffer

import "github.com/ge-editor/caret/file"

func newBufferSet(filePath string) *bufferSet {
	file := file.NewFile(filePath)
	return &bufferSet{
		File:  file,
		metas: make([]*Meta, 0, 2),
	}
}

type bufferSet struct {
	*file.File
	metas []*Meta
}

func (bs *bufferSet) PushMeta(m *Meta) {
	bs.metas = append(bs.metas, m)
}

func (bs *bufferSet) PopMeta() *Meta {
	if len(bs.metas) > 0 {
		lastMeta := bs.metas[len(bs.metas)-1]
		bs.metas = bs.metas[:len(bs.metas)-1]
		lastMeta.Revalidate(bs.File)
		return lastMeta
	}
	return newMeta()
}

// Revalidate clamps every parked caret to the current file contents.
func (bs *bufferSet) Revalidate() {
	for _, m := range bs.metas {
		m.Revalidate(bs.File)
	}
}
