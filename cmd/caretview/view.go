package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ge-editor/caret"
	"github.com/ge-editor/caret/buffer"
	"github.com/ge-editor/caret/file"
	"github.com/ge-editor/caret/vline"
)

type view struct {
	screen tcell.Screen
	file   *file.File
	meta   *buffer.Meta
	top    int // first row on screen
	left   int // first screen column on screen

	message string // shown in the mode line until the next key
}

func (v *view) draw() {
	s := v.screen
	s.Clear()
	width, height := s.Size()
	rows := max(1, height-1) // without mode line

	line := v.meta.Line()
	if line < v.top {
		v.top = line
	} else if line >= v.top+rows {
		v.top = line - rows + 1
	}

	cx := caret.BufferToScreenColumn(line, v.meta.Column(), v.file)
	cw := 1 // cells under the cursor
	if row, ok := v.file.Row(line); ok && v.meta.Column() < len(row) {
		cw = max(1, vline.CellWidth(row[v.meta.Column()], false))
	}
	if cx < v.left {
		v.left = cx
	} else if cx+cw > v.left+width {
		v.left = cx + cw - width
	}

	for y := 0; y < rows && v.top+y < v.file.NumLines(); y++ {
		row, _ := v.file.Row(v.top + y)
		x := -v.left
		for _, ch := range row {
			w := vline.CellWidth(ch, false)
			if w == 0 {
				continue
			}
			if x+w > width {
				break
			}
			if x >= 0 { // a wide char cut by the left edge is not drawn
				s.SetContent(x, y, ch, nil, tcell.StyleDefault)
			}
			x += w
		}
	}

	s.ShowCursor(cx-v.left, line-v.top)
	v.drawModeline(height-1, width)
	s.Show()
}

func (v *view) drawModeline(y, width int) {
	style := tcell.StyleDefault.Reverse(true)
	status := fmt.Sprintf(" %s  %d:%d  %s %s", v.file.GetBase(), v.meta.Line()+1, v.meta.Column()+1, v.file.GetEncoding(), v.file.GetLinefeed())
	if saved, ok := v.meta.SavedColumn(); ok {
		status += fmt.Sprintf("  (col %d)", saved+1)
	}
	if v.message != "" {
		status += "  " + v.message
	}

	s := v.screen
	x := 0
	for _, ch := range status {
		if x >= width {
			return
		}
		s.SetContent(x, y, ch, nil, style)
		x += max(1, vline.CellWidth(ch, false))
	}
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}
