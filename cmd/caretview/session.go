package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ge-editor/caret/buffer"
	"github.com/ge-editor/caret/keymap"
	"github.com/ge-editor/caret/mark"
	"github.com/ge-editor/caret/pkg_error"
)

// session routes key events to the buffer shown in the view.
//
//	Ctrl-Space       set mark
//	Ctrl-X Ctrl-X    exchange caret and mark
//	Ctrl-X Space     back to the newest mark in this file
//	Alt-P / Alt-N    older / newer mark in the ring, any file
//	Ctrl-X n / p     next / previous buffer
//	Ctrl-X k         close buffer
//	Ctrl-X r         reload from disk
//	Ctrl-X Ctrl-S    save
type session struct {
	bss      *buffer.BufferSets
	encoding string
	keys     *keymap.Map
	marks    *mark.Marks
	ringAt   *mark.Mark // last mark visited with Alt-P / Alt-N
	prefix   bool       // Ctrl-X pressed
	view     *view
}

func newSession(bss *buffer.BufferSets, encoding string, keys *keymap.Map, v *view) *session {
	return &session{
		bss:      bss,
		encoding: encoding,
		keys:     keys,
		marks:    mark.NewMarks(),
		view:     v,
	}
}

// handle returns false when the session ends.
func (s *session) handle(ev *tcell.EventKey) bool {
	v := s.view
	if s.prefix {
		s.prefix = false
		v.message = ""
		return s.handlePrefixed(ev)
	}
	v.message = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlX:
		s.prefix = true
		v.message = "C-x-"
		return true
	case tcell.KeyCtrlSpace:
		s.setMark()
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			switch ev.Rune() {
			case 'p', 'P':
				s.cycleMark(s.marks.Prev)
				return true
			case 'n', 'N':
				s.cycleMark(s.marks.Next)
				return true
			}
		}
	}

	if a, ok := s.keys.Lookup(ev); ok {
		v.meta.Adjust(a, v.file)
	}
	return true
}

func (s *session) handlePrefixed(ev *tcell.EventKey) bool {
	v := s.view
	switch ev.Key() {
	case tcell.KeyCtrlX:
		if !v.meta.SwapCaretAndMark(v.file) {
			v.message = "No mark set in this buffer"
		}
		return true
	case tcell.KeyCtrlS:
		s.save()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			if mk := s.marks.FindLastByPath(v.file.GetPath()); mk != nil {
				s.jump(mk)
			} else {
				v.message = "No mark in this file"
			}
			return true
		case 'n':
			s.cycleBuffer(1)
			return true
		case 'p':
			s.cycleBuffer(-1)
			return true
		case 'k':
			s.closeBuffer()
			return true
		case 'r':
			s.reload()
			return true
		}
	}
	v.message = fmt.Sprintf("C-x %s is undefined", ev.Name())
	return true
}

func (s *session) setMark() {
	v := s.view
	row, _ := v.file.Row(v.meta.Line())
	s.marks.SetMark(v.meta.SetMark(v.file, strings.TrimSuffix(row.String(), "\n")))
	s.ringAt = nil
	v.message = fmt.Sprintf("Mark set (%d in ring)", s.marks.Len())
}

// cycleMark walks the ring with step, starting from the newest mark.
func (s *session) cycleMark(step func(*mark.Mark) *mark.Mark) {
	var mk *mark.Mark
	if s.ringAt == nil {
		mk = s.marks.Last()
	} else {
		mk = step(s.ringAt)
	}
	if mk == nil {
		s.view.message = "No more marks"
		return
	}
	s.ringAt = mk
	s.jump(mk)
}

// jump shows the buffer of mk and moves its caret there.
func (s *session) jump(mk *mark.Mark) {
	err := s.show(mk.FilePath)
	if err != nil && !pkg_error.IsMessage(err) {
		return
	}
	v := s.view
	v.meta.Adjust(mk.Adjustment(v.file), v.file)
	if err == nil && mk.Content != "" {
		v.message = mk.Content
	}
}

func (s *session) cycleBuffer(step int) {
	n := len(*s.bss)
	if n < 2 {
		s.view.message = "Only one buffer"
		return
	}
	i := s.bss.GetIndexByBufferFile(s.view.file)
	next := (*s.bss)[((i+step)%n+n)%n]
	s.show(next.GetPath())
}

func (s *session) closeBuffer() {
	v := s.view
	if len(*s.bss) < 2 {
		v.message = "Cannot close the last buffer"
		return
	}
	i := s.bss.RemoveByBufferFile(v.file)
	next := (*s.bss)[min(i, len(*s.bss)-1)]
	s.show(next.GetPath())
}

// show switches the view to filePath, opening it if needed.
// The current caret is parked first, so showing the same file gets it back.
func (s *session) show(filePath string) error {
	v := s.view
	current := s.bss.BufferSet(v.file) // nil once closed
	if current != nil {
		current.PushMeta(v.meta)
	}
	ff, meta, err := s.bss.GetFileAndMeta(filePath, s.encoding)
	if ff == nil {
		if current != nil {
			v.meta = current.PopMeta()
		}
		v.message = oneLine(err)
		return err
	}
	if ff != v.file {
		v.top, v.left = 0, 0
	}
	v.file, v.meta = ff, meta
	if err != nil {
		v.message = oneLine(err)
	}
	return err
}

// reload reads the file again and pulls its carets back into it.
func (s *session) reload() {
	v := s.view
	bs := s.bss.BufferSet(v.file)
	if err := bs.Load(); err != nil && !pkg_error.IsMessage(err) {
		v.message = oneLine(err)
		return
	}
	bs.Revalidate()
	v.meta.Revalidate(v.file)
	v.message = "Reloaded " + v.file.GetBase()
}

func (s *session) save() {
	v := s.view
	if v.file.IsReadonly() {
		v.message = v.file.GetBase() + " is read only"
		return
	}
	if err := v.file.Save(); err != nil {
		v.message = oneLine(err)
		return
	}
	v.message = "Wrote " + v.file.GetPath()
}

func oneLine(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
