package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ge-editor/caret"
	"github.com/ge-editor/caret/keymap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestSession(t *testing.T, paths ...string) (*session, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(200, 5)
	return open(s, paths, "UTF-8", keymap.Default()), s
}

func ctrl(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModCtrl)
}

func key(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func alt(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModAlt)
}

func (ss *session) send(t *testing.T, evs ...*tcell.EventKey) {
	t.Helper()
	for _, ev := range evs {
		require.True(t, ss.handle(ev), ev.Name())
		ss.view.draw()
	}
}

func (ss *session) at(line, column int) {
	ss.view.meta.Adjust(caret.Set(line, column), ss.view.file)
}

func assertCaret(t *testing.T, ss *session, line, column int) {
	t.Helper()
	assert.Equal(t, line, ss.view.meta.Line(), "line")
	assert.Equal(t, column, ss.view.meta.Column(), "column")
}

func TestOpenReportsFilesNotOpened(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "hokey\npokey")
	notDir := filepath.Join(a, "child")

	ss, s := newTestSession(t, notDir, a)
	require.Len(t, *ss.bss, 1)
	assert.Equal(t, a, ss.view.file.GetPath())
	assert.Contains(t, ss.view.message, "child")

	ss.view.draw()
	assert.Contains(t, screenRow(s, 4), "child")

	// cleared by the next key
	ss.send(t, ctrl(tcell.KeyCtrlN))
	assert.Empty(t, ss.view.message)
	assertCaret(t, ss, 1, 0)
}

func TestSessionExchangeCaretAndMark(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.txt", "hokey\npokey\nshake it all about")
	ss, _ := newTestSession(t, a)

	ss.send(t, ctrl(tcell.KeyCtrlX), ctrl(tcell.KeyCtrlX))
	assert.Equal(t, "No mark set in this buffer", ss.view.message)

	ss.at(0, 2)
	ss.send(t, ctrl(tcell.KeyCtrlSpace))
	assert.Equal(t, "Mark set (1 in ring)", ss.view.message)
	assert.Equal(t, 1, ss.marks.Len())
	assert.Equal(t, "hokey", ss.marks.Last().Content)

	ss.at(2, 6)
	ss.send(t, ctrl(tcell.KeyCtrlX), ctrl(tcell.KeyCtrlX))
	assertCaret(t, ss, 0, 2)
	assert.Equal(t, 2, ss.view.meta.Mark.Line)
	assert.Equal(t, 6, ss.view.meta.Mark.Column)

	ss.send(t, ctrl(tcell.KeyCtrlX), ctrl(tcell.KeyCtrlX))
	assertCaret(t, ss, 2, 6)
}

func TestSessionExchangeClampsMark(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.txt", "hokey\npokey\nshake it all about")
	ss, _ := newTestSession(t, a)

	ss.at(2, 15)
	ss.send(t, ctrl(tcell.KeyCtrlSpace))
	require.NoError(t, ss.bss.BufferSet(ss.view.file).Read(strings.NewReader("in,\nout")))
	ss.at(0, 0)

	ss.send(t, ctrl(tcell.KeyCtrlX), ctrl(tcell.KeyCtrlX))
	assertCaret(t, ss, 1, 3)
}

func TestSessionSwitchBuffers(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one\ntwo\nthree")
	b := writeFile(t, dir, "b.txt", "alpha")
	ss, _ := newTestSession(t, a, b)
	require.Len(t, *ss.bss, 2)

	ss.at(2, 4)
	ss.send(t, ctrl(tcell.KeyCtrlX), key('n'))
	assert.Equal(t, b, ss.view.file.GetPath())
	assertCaret(t, ss, 0, 0)
	ss.at(0, 3)

	// a shrinks while its caret is parked
	fileA := (*ss.bss)[0]
	require.NoError(t, fileA.Read(strings.NewReader("x")))

	ss.send(t, ctrl(tcell.KeyCtrlX), key('p'))
	assert.Equal(t, a, ss.view.file.GetPath())
	assertCaret(t, ss, 0, 1)

	ss.send(t, ctrl(tcell.KeyCtrlX), key('n'))
	assertCaret(t, ss, 0, 3)
	ss.send(t, ctrl(tcell.KeyCtrlX), key('n'))
	assert.Equal(t, a, ss.view.file.GetPath(), "wraps around")
}

func TestSessionMarkRing(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one\ntwo\nthree")
	b := writeFile(t, dir, "b.txt", "alpha\nbeta")
	ss, _ := newTestSession(t, a, b)

	ss.send(t, alt('p'))
	assert.Equal(t, "No more marks", ss.view.message)

	ss.at(1, 1)
	ss.send(t, ctrl(tcell.KeyCtrlSpace))
	ss.send(t, ctrl(tcell.KeyCtrlX), key('n'))
	ss.at(1, 3)
	ss.send(t, ctrl(tcell.KeyCtrlSpace))
	ss.at(0, 0)

	ss.send(t, alt('p'))
	assert.Equal(t, b, ss.view.file.GetPath())
	assertCaret(t, ss, 1, 3)

	ss.send(t, alt('p'))
	assert.Equal(t, a, ss.view.file.GetPath())
	assertCaret(t, ss, 1, 1)
	assert.Equal(t, "two", ss.view.message)

	ss.send(t, alt('p'))
	assert.Equal(t, "No more marks", ss.view.message)

	ss.send(t, alt('n'))
	assert.Equal(t, b, ss.view.file.GetPath())
	assertCaret(t, ss, 1, 3)

	// back to the mark of this file
	ss.at(0, 2)
	ss.send(t, ctrl(tcell.KeyCtrlX), key(' '))
	assertCaret(t, ss, 1, 3)
}

func TestSessionCloseBuffer(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one\ntwo")
	b := writeFile(t, dir, "b.txt", "alpha")
	ss, _ := newTestSession(t, a, b)

	ss.at(1, 2)
	ss.send(t, ctrl(tcell.KeyCtrlSpace))
	ss.send(t, ctrl(tcell.KeyCtrlX), key('k'))
	require.Len(t, *ss.bss, 1)
	assert.Equal(t, b, ss.view.file.GetPath())

	ss.send(t, ctrl(tcell.KeyCtrlX), key('k'))
	assert.Equal(t, "Cannot close the last buffer", ss.view.message)
	require.Len(t, *ss.bss, 1)

	// the mark reopens the closed file
	ss.send(t, alt('p'))
	require.Len(t, *ss.bss, 2)
	assert.Equal(t, a, ss.view.file.GetPath())
	assertCaret(t, ss, 1, 2)
	assert.Contains(t, ss.view.message, "(Loaded)")
}

func TestSessionReload(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.txt", "one\ntwo\nthree")
	ss, _ := newTestSession(t, a)

	ss.at(2, 4)
	require.NoError(t, os.WriteFile(a, []byte("x"), 0644))
	ss.send(t, ctrl(tcell.KeyCtrlX), key('r'))
	assert.Equal(t, "Reloaded a.txt", ss.view.message)
	assert.Equal(t, 1, ss.view.file.NumLines())
	assertCaret(t, ss, 0, 1)

	require.NoError(t, os.Remove(a))
	ss.send(t, ctrl(tcell.KeyCtrlX), key('r'))
	assert.Contains(t, ss.view.message, "a.txt")
	assert.Equal(t, 1, ss.view.file.NumLines(), "rows kept")
}

func TestSessionSave(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.txt", "one\r\ntwo\r\n")
	ss, _ := newTestSession(t, a)
	require.NoError(t, os.Remove(a))

	ss.view.file.SetReadonly(true)
	ss.send(t, ctrl(tcell.KeyCtrlX), ctrl(tcell.KeyCtrlS))
	assert.Equal(t, "a.txt is read only", ss.view.message)
	assert.NoFileExists(t, a)

	ss.view.file.SetReadonly(false)
	ss.send(t, ctrl(tcell.KeyCtrlX), ctrl(tcell.KeyCtrlS))
	assert.Equal(t, "Wrote "+a, ss.view.message)
	b, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, "one\r\ntwo\r\n", string(b))
}

func TestSessionKeys(t *testing.T) {
	ss, _ := newTestSession(t)

	ss.send(t, ctrl(tcell.KeyCtrlX))
	assert.True(t, ss.prefix)
	ss.send(t, key('z'))
	assert.False(t, ss.prefix)
	assert.Contains(t, ss.view.message, "is undefined")

	ss.send(t, ctrl(tcell.KeyCtrlX), key('n'))
	assert.Equal(t, "Only one buffer", ss.view.message)

	assert.False(t, ss.handle(ctrl(tcell.KeyCtrlQ)))
	assert.False(t, ss.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}
