package keymap

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ge-editor/caret"
)

// Map binds keys to caret adjustments.
// Keys other than tcell.KeyRune are matched by key code, runes by rune.
type Map struct {
	keys  map[tcell.Key]caret.Adjustment
	runes map[rune]caret.Adjustment
}

// Default returns the arrow keys and the Emacs motion keys.
func Default() *Map {
	return &Map{
		keys: map[tcell.Key]caret.Adjustment{
			tcell.KeyUp:    caret.LineUp(),
			tcell.KeyCtrlP: caret.LineUp(),
			tcell.KeyDown:  caret.LineDown(),
			tcell.KeyCtrlN: caret.LineDown(),
			tcell.KeyLeft:  caret.CharPrev(),
			tcell.KeyCtrlB: caret.CharPrev(),
			tcell.KeyRight: caret.CharNext(),
			tcell.KeyCtrlF: caret.CharNext(),
		},
		runes: map[rune]caret.Adjustment{},
	}
}

// Vi adds h, j, k and l to the default bindings.
func Vi() *Map {
	m := Default()
	m.BindRune('k', caret.LineUp())
	m.BindRune('j', caret.LineDown())
	m.BindRune('h', caret.CharPrev())
	m.BindRune('l', caret.CharNext())
	return m
}

func (m *Map) Bind(key tcell.Key, adjustment caret.Adjustment) {
	m.keys[key] = adjustment
}

func (m *Map) BindRune(ch rune, adjustment caret.Adjustment) {
	m.runes[ch] = adjustment
}

// Lookup returns the adjustment bound to ev.
func (m *Map) Lookup(ev *tcell.EventKey) (caret.Adjustment, bool) {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return caret.Adjustment{}, false
		}
		a, ok := m.runes[ev.Rune()]
		return a, ok
	}
	a, ok := m.keys[ev.Key()]
	return a, ok
}
