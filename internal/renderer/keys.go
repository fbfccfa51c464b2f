package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modal/internal/input/key"
)

// KeyEventFrom converts a tcell key event into the interpreter's key
// event. Ctrl+letter combinations arrive from tcell as dedicated key
// codes; named keys like Tab and Enter share those codes and are
// matched first.
func KeyEventFrom(ev *tcell.EventKey) key.Event {
	mods := key.ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + k - tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods|key.ModCtrl)
	}

	return key.Event{}
}
