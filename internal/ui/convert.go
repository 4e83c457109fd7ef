package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/carrier-pigeon/pigeon/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// convertKey translates a terminal key event. Events with no
// representation (mouse-adjacent keys, unknown escapes) are dropped.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMods(e.Modifiers())
	k := e.Key()

	// Specials first: several control characters share codes with
	// dedicated keys (Tab is Ctrl-I, Enter is Ctrl-M) and the dedicated
	// key is what the user pressed.
	if mapped, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(mapped, mods), true
	}

	switch {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods), true
	case k == tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods.With(key.ModShift)), true
	case k >= tcell.KeyF1 && k <= tcell.KeyF64:
		return key.NewFuncEvent(uint8(k-tcell.KeyF1)+1, mods), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// Control characters arrive as dedicated key codes; present
		// them as Ctrl plus the letter so <C-x> style bindings match.
		return key.NewRuneEvent(rune('a'+k-tcell.KeyCtrlA), mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
