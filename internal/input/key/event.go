package key

import (
	"cmp"
	"fmt"
	"unicode"
)

// Event represents a single key press: a key plus a modifier set.
// It is an immutable value type with a total order defined by Compare.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Fn is the function key number for KeyFunc events.
	Fn uint8

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
// Uppercase letters carry an implicit Shift, matching what terminals
// report for shifted character keys.
func NewRuneEvent(r rune, mods Modifier) Event {
	if unicode.IsUpper(r) {
		mods = mods.With(ModShift)
	}
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// NewFuncEvent creates a key event for function key n.
func NewFuncEvent(n uint8, mods Modifier) Event {
	return Event{Key: KeyFunc, Fn: n, Modifiers: mods}
}

// Compare defines the total order over events: primary on the key's
// declaration order (with characters compared by code point and
// function keys by number), secondary on the modifier bit pattern.
// It returns -1, 0, or +1.
func (e Event) Compare(other Event) int {
	if c := cmp.Compare(e.Key, other.Key); c != 0 {
		return c
	}
	switch e.Key {
	case KeyRune:
		if c := cmp.Compare(e.Rune, other.Rune); c != 0 {
			return c
		}
	case KeyFunc:
		if c := cmp.Compare(e.Fn, other.Fn); c != 0 {
			return c
		}
	}
	return cmp.Compare(e.Modifiers, other.Modifiers)
}

// Equals returns true if two events compare equal. Equality is defined
// by the comparator, not by structural equality of all fields: a Rune
// value on a non-character event does not participate.
func (e Event) Equals(other Event) bool {
	return e.Compare(other) == 0
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// String returns the event in binding notation: bare characters as
// themselves, everything else bracketed ("g", "<S-G>", "<C-Left>", "<F5>").
func (e Event) String() string {
	mods := e.Modifiers
	if e.IsRune() && unicode.IsUpper(e.Rune) {
		// The implicit Shift is already visible in the character.
		mods = mods.Without(ModShift)
	}

	var name string
	switch {
	case e.Key == KeyRune:
		name = string(e.Rune)
	case e.Key == KeyFunc:
		name = fmt.Sprintf("F%d", e.Fn)
	default:
		if n, ok := keyNotation[e.Key]; ok {
			name = n
		} else {
			name = e.Key.String()
		}
	}

	if mods.IsEmpty() {
		if e.Key == KeyRune {
			return name
		}
		return "<" + name + ">"
	}
	return "<" + mods.String() + "-" + name + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Fn: %d, Modifiers: %q}",
		e.Key.String(), e.Rune, e.Fn, e.Modifiers.String())
}
