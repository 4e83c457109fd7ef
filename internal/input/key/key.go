package key

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key. Character keys use KeyRune with the
// character stored in Event.Rune; function keys use KeyFunc with the
// function number stored in Event.Fn.
//
// The declaration order is the comparison order for key sequences:
// character keys sort before special keys, function keys after them,
// and KeyUnknown last.
type Key uint16

const (
	// KeyRune is a character key (letters, digits, punctuation).
	KeyRune Key = iota

	// Special keys, in comparison order.
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyInsert
	KeyEscape

	// KeyFunc is a function key F0-F255.
	KeyFunc

	// KeyUnknown is the catch-all for key codes this model does not cover.
	KeyUnknown
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyEnter:
		return "Enter"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyTab:
		return "Tab"
	case KeyInsert:
		return "Insert"
	case KeyEscape:
		return "Escape"
	case KeyFunc:
		return "F"
	case KeyUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Key(%d)", uint16(k))
	}
}

// IsSpecial returns true for non-character, non-function keys.
func (k Key) IsSpecial() bool {
	return k > KeyRune && k < KeyFunc
}

// keyNameMap maps notation names (lowercase) to Key values.
// These are the names accepted inside <...> binding tokens.
var keyNameMap = map[string]Key{
	"bs":       KeyBackspace,
	"del":      KeyDelete,
	"cr":       KeyEnter,
	"left":     KeyLeft,
	"right":    KeyRight,
	"up":       KeyUp,
	"down":     KeyDown,
	"home":     KeyHome,
	"end":      KeyEnd,
	"pageup":   KeyPageUp,
	"pagedown": KeyPageDown,
	"tab":      KeyTab,
	"ins":      KeyInsert,
	"esc":      KeyEscape,
}

// keyNotation is the inverse of keyNameMap with canonical casing,
// used when formatting events back into notation.
var keyNotation = map[Key]string{
	KeyBackspace: "BS",
	KeyDelete:    "Del",
	KeyEnter:     "CR",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyTab:       "Tab",
	KeyInsert:    "Ins",
	KeyEscape:    "Esc",
}

// KeyFromName returns the Key for a notation name (case-insensitive).
// Returns KeyUnknown if the name is not recognized.
func KeyFromName(name string) Key {
	if k, ok := keyNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KeyUnknown
}
