package app

// Mode identifies which keymap and input handling are active.
type Mode uint8

const (
	// ModeMessageList is the default mode: chords navigate the list.
	ModeMessageList Mode = iota
	// ModeInsert composes a new message; passthrough keys are text.
	ModeInsert
	// ModeCommand enters a command on the status line.
	ModeCommand
)

// String returns the mode name used in config sections and logs.
func (m Mode) String() string {
	switch m {
	case ModeMessageList:
		return "list"
	case ModeInsert:
		return "insert"
	case ModeCommand:
		return "command"
	default:
		return "unknown"
	}
}

// ModeByName resolves a config section name to a mode.
func ModeByName(name string) (Mode, bool) {
	switch name {
	case "list":
		return ModeMessageList, true
	case "insert":
		return ModeInsert, true
	case "command":
		return ModeCommand, true
	}
	return 0, false
}
