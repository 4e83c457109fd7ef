package app

import "fmt"

// ActionKind enumerates what a key binding can do.
type ActionKind uint8

const (
	// ActionNone is the zero value and does nothing.
	ActionNone ActionKind = iota
	// ActionQuit exits the application.
	ActionQuit
	// ActionSelectFromStart selects the oldest message.
	ActionSelectFromStart
	// ActionSelectFromEnd selects the newest message.
	ActionSelectFromEnd
	// ActionSelectRelative moves the selection by Action.Amount.
	ActionSelectRelative
	// ActionDeleteSelected removes the selected message.
	ActionDeleteSelected
	// ActionClearSelection drops the selection.
	ActionClearSelection
	// ActionEnterInsert switches to insert mode for composing a message.
	ActionEnterInsert
	// ActionEnterCommand switches to command mode.
	ActionEnterCommand
	// ActionLeaveMode returns to the message list.
	ActionLeaveMode
	// ActionSubmit sends the composed message or runs the command.
	ActionSubmit
)

// String returns the action kind name.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionSelectFromStart:
		return "select-from-start"
	case ActionSelectFromEnd:
		return "select-from-end"
	case ActionSelectRelative:
		return "select-relative"
	case ActionDeleteSelected:
		return "delete-selected"
	case ActionClearSelection:
		return "clear-selection"
	case ActionEnterInsert:
		return "enter-insert"
	case ActionEnterCommand:
		return "enter-command"
	case ActionLeaveMode:
		return "leave-mode"
	case ActionSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// Action is the value a key binding resolves to.
type Action struct {
	Kind ActionKind

	// Amount is the signed movement for ActionSelectRelative; positive
	// moves toward newer messages.
	Amount int
}

// String returns the action in the form used by config files and logs.
func (a Action) String() string {
	if a.Kind == ActionSelectRelative {
		return fmt.Sprintf("%s(%+d)", a.Kind, a.Amount)
	}
	return a.Kind.String()
}

// actionNames maps config action names to actions. Relative selection
// is exposed as fixed next/prev steps; arbitrary amounts are not
// configurable.
var actionNames = map[string]Action{
	"quit":            {Kind: ActionQuit},
	"select-first":    {Kind: ActionSelectFromStart},
	"select-last":     {Kind: ActionSelectFromEnd},
	"select-next":     {Kind: ActionSelectRelative, Amount: 1},
	"select-prev":     {Kind: ActionSelectRelative, Amount: -1},
	"delete-selected": {Kind: ActionDeleteSelected},
	"clear-selection": {Kind: ActionClearSelection},
	"compose":         {Kind: ActionEnterInsert},
	"command":         {Kind: ActionEnterCommand},
	"leave-mode":      {Kind: ActionLeaveMode},
	"submit":          {Kind: ActionSubmit},
}

// ActionByName resolves a config action name.
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}
