package app

import (
	"time"

	"github.com/carrier-pigeon/pigeon/internal/input/keymap"
)

// defaultBindings holds the built-in bindings per mode. Config files
// overlay these; they never replace the whole set.
var defaultBindings = map[Mode][]keymap.Binding[Action]{
	ModeMessageList: {
		{Keys: "q", Action: Action{Kind: ActionQuit}, Description: "quit"},
		{Keys: "j", Action: Action{Kind: ActionSelectRelative, Amount: 1}, Description: "select next message"},
		{Keys: "k", Action: Action{Kind: ActionSelectRelative, Amount: -1}, Description: "select previous message"},
		{Keys: "gg", Action: Action{Kind: ActionSelectFromStart}, Description: "select oldest message"},
		{Keys: "G", Action: Action{Kind: ActionSelectFromEnd}, Description: "select newest message"},
		{Keys: "dd", Action: Action{Kind: ActionDeleteSelected}, Description: "delete selected message"},
		{Keys: "<Esc>", Action: Action{Kind: ActionClearSelection}, Description: "clear selection"},
		{Keys: "i", Action: Action{Kind: ActionEnterInsert}, Description: "compose a message"},
		{Keys: ":", Action: Action{Kind: ActionEnterCommand}, Description: "enter a command"},
	},
	ModeInsert: {
		{Keys: "<Esc>", Action: Action{Kind: ActionLeaveMode}, Description: "abandon the draft"},
		{Keys: "<CR>", Action: Action{Kind: ActionSubmit}, Description: "send the message"},
	},
	ModeCommand: {
		{Keys: "<Esc>", Action: Action{Kind: ActionLeaveMode}, Description: "abandon the command"},
		{Keys: "<CR>", Action: Action{Kind: ActionSubmit}, Description: "run the command"},
	},
}

// DefaultKeymaps compiles the built-in bindings for every mode.
func DefaultKeymaps(timeout time.Duration) map[Mode]*keymap.Keymap[Action] {
	maps := make(map[Mode]*keymap.Keymap[Action], len(defaultBindings))
	for mode, bindings := range defaultBindings {
		maps[mode] = keymap.MustCompile(timeout, bindings)
	}
	return maps
}
