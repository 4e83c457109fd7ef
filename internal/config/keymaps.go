package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/carrier-pigeon/pigeon/internal/app"
	"github.com/carrier-pigeon/pigeon/internal/input/key"
	"github.com/carrier-pigeon/pigeon/internal/input/keymap"
)

var (
	// ErrUnknownMode reports a [keymaps.<mode>] section for a mode that
	// does not exist.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrUnknownAction reports a binding to an action name that does
	// not exist.
	ErrUnknownAction = errors.New("unknown action")
)

// BindingError describes one rejected binding. The surrounding load
// continues; the caller decides whether to surface these.
type BindingError struct {
	Mode string
	Keys string
	Err  error
}

func (e BindingError) Error() string {
	return fmt.Sprintf("keymaps.%s: %q: %v", e.Mode, e.Keys, e.Err)
}

func (e BindingError) Unwrap() error { return e.Err }

// BuildKeymaps compiles the configured keymaps: the built-in defaults
// with the config's bindings overlaid on top. Rejected bindings come
// back as BindingErrors alongside the usable result.
func BuildKeymaps(cfg Config) (map[app.Mode]*keymap.Keymap[app.Action], []BindingError) {
	maps := app.DefaultKeymaps(cfg.Timeout())
	var bad []BindingError

	for _, modeName := range sortedKeys(cfg.Keymaps) {
		bindings := cfg.Keymaps[modeName]
		mode, ok := app.ModeByName(modeName)
		if !ok {
			bad = append(bad, BindingError{Mode: modeName, Err: ErrUnknownMode})
			continue
		}
		km := maps[mode]
		for _, keys := range sortedKeys(bindings) {
			actionName := bindings[keys]
			seq, err := key.ParseSequence(keys)
			if err != nil {
				bad = append(bad, BindingError{Mode: modeName, Keys: keys, Err: err})
				continue
			}
			action, ok := app.ActionByName(actionName)
			if !ok {
				bad = append(bad, BindingError{
					Mode: modeName,
					Keys: keys,
					Err:  fmt.Errorf("%w: %q", ErrUnknownAction, actionName),
				})
				continue
			}
			km.Bind(seq, action)
		}
	}
	return maps, bad
}

// sortedKeys makes overlay application and error reporting
// deterministic; TOML table iteration order is not.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
