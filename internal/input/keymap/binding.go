package keymap

import (
	"fmt"
	"time"

	"github.com/carrier-pigeon/pigeon/internal/input/key"
)

// Binding pairs a binding string with an action. The string uses the
// key-notation grammar ("gg", "<S-G>", "dd"); see the key package.
type Binding[A any] struct {
	// Keys is the key sequence that triggers this binding.
	Keys string

	// Action is the value handed to the caller when the sequence
	// resolves.
	Action A

	// Description documents the binding for help displays.
	Description string
}

// Compile parses a set of bindings into a keymap. The first malformed
// binding string aborts compilation with an error naming the binding,
// so user-supplied bindings fail loudly but recoverably.
func Compile[A any](timeout time.Duration, bindings []Binding[A]) (*Keymap[A], error) {
	m := New[A](timeout)
	for _, b := range bindings {
		seq, err := key.ParseSequence(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Keys, err)
		}
		m.Bind(seq, b.Action)
	}
	return m, nil
}

// MustCompile compiles built-in bindings and panics on error. Use only
// for literal constants validated at startup.
func MustCompile[A any](timeout time.Duration, bindings []Binding[A]) *Keymap[A] {
	m, err := Compile(timeout, bindings)
	if err != nil {
		panic(err.Error())
	}
	return m
}
