package resolver

import (
	"errors"
	"time"

	"github.com/carrier-pigeon/pigeon/internal/input/key"
	"github.com/carrier-pigeon/pigeon/internal/input/keymap"
)

// ErrClosed reports that the key event stream has ended. It is the
// normal termination signal, not a failure; the owning loop should
// stop calling Next.
var ErrClosed = errors.New("key event stream closed")

// Step is the outcome of one resolver iteration.
//
// Passthrough holds keys that did not and can never resolve to an
// action; the caller forwards them to whatever consumes raw input.
// Action is set when a chord completed. At most one of the two drives
// caller behavior per step, and both may be absent while an ambiguous
// prefix is still waiting for more input.
type Step[A any] struct {
	Passthrough []key.Event
	Action      A
	HasAction   bool
}

// Resolver turns a stream of key events into resolved actions and
// passthrough keys, buffering ambiguous prefixes until they complete a
// chord, become unmatchable, or time out.
//
// The buffer invariant after every step: everything still held is a
// genuine prefix of at least one binding in the keymap last queried,
// so its length never exceeds the longest bound sequence. A Resolver
// is owned by a single goroutine; the channel is the only thing shared
// with the input-reading side.
type Resolver[A any] struct {
	events <-chan key.Event
	buffer key.Sequence
}

// New creates a resolver reading from the given event stream.
func New[A any](events <-chan key.Event) *Resolver[A] {
	return &Resolver[A]{events: events}
}

// Next waits for the next resolvable step under the active keymap,
// which may differ between calls when the surrounding mode changes.
//
// With an empty buffer it blocks until a key arrives or the stream
// closes. With a pending ambiguous prefix it waits at most km.Timeout;
// on timeout the whole pending prefix is flushed as passthrough with
// no action. Stream closure returns ErrClosed.
func (r *Resolver[A]) Next(km *keymap.Keymap[A]) (Step[A], error) {
	if len(r.buffer) == 0 {
		ev, ok := <-r.events
		if !ok {
			return Step[A]{}, ErrClosed
		}
		return r.absorb(ev, km), nil
	}

	timer := time.NewTimer(km.Timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-r.events:
		if !ok {
			return Step[A]{}, ErrClosed
		}
		return r.absorb(ev, km), nil
	case <-timer.C:
		return Step[A]{Passthrough: r.flush()}, nil
	}
}

// absorb appends a new event and classifies successive suffixes of the
// buffer, oldest start first. The first suffix that is an exact match
// or a valid prefix wins: that keeps the longest usable suffix while
// skipping the fewest leading events. Everything before the chosen
// suffix can never combine with newer input, so it is passed through
// immediately rather than held until the timeout.
func (r *Resolver[A]) absorb(ev key.Event, km *keymap.Keymap[A]) Step[A] {
	r.buffer = append(r.buffer, ev)

	for i := 0; i < len(r.buffer); i++ {
		action, match := km.Lookup(r.buffer[i:])
		switch match {
		case keymap.MatchExact:
			step := Step[A]{
				Passthrough: clone(r.buffer[:i]),
				Action:      action,
				HasAction:   true,
			}
			r.buffer = r.buffer[:0]
			return step
		case keymap.MatchPrefix:
			step := Step[A]{Passthrough: clone(r.buffer[:i])}
			r.buffer = append(r.buffer[:0], r.buffer[i:]...)
			return step
		}
	}

	// Not even the newest key alone matches anything: the entire
	// buffer is unmatchable and flushes at once.
	return Step[A]{Passthrough: r.flush()}
}

// Pending returns a copy of the buffered ambiguous prefix, for status
// displays.
func (r *Resolver[A]) Pending() key.Sequence {
	return r.buffer.Clone()
}

// flush empties the buffer, returning its contents as an owned slice.
func (r *Resolver[A]) flush() []key.Event {
	out := clone(r.buffer)
	r.buffer = r.buffer[:0]
	return out
}

// clone copies a buffer slice so callers keep a stable view after the
// buffer is reused.
func clone(events []key.Event) []key.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]key.Event, len(events))
	copy(out, events)
	return out
}
