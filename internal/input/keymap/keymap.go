package keymap

import (
	"fmt"
	"sort"
	"time"

	"github.com/carrier-pigeon/pigeon/internal/input/key"
)

// DefaultTimeout is how long the resolver waits for an ambiguous
// sequence to grow before flushing it as passthrough.
const DefaultTimeout = 500 * time.Millisecond

// Match classifies a candidate sequence against a keymap.
type Match int

const (
	// MatchNone means no binding equals or extends the sequence.
	MatchNone Match = iota

	// MatchPrefix means at least one binding starts with the sequence
	// but none equals it; more input could complete a chord.
	MatchPrefix

	// MatchExact means a binding's sequence equals the candidate.
	MatchExact
)

// String returns a short name for the match kind.
func (m Match) String() string {
	switch m {
	case MatchNone:
		return "none"
	case MatchPrefix:
		return "prefix"
	case MatchExact:
		return "exact"
	default:
		return fmt.Sprintf("Match(%d)", int(m))
	}
}

type entry[A any] struct {
	seq    key.Sequence
	action A
}

// Keymap maps key sequences to actions of type A. Entries are kept in
// lexicographic sequence order, so all bindings sharing a prefix are
// contiguous and classification is a binary search plus one probe.
//
// A Keymap is built once (per mode, or when configuration changes) and
// treated as immutable while active; it is not safe for concurrent
// mutation.
type Keymap[A any] struct {
	entries []entry[A]

	// Timeout bounds the wait on an ambiguous prefix.
	Timeout time.Duration
}

// New creates an empty keymap with the given ambiguity timeout.
// A zero timeout falls back to DefaultTimeout.
func New[A any](timeout time.Duration) *Keymap[A] {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Keymap[A]{Timeout: timeout}
}

// Bind inserts a binding, keeping entries sorted. Binding the exact
// same sequence twice overwrites the earlier action (last write wins).
// Binding a prefix of an existing sequence, or an extension of one, is
// allowed; the resolver's ambiguity handling exists for that case.
func (m *Keymap[A]) Bind(seq key.Sequence, action A) {
	if len(seq) == 0 {
		return
	}
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].seq.Compare(seq) >= 0
	})
	if i < len(m.entries) && m.entries[i].seq.Equals(seq) {
		m.entries[i].action = action
		return
	}
	m.entries = append(m.entries, entry[A]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = entry[A]{seq: seq.Clone(), action: action}
}

// Lookup classifies a candidate sequence. Because entries are sorted
// lexicographically, every binding starting with seq forms a contiguous
// run beginning at the first entry >= seq; only that first entry needs
// inspecting. An exact match, if present, is necessarily the first
// entry of the run (a prefix sorts before its extensions).
func (m *Keymap[A]) Lookup(seq key.Sequence) (A, Match) {
	var zero A
	if len(seq) == 0 || len(m.entries) == 0 {
		return zero, MatchNone
	}

	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].seq.Compare(seq) >= 0
	})
	if i == len(m.entries) || !m.entries[i].seq.HasPrefix(seq) {
		return zero, MatchNone
	}
	if len(m.entries[i].seq) == len(seq) {
		return m.entries[i].action, MatchExact
	}
	return zero, MatchPrefix
}

// Len returns the number of bindings.
func (m *Keymap[A]) Len() int {
	return len(m.entries)
}

// Walk calls fn for each binding in lexicographic order, stopping early
// if fn returns false. Used for help displays and tests.
func (m *Keymap[A]) Walk(fn func(seq key.Sequence, action A) bool) {
	for _, e := range m.entries {
		if !fn(e.seq, e.action) {
			return
		}
	}
}
