package key

import "strings"

// Sequence is an ordered series of key events, such as a multi-key
// chord ("gg", "dd"). Sequences compare lexicographically under the
// Event total order, which keeps all sequences sharing a common prefix
// contiguous in sorted order.
type Sequence []Event

// Compare orders sequences lexicographically element by element, with
// a shorter sequence sorting before any longer sequence it prefixes.
func (s Sequence) Compare(other Sequence) int {
	n := min(len(s), len(other))
	for i := 0; i < n; i++ {
		if c := s[i].Compare(other[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(s) < len(other):
		return -1
	case len(s) > len(other):
		return 1
	default:
		return 0
	}
}

// Equals returns true if both sequences contain the same events.
func (s Sequence) Equals(other Sequence) bool {
	return s.Compare(other) == 0
}

// HasPrefix returns true if s starts with the given prefix.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, e := range prefix {
		if !e.Equals(s[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// String returns the sequence in binding notation, tokens concatenated
// with no delimiter ("gg", "<S-G>", "d<C-x>").
func (s Sequence) String() string {
	var sb strings.Builder
	for _, e := range s {
		sb.WriteString(e.String())
	}
	return sb.String()
}
