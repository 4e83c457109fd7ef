// Package keymap maps key-event sequences to opaque action values.
//
// A keymap classifies a candidate sequence as an exact match, an
// ambiguous prefix of longer bindings, or no match at all; the
// resolver turns that three-way classification plus a timeout into
// resolved actions and passthrough keys.
package keymap
