// Package resolver implements the key-sequence resolver: the stateful
// engine that turns a live stream of key events into discrete actions,
// supporting multi-key chords with ambiguity resolved by timeout, and
// surfacing everything that cannot become a chord as passthrough for
// other consumers.
//
// The policy is prefer-longest, skip-fewest: a shorter binding never
// fires and swallows input from a longer match in progress, while input
// that genuinely cannot extend any binding is flushed immediately
// instead of being held until the timeout. Keys are never lost or
// reordered; concatenating the passthrough and consumed slices of all
// steps reproduces the input exactly.
package resolver
