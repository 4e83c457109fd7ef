// Package key defines the canonical key event model: a key plus
// modifier set with a total order, sequences of events compared
// lexicographically, and the binding-notation parser that turns
// strings like "gg" or "<C-S-Left>" into event sequences.
//
// The model is independent of any terminal-input library; converting
// raw terminal events into key.Event values is the terminal backend's
// job.
package key
