package app

import "errors"

// ErrQuit signals a normal, user-requested exit. The event loop
// returns it internally and Run converts it to a nil error.
var ErrQuit = errors.New("quit requested")
