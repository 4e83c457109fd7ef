// Package ui owns the terminal: screen lifecycle, the input polling
// loop that turns raw terminal events into key events, and the message
// list view.
package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/carrier-pigeon/pigeon/internal/input/key"
	"github.com/carrier-pigeon/pigeon/internal/input/pipe"
)

// Resize reports a new terminal size.
type Resize struct {
	Width  int
	Height int
}

// Terminal wraps a tcell screen. Run polls the screen on the calling
// goroutine and fans events out to two channels: key events on Keys,
// everything else on Resizes. The key channel is unbounded so the
// polling loop never stalls behind a busy consumer and no key is
// dropped.
type Terminal struct {
	screen tcell.Screen

	keysIn  chan<- key.Event
	keysOut <-chan key.Event
	resizes chan Resize

	mu sync.Mutex
}

// NewTerminal creates a terminal on the real screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWith(screen), nil
}

// NewTerminalWith creates a terminal on the given screen. Tests pass a
// tcell simulation screen.
func NewTerminalWith(screen tcell.Screen) *Terminal {
	in, out := pipe.Unbounded[key.Event]()
	return &Terminal{
		screen:  screen,
		keysIn:  in,
		keysOut: out,
		resizes: make(chan Resize, 1),
	}
}

// Init puts the screen into its raw interactive state.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Fini restores the terminal. It also unblocks a goroutine sitting in
// Run, which then closes the key channel.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Keys returns the key event stream. It closes when Run returns.
func (t *Terminal) Keys() <-chan key.Event { return t.keysOut }

// Resizes returns the resize notification stream. Only the most
// recent pending resize is kept.
func (t *Terminal) Resizes() <-chan Resize { return t.resizes }

// Run polls terminal events until the screen is finalized. It blocks
// and is meant to be run on its own goroutine.
func (t *Terminal) Run() {
	defer close(t.keysIn)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			if ke, ok := convertKey(e); ok {
				t.keysIn <- ke
			}
		case *tcell.EventResize:
			w, h := e.Size()
			// Drop a stale pending resize; only the latest size matters.
			select {
			case <-t.resizes:
			default:
			}
			t.resizes <- Resize{Width: w, Height: h}
		}
	}
}

// Size returns the current screen dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// Clear erases the back buffer.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

// Show flushes the back buffer to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// SetText writes a string starting at the given cell, clipping at the
// screen edge.
func (t *Terminal) SetText(x, y int, style tcell.Style, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	width, height := t.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, r := range text {
		if x >= width {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
