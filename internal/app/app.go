// Package app wires the terminal, the key-sequence resolver, the
// message feed, and the message list into the running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/carrier-pigeon/pigeon/internal/input/key"
	"github.com/carrier-pigeon/pigeon/internal/input/keymap"
	"github.com/carrier-pigeon/pigeon/internal/input/resolver"
	"github.com/carrier-pigeon/pigeon/internal/message"
	"github.com/carrier-pigeon/pigeon/internal/ui"
)

// defaultRoom is where composed messages go.
const defaultRoom = message.Room("general")

// App is the application: one terminal, one message list, one mode at
// a time. All state is owned by the event loop goroutine; the resolver
// goroutine only reads the active keymap, synchronized through the
// step/ack handshake.
type App struct {
	term   *ui.Terminal
	list   *message.List
	view   *ui.MessageListView
	logger *Logger

	messages <-chan message.Message
	reloads  <-chan map[Mode]*keymap.Keymap[Action]

	mode    Mode
	keymaps map[Mode]*keymap.Keymap[Action]

	activeMu sync.Mutex
	active   *keymap.Keymap[Action]

	self   message.User
	input  []rune
	status string
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger.
func WithLogger(l *Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithKeymaps replaces the built-in keymaps.
func WithKeymaps(maps map[Mode]*keymap.Keymap[Action]) Option {
	return func(a *App) { a.keymaps = maps }
}

// WithMessages attaches an incoming message stream.
func WithMessages(ch <-chan message.Message) Option {
	return func(a *App) { a.messages = ch }
}

// WithReloads attaches a keymap reload stream; each value replaces the
// active keymaps, taking effect from the next resolver step.
func WithReloads(ch <-chan map[Mode]*keymap.Keymap[Action]) Option {
	return func(a *App) { a.reloads = ch }
}

// WithUser sets the name composed messages are sent as.
func WithUser(u message.User) Option {
	return func(a *App) { a.self = u }
}

// New creates an App on the given terminal.
func New(term *ui.Terminal, opts ...Option) *App {
	list := &message.List{}
	a := &App{
		term:   term,
		list:   list,
		view:   ui.NewMessageListView(list),
		logger: NullLogger,
		mode:   ModeMessageList,
		self:   "you",
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.keymaps == nil {
		a.keymaps = DefaultKeymaps(0)
	}
	a.setActiveKeymap()
	return a
}

type stepMsg struct {
	step resolver.Step[Action]
	err  error
}

// Run drives the event loop until the user quits, the input stream
// closes, or the context is canceled. A user-requested quit returns
// nil.
func (a *App) Run(ctx context.Context) error {
	res := resolver.New[Action](a.term.Keys())
	steps := make(chan stepMsg)
	acks := make(chan struct{})
	go a.resolveLoop(ctx, res, steps, acks)

	a.logger.Info("event loop started")
	a.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case m, ok := <-a.messages:
			if !ok {
				a.messages = nil
				continue
			}
			a.list.Insert(m)
			a.render()

		case <-a.term.Resizes():
			a.render()

		case maps, ok := <-a.reloads:
			if !ok {
				a.reloads = nil
				continue
			}
			a.keymaps = maps
			a.setActiveKeymap()
			a.logger.Info("keymaps reloaded")
			a.render()

		case s := <-steps:
			if s.err != nil {
				if errors.Is(s.err, resolver.ErrClosed) {
					a.logger.Info("input stream closed")
					return nil
				}
				return s.err
			}
			err := a.handleStep(s.step)
			a.setActiveKeymap()
			select {
			case acks <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			if errors.Is(err, ErrQuit) {
				a.logger.Info("quit")
				return nil
			}
			if err != nil {
				return err
			}
			a.render()
		}
	}
}

// resolveLoop runs the blocking resolver on its own goroutine. The
// unbuffered step channel plus the ack means step N+1 cannot begin
// resolving until the event loop has fully handled step N, so mode
// changes always apply to the following keystroke.
func (a *App) resolveLoop(ctx context.Context, res *resolver.Resolver[Action], steps chan<- stepMsg, acks <-chan struct{}) {
	for {
		step, err := res.Next(a.activeKeymap())
		select {
		case steps <- stepMsg{step: step, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
		select {
		case <-acks:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) activeKeymap() *keymap.Keymap[Action] {
	a.activeMu.Lock()
	defer a.activeMu.Unlock()
	return a.active
}

func (a *App) setActiveKeymap() {
	a.activeMu.Lock()
	defer a.activeMu.Unlock()
	a.active = a.keymaps[a.mode]
	if a.active == nil {
		a.active = keymap.New[Action](0)
	}
}

// handleStep applies one resolver step: passthrough keys first, then
// the resolved action, preserving the order the keys were typed in.
func (a *App) handleStep(step resolver.Step[Action]) error {
	for _, ev := range step.Passthrough {
		a.handlePassthrough(ev)
	}
	if step.HasAction {
		a.logger.Debug("action %s in mode %s", step.Action, a.mode)
		return a.handleAction(step.Action)
	}
	return nil
}

// handlePassthrough consumes a key that resolved to no chord. In the
// text modes it edits the draft; in the list it is simply dropped.
func (a *App) handlePassthrough(ev key.Event) {
	if a.mode == ModeMessageList {
		a.logger.Debug("unbound key %s", ev)
		return
	}
	switch {
	case ev.IsRune():
		a.input = append(a.input, ev.Rune)
	case ev.Key == key.KeyBackspace:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	}
}

func (a *App) handleAction(act Action) error {
	switch act.Kind {
	case ActionQuit:
		return ErrQuit
	case ActionSelectFromStart:
		a.view.SelectFirst()
	case ActionSelectFromEnd:
		a.view.SelectLast()
	case ActionSelectRelative:
		a.moveSelection(act.Amount)
	case ActionDeleteSelected:
		if !a.view.DeleteSelected() {
			a.status = "nothing selected"
		}
	case ActionClearSelection:
		a.view.ClearSelection()
	case ActionEnterInsert:
		a.enterMode(ModeInsert)
	case ActionEnterCommand:
		a.enterMode(ModeCommand)
	case ActionLeaveMode:
		a.leaveMode()
	case ActionSubmit:
		return a.submit()
	}
	return nil
}

func (a *App) moveSelection(amount int) {
	for ; amount > 0; amount-- {
		a.view.SelectNext()
	}
	for ; amount < 0; amount++ {
		a.view.SelectPrev()
	}
}

func (a *App) enterMode(m Mode) {
	a.mode = m
	a.input = a.input[:0]
	a.status = ""
}

func (a *App) leaveMode() {
	a.mode = ModeMessageList
	a.input = a.input[:0]
}

// submit finishes the current text mode: insert sends the draft as a
// message, command runs the typed command.
func (a *App) submit() error {
	text := strings.TrimSpace(string(a.input))
	mode := a.mode
	a.leaveMode()

	switch mode {
	case ModeInsert:
		if text == "" {
			return nil
		}
		a.list.Insert(message.New(defaultRoom, a.self, text))
	case ModeCommand:
		return a.runCommand(text)
	}
	return nil
}

func (a *App) runCommand(cmd string) error {
	switch cmd {
	case "":
		return nil
	case "q", "quit":
		return ErrQuit
	default:
		a.status = fmt.Sprintf("unknown command: %s", cmd)
		a.logger.Warn("unknown command %q", cmd)
	}
	return nil
}

// render redraws the whole screen: the message list above a one-line
// status bar.
func (a *App) render() {
	w, h := a.term.Size()
	if w <= 0 || h <= 0 {
		return
	}
	a.term.Clear()
	a.view.Render(a.term, 0, 0, w, h-1)
	a.term.SetText(0, h-1, tcell.StyleDefault.Bold(true), a.statusLine())
	a.term.Show()
}

func (a *App) statusLine() string {
	switch a.mode {
	case ModeInsert:
		return "> " + string(a.input)
	case ModeCommand:
		return ":" + string(a.input)
	}
	if a.status != "" {
		return a.status
	}
	return fmt.Sprintf("[%s] %d messages", a.mode, a.list.Len())
}
