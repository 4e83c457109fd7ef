package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/carrier-pigeon/pigeon/internal/message"
)

const selectionMarker = "->"

// MessageListView presents a message list with a single selected row.
// Selection tracks a message key rather than a position, so it stays
// on the same message as new traffic arrives above or below it.
type MessageListView struct {
	list     *message.List
	selected message.Key
	offset   int
}

// NewMessageListView creates a view over the given list. The list is
// shared with the owner; the view never inserts.
func NewMessageListView(list *message.List) *MessageListView {
	return &MessageListView{list: list}
}

// Selected returns the selected message.
func (v *MessageListView) Selected() (message.Message, bool) {
	if v.selected.IsZero() {
		return message.Message{}, false
	}
	return v.list.Get(v.selected)
}

// SelectFirst moves the selection to the oldest message.
func (v *MessageListView) SelectFirst() {
	if m, ok := v.list.First(); ok {
		v.selected = m.Key
	}
}

// SelectLast moves the selection to the newest message.
func (v *MessageListView) SelectLast() {
	if m, ok := v.list.Last(); ok {
		v.selected = m.Key
	}
}

// SelectNext moves the selection one message newer. With no current
// selection it selects the oldest message.
func (v *MessageListView) SelectNext() {
	if v.selected.IsZero() {
		v.SelectFirst()
		return
	}
	if m, ok := v.list.Next(v.selected); ok {
		v.selected = m.Key
	}
}

// SelectPrev moves the selection one message older. With no current
// selection it selects the newest message.
func (v *MessageListView) SelectPrev() {
	if v.selected.IsZero() {
		v.SelectLast()
		return
	}
	if m, ok := v.list.Prev(v.selected); ok {
		v.selected = m.Key
	}
}

// ClearSelection drops the selection; the view follows the newest
// message again.
func (v *MessageListView) ClearSelection() {
	v.selected = message.Key{}
}

// DeleteSelected removes the selected message from the list. The
// selection moves to the next newer message, falling back to the next
// older one at the end of the list. It reports whether a message was
// deleted.
func (v *MessageListView) DeleteSelected() bool {
	if v.selected.IsZero() {
		return false
	}
	deleted := v.selected
	if !v.list.Delete(deleted) {
		v.selected = message.Key{}
		return false
	}
	if m, ok := v.list.Next(deleted); ok {
		v.selected = m.Key
	} else if m, ok := v.list.Prev(deleted); ok {
		v.selected = m.Key
	} else {
		v.selected = message.Key{}
	}
	return true
}

// Render draws the list into the given region. With a selection the
// viewport scrolls to keep the selected row visible; without one it
// pins to the newest messages.
func (v *MessageListView) Render(t *Terminal, x, y, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	v.scrollTo(height)

	normal := tcell.StyleDefault
	highlight := tcell.StyleDefault.Reverse(true)

	row := 0
	i := 0
	v.list.Walk(func(m message.Message) bool {
		if i < v.offset {
			i++
			return true
		}
		if row >= height {
			return false
		}
		style := normal
		marker := "  "
		if m.Key.Equals(v.selected) {
			style = highlight
			marker = selectionMarker
		}
		line := fmt.Sprintf("%s %s [%s] %s: %s",
			marker,
			m.Key.Timestamp.Format("15:04:05"),
			m.Room, m.Sender, m.Body)
		// Clip to the region by runes; slicing bytes could split a
		// multibyte character.
		if runes := []rune(line); len(runes) > width {
			line = string(runes[:width])
		}
		t.SetText(x, y+row, style, line)
		row++
		i++
		return true
	})
}

// scrollTo adjusts the viewport offset for the given height.
func (v *MessageListView) scrollTo(height int) {
	n := v.list.Len()
	if n <= height {
		v.offset = 0
		return
	}

	if v.selected.IsZero() {
		v.offset = n - height
		return
	}
	idx := v.list.Index(v.selected)
	if idx < 0 {
		return
	}
	if idx < v.offset {
		v.offset = idx
	} else if idx >= v.offset+height {
		v.offset = idx - height + 1
	}
	if v.offset > n-height {
		v.offset = n - height
	}
}
