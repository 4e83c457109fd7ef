package message

import "sort"

// List is an ordered message store. Messages are kept sorted by Key,
// so iteration order is arrival-time order regardless of insertion
// order, and neighbor queries are cheap. The zero value is ready to
// use. A List is not safe for concurrent use; the event loop owns it.
type List struct {
	messages []Message
}

// Len returns the number of stored messages.
func (l *List) Len() int { return len(l.messages) }

// Insert adds a message in key order. Inserting a message whose key is
// already present replaces the stored message.
func (l *List) Insert(m Message) {
	i := l.search(m.Key)
	if i < len(l.messages) && l.messages[i].Key.Equals(m.Key) {
		l.messages[i] = m
		return
	}
	l.messages = append(l.messages, Message{})
	copy(l.messages[i+1:], l.messages[i:])
	l.messages[i] = m
}

// Delete removes the message with the given key. It reports whether a
// message was removed.
func (l *List) Delete(k Key) bool {
	i := l.search(k)
	if i >= len(l.messages) || !l.messages[i].Key.Equals(k) {
		return false
	}
	l.messages = append(l.messages[:i], l.messages[i+1:]...)
	return true
}

// Get returns the message with the given key.
func (l *List) Get(k Key) (Message, bool) {
	i := l.search(k)
	if i >= len(l.messages) || !l.messages[i].Key.Equals(k) {
		return Message{}, false
	}
	return l.messages[i], true
}

// At returns the i-th message in key order.
func (l *List) At(i int) (Message, bool) {
	if i < 0 || i >= len(l.messages) {
		return Message{}, false
	}
	return l.messages[i], true
}

// Index returns the position of the given key in key order, or -1 if
// no message has that key.
func (l *List) Index(k Key) int {
	i := l.search(k)
	if i >= len(l.messages) || !l.messages[i].Key.Equals(k) {
		return -1
	}
	return i
}

// First returns the oldest message.
func (l *List) First() (Message, bool) {
	return l.At(0)
}

// Last returns the newest message.
func (l *List) Last() (Message, bool) {
	return l.At(len(l.messages) - 1)
}

// Next returns the message immediately after the given key. The key
// does not need to be present; the successor is whatever follows it in
// key order.
func (l *List) Next(k Key) (Message, bool) {
	i := l.search(k)
	if i < len(l.messages) && l.messages[i].Key.Equals(k) {
		i++
	}
	return l.At(i)
}

// Prev returns the message immediately before the given key.
func (l *List) Prev(k Key) (Message, bool) {
	return l.At(l.search(k) - 1)
}

// Walk visits messages in key order until fn returns false.
func (l *List) Walk(fn func(Message) bool) {
	for _, m := range l.messages {
		if !fn(m) {
			return
		}
	}
}

// search returns the position of the first message with key >= k.
func (l *List) search(k Key) int {
	return sort.Search(len(l.messages), func(i int) bool {
		return l.messages[i].Key.Compare(k) >= 0
	})
}
