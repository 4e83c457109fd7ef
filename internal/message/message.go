// Package message defines the chat data model: rooms, users, and the
// time-ordered message store the UI renders from.
package message

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Room names a chat channel.
type Room string

// User names a message sender.
type User string

// Key identifies a message and defines the display order. Messages
// sort by timestamp first; the ID breaks ties between messages that
// arrive in the same instant, so the order is total and stable.
type Key struct {
	Timestamp time.Time
	ID        string
}

// NewKey builds a key for a message arriving now. IDs are time-ordered
// UUIDs, so same-instant ties still resolve in generation order.
func NewKey() Key {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 fails only if the random source does; fall back to
		// purely random IDs rather than aborting message delivery.
		id = uuid.New()
	}
	return Key{Timestamp: time.Now(), ID: id.String()}
}

// Compare orders keys by timestamp, then ID. It returns a negative
// value, zero, or a positive value in the usual comparator convention.
func (k Key) Compare(other Key) int {
	if c := k.Timestamp.Compare(other.Timestamp); c != 0 {
		return c
	}
	return strings.Compare(k.ID, other.ID)
}

// Equals reports whether two keys identify the same message.
func (k Key) Equals(other Key) bool {
	return k.Compare(other) == 0
}

// IsZero reports whether the key is the zero value, used as "no
// selection".
func (k Key) IsZero() bool {
	return k.Timestamp.IsZero() && k.ID == ""
}

// Message is a single chat message.
type Message struct {
	Key    Key
	Room   Room
	Sender User
	Body   string
}

// New builds a message keyed to the current time.
func New(room Room, sender User, body string) Message {
	return Message{
		Key:    NewKey(),
		Room:   room,
		Sender: sender,
		Body:   body,
	}
}
