package message

import (
	"fmt"
	"testing"
	"time"
)

func keyAt(sec int, id string) Key {
	return Key{
		Timestamp: time.Date(2026, 8, 1, 12, 0, sec, 0, time.UTC),
		ID:        id,
	}
}

func msgAt(sec int, id, body string) Message {
	return Message{
		Key:    keyAt(sec, id),
		Room:   "general",
		Sender: "alice",
		Body:   body,
	}
}

func TestKeyCompare(t *testing.T) {
	tests := []struct {
		a, b Key
		want int
	}{
		{keyAt(1, "a"), keyAt(2, "a"), -1},
		{keyAt(2, "a"), keyAt(1, "a"), 1},
		{keyAt(1, "a"), keyAt(1, "b"), -1},
		{keyAt(1, "b"), keyAt(1, "a"), 1},
		{keyAt(1, "a"), keyAt(1, "a"), 0},
	}
	for _, tt := range tests {
		got := tt.a.Compare(tt.b)
		if sign(got) != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want sign %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestInsertKeepsOrder(t *testing.T) {
	var l List
	// Out of arrival order on purpose.
	for _, sec := range []int{3, 1, 4, 2} {
		l.Insert(msgAt(sec, "id", fmt.Sprintf("msg-%d", sec)))
	}

	if l.Len() != 4 {
		t.Fatalf("Len = %d, want 4", l.Len())
	}
	for i, wantSec := range []int{1, 2, 3, 4} {
		m, ok := l.At(i)
		if !ok {
			t.Fatalf("At(%d) missing", i)
		}
		if !m.Key.Equals(keyAt(wantSec, "id")) {
			t.Errorf("At(%d) = %q, want msg-%d", i, m.Body, wantSec)
		}
	}
}

func TestInsertDuplicateReplaces(t *testing.T) {
	var l List
	l.Insert(msgAt(1, "id", "original"))
	l.Insert(msgAt(1, "id", "edited"))

	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}
	m, ok := l.Get(keyAt(1, "id"))
	if !ok || m.Body != "edited" {
		t.Errorf("Get = %q, %v, want \"edited\"", m.Body, ok)
	}
}

func TestDelete(t *testing.T) {
	var l List
	l.Insert(msgAt(1, "a", "one"))
	l.Insert(msgAt(2, "b", "two"))

	if !l.Delete(keyAt(1, "a")) {
		t.Error("Delete existing key = false, want true")
	}
	if l.Delete(keyAt(1, "a")) {
		t.Error("Delete removed key = true, want false")
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}
	if _, ok := l.Get(keyAt(2, "b")); !ok {
		t.Error("unrelated message was removed")
	}
}

func TestFirstLast(t *testing.T) {
	var l List

	if _, ok := l.First(); ok {
		t.Error("First on empty list = true, want false")
	}
	if _, ok := l.Last(); ok {
		t.Error("Last on empty list = true, want false")
	}

	l.Insert(msgAt(2, "b", "middle"))
	l.Insert(msgAt(1, "a", "oldest"))
	l.Insert(msgAt(3, "c", "newest"))

	if m, _ := l.First(); m.Body != "oldest" {
		t.Errorf("First = %q, want \"oldest\"", m.Body)
	}
	if m, _ := l.Last(); m.Body != "newest" {
		t.Errorf("Last = %q, want \"newest\"", m.Body)
	}
}

func TestNextPrev(t *testing.T) {
	var l List
	l.Insert(msgAt(1, "a", "one"))
	l.Insert(msgAt(2, "b", "two"))
	l.Insert(msgAt(3, "c", "three"))

	if m, ok := l.Next(keyAt(1, "a")); !ok || m.Body != "two" {
		t.Errorf("Next(one) = %q, %v, want \"two\"", m.Body, ok)
	}
	if m, ok := l.Prev(keyAt(3, "c")); !ok || m.Body != "two" {
		t.Errorf("Prev(three) = %q, %v, want \"two\"", m.Body, ok)
	}
	if _, ok := l.Next(keyAt(3, "c")); ok {
		t.Error("Next(newest) = true, want false")
	}
	if _, ok := l.Prev(keyAt(1, "a")); ok {
		t.Error("Prev(oldest) = true, want false")
	}
}

// Next and Prev work from a key that is no longer in the list, which
// is how selection recovers after the selected message is deleted.
func TestNextPrevAbsentKey(t *testing.T) {
	var l List
	l.Insert(msgAt(1, "a", "one"))
	l.Insert(msgAt(3, "c", "three"))

	if m, ok := l.Next(keyAt(2, "b")); !ok || m.Body != "three" {
		t.Errorf("Next(absent) = %q, %v, want \"three\"", m.Body, ok)
	}
	if m, ok := l.Prev(keyAt(2, "b")); !ok || m.Body != "one" {
		t.Errorf("Prev(absent) = %q, %v, want \"one\"", m.Body, ok)
	}
}

func TestIndex(t *testing.T) {
	var l List
	l.Insert(msgAt(1, "a", "one"))
	l.Insert(msgAt(2, "b", "two"))

	if i := l.Index(keyAt(2, "b")); i != 1 {
		t.Errorf("Index = %d, want 1", i)
	}
	if i := l.Index(keyAt(9, "z")); i != -1 {
		t.Errorf("Index(absent) = %d, want -1", i)
	}
}

func TestNewKeyOrdering(t *testing.T) {
	a := NewKey()
	b := NewKey()
	if a.Compare(b) >= 0 {
		t.Errorf("keys generated in order compare %d, want < 0", a.Compare(b))
	}
	if a.IsZero() {
		t.Error("NewKey returned the zero key")
	}
}
