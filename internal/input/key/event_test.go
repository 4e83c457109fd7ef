package key

import (
	"sort"
	"testing"
)

func TestNewRuneEvent(t *testing.T) {
	e := NewRuneEvent('a', ModNone)
	if e.Key != KeyRune {
		t.Errorf("NewRuneEvent key = %v, want KeyRune", e.Key)
	}
	if e.Rune != 'a' {
		t.Errorf("NewRuneEvent rune = %q, want 'a'", e.Rune)
	}
	if e.Modifiers != ModNone {
		t.Errorf("NewRuneEvent modifiers = %v, want ModNone", e.Modifiers)
	}
}

func TestNewRuneEventImplicitShift(t *testing.T) {
	e := NewRuneEvent('G', ModNone)
	if !e.Modifiers.HasShift() {
		t.Error("uppercase rune should carry implicit Shift")
	}
	e = NewRuneEvent('g', ModNone)
	if e.Modifiers.HasShift() {
		t.Error("lowercase rune should not carry Shift")
	}
}

func TestEventCompare(t *testing.T) {
	tests := []struct {
		a, b Event
		want int
	}{
		{NewRuneEvent('a', ModNone), NewRuneEvent('a', ModNone), 0},
		{NewRuneEvent('a', ModNone), NewRuneEvent('b', ModNone), -1},
		{NewRuneEvent('b', ModNone), NewRuneEvent('a', ModNone), 1},
		// Characters sort before special keys.
		{NewRuneEvent('z', ModNone), NewSpecialEvent(KeyBackspace, ModNone), -1},
		// Specials sort in declaration order.
		{NewSpecialEvent(KeyBackspace, ModNone), NewSpecialEvent(KeyDelete, ModNone), -1},
		{NewSpecialEvent(KeyEscape, ModNone), NewFuncEvent(1, ModNone), -1},
		// Function keys sort by number.
		{NewFuncEvent(1, ModNone), NewFuncEvent(2, ModNone), -1},
		{NewFuncEvent(12, ModNone), NewFuncEvent(12, ModNone), 0},
		// Unknown sorts last.
		{NewFuncEvent(255, ModNone), NewSpecialEvent(KeyUnknown, ModNone), -1},
		// Modifier bit pattern breaks ties.
		{NewRuneEvent('a', ModNone), NewRuneEvent('a', ModCtrl), -1},
		{NewSpecialEvent(KeyEnter, ModShift), NewSpecialEvent(KeyEnter, ModCtrl), -1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%#v.Compare(%#v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Compare(tt.a); got != -tt.want {
			t.Errorf("%#v.Compare(%#v) = %d, want %d", tt.b, tt.a, got, -tt.want)
		}
	}
}

func TestEventEqualsIgnoresIrrelevantFields(t *testing.T) {
	// A stray Rune value on a special key does not participate in the
	// comparison, so the events are equal under the comparator.
	a := Event{Key: KeyEnter, Rune: 'x'}
	b := Event{Key: KeyEnter}
	if !a.Equals(b) {
		t.Error("events differing only in inert fields should compare equal")
	}
}

func TestEventOrderIsTotal(t *testing.T) {
	events := []Event{
		NewSpecialEvent(KeyUnknown, ModNone),
		NewFuncEvent(5, ModNone),
		NewSpecialEvent(KeyEscape, ModNone),
		NewRuneEvent('g', ModNone),
		NewRuneEvent('a', ModCtrl),
		NewRuneEvent('a', ModNone),
		NewSpecialEvent(KeyBackspace, ModNone),
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Compare(events[j]) < 0
	})

	want := []Event{
		NewRuneEvent('a', ModNone),
		NewRuneEvent('a', ModCtrl),
		NewRuneEvent('g', ModNone),
		NewSpecialEvent(KeyBackspace, ModNone),
		NewSpecialEvent(KeyEscape, ModNone),
		NewFuncEvent(5, ModNone),
		NewSpecialEvent(KeyUnknown, ModNone),
	}
	for i := range want {
		if !events[i].Equals(want[i]) {
			t.Errorf("sorted[%d] = %#v, want %#v", i, events[i], want[i])
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('G', ModNone), "G"},
		{NewRuneEvent('s', ModCtrl), "<C-s>"},
		{NewRuneEvent('f', ModCtrl|ModAlt), "<A-C-f>"},
		{NewSpecialEvent(KeyEscape, ModNone), "<Esc>"},
		{NewSpecialEvent(KeyEnter, ModNone), "<CR>"},
		{NewSpecialEvent(KeyLeft, ModCtrl|ModShift), "<C-S-Left>"},
		{NewFuncEvent(5, ModNone), "<F5>"},
		{NewFuncEvent(12, ModAlt), "<A-F12>"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("Event.String() = %q, want %q for %#v", got, tt.want, tt.event)
		}
	}
}
