package feed

import (
	"context"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	f := New(1)

	knownRoom := func(r string) bool {
		for _, room := range rooms {
			if string(room) == r {
				return true
			}
		}
		return false
	}
	knownUser := func(u string) bool {
		for _, user := range users {
			if string(user) == u {
				return true
			}
		}
		return false
	}

	for i := 0; i < 100; i++ {
		m := f.generate()
		if m.Key.IsZero() {
			t.Fatal("generated message has zero key")
		}
		if !knownRoom(string(m.Room)) {
			t.Errorf("unknown room %q", m.Room)
		}
		if !knownUser(string(m.Sender)) {
			t.Errorf("unknown sender %q", m.Sender)
		}
		if m.Body == "" {
			t.Error("generated message has empty body")
		}
	}
}

func TestIntervalBounds(t *testing.T) {
	f := New(2)
	for i := 0; i < 1000; i++ {
		d := f.interval()
		if d < 0 || d >= MaxInterval {
			t.Fatalf("interval %v out of [0, %v)", d, MaxInterval)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f := New(3)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		f.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	if _, ok := <-f.Messages(); ok {
		t.Error("message channel still open after Run returned")
	}
}
