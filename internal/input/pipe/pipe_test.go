package pipe

import (
	"testing"
	"time"
)

func TestFIFOOrder(t *testing.T) {
	in, out := Unbounded[int]()

	const n = 1000
	go func() {
		for i := 0; i < n; i++ {
			in <- i
		}
		close(in)
	}()

	for i := 0; i < n; i++ {
		v, ok := <-out
		if !ok {
			t.Fatalf("channel closed after %d values, want %d", i, n)
		}
		if v != i {
			t.Fatalf("received %d at position %d", v, i)
		}
	}
	if _, ok := <-out; ok {
		t.Error("receive side should be closed after drain")
	}
}

func TestSendNeverBlocks(t *testing.T) {
	in, out := Unbounded[int]()

	// No receiver yet: a burst of sends must complete on its own.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			in <- i
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sends blocked with no active receiver")
	}

	for i := 0; i < 10000; i++ {
		if v := <-out; v != i {
			t.Fatalf("received %d at position %d", v, i)
		}
	}
}

func TestCloseDrainsQueue(t *testing.T) {
	in, out := Unbounded[string]()

	in <- "a"
	in <- "b"
	in <- "c"
	close(in)

	var got []string
	for v := range out {
		got = append(got, v)
	}
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("drained %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("drain[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCloseEmpty(t *testing.T) {
	in, out := Unbounded[int]()
	close(in)

	select {
	case _, ok := <-out:
		if ok {
			t.Error("received a value from an empty closed pipe")
		}
	case <-time.After(time.Second):
		t.Fatal("receive side never closed")
	}
}
