package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/carrier-pigeon/pigeon/internal/app"
	"github.com/carrier-pigeon/pigeon/internal/input/key"
	"github.com/carrier-pigeon/pigeon/internal/input/keymap"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pigeon.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w := NewWatcher(path, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to establish the directory watch.
	time.Sleep(50 * time.Millisecond)

	updated := `
[keymaps.list]
"x" = "delete-selected"
`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case maps := <-w.Updates():
		action, match := maps[app.ModeMessageList].Lookup(key.MustParseSequence("x"))
		if match != keymap.MatchExact || action.Kind != app.ActionDeleteSelected {
			t.Errorf("reloaded x = %v, %v, want delete-selected", action, match)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no keymap update after config write")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pigeon.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w := NewWatcher(path, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write other file: %v", err)
	}

	select {
	case <-w.Updates():
		t.Error("unrelated file triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSurvivesBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pigeon.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w := NewWatcher(path, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)

	// A broken write keeps the old keymaps and keeps watching.
	if err := os.WriteFile(path, []byte("[input"), 0o644); err != nil {
		t.Fatalf("write broken config: %v", err)
	}
	select {
	case <-w.Updates():
		t.Fatal("broken config produced an update")
	case <-time.After(300 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("[input]\ntimeout_ms = 200\n"), 0o644); err != nil {
		t.Fatalf("write fixed config: %v", err)
	}
	select {
	case maps := <-w.Updates():
		if got := maps[app.ModeMessageList].Timeout; got != 200*time.Millisecond {
			t.Errorf("Timeout = %v, want 200ms", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no update after config was fixed")
	}
}
