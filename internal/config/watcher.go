package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/carrier-pigeon/pigeon/internal/app"
	"github.com/carrier-pigeon/pigeon/internal/input/keymap"
)

// debounceDelay coalesces the burst of filesystem events an editor
// save produces into one reload.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads keymaps when the config file changes on disk.
type Watcher struct {
	path    string
	logger  *app.Logger
	updates chan map[app.Mode]*keymap.Keymap[app.Action]
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, logger *app.Logger) *Watcher {
	if logger == nil {
		logger = app.NullLogger
	}
	return &Watcher{
		path:    path,
		logger:  logger.WithComponent("config"),
		updates: make(chan map[app.Mode]*keymap.Keymap[app.Action]),
	}
}

// Updates returns the stream of freshly compiled keymaps. It closes
// when Run returns.
func (w *Watcher) Updates() <-chan map[app.Mode]*keymap.Keymap[app.Action] {
	return w.updates
}

// Run watches until the context is canceled. It blocks and is meant to
// be run on its own goroutine.
//
// The parent directory is watched rather than the file itself: most
// editors replace the file on save, which would silently detach a
// watch on the old inode.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.updates)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			debounce.Reset(debounceDelay)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error: %v", err)

		case <-debounce.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	cfg, err := Load(w.path)
	if err != nil {
		// Keep the running keymaps; a half-saved file is not fatal.
		w.logger.Warn("reload failed: %v", err)
		return
	}
	maps, bad := BuildKeymaps(cfg)
	for _, be := range bad {
		w.logger.Warn("rejected binding: %v", be)
	}
	select {
	case w.updates <- maps:
		w.logger.Info("keymaps reloaded from %s", w.path)
	case <-ctx.Done():
	}
}
