// internal/watch/watch.go
//
// Filesystem watcher that keeps the theme registry current.
//
// Context
// -------
// Operators drop or edit themes while the service runs.  The Watcher
// observes every configured search path (and each theme directory below it)
// with fsnotify and triggers Manager.Refresh after a short quiet period, so
// a burst of writes from `cp -r` collapses into one rescan.
//
// The watcher is optional; cmd/web starts it only when `themes.watch` is
// true.  Refresh failures are logged and the watcher keeps running — a bad
// intermediate state on disk should not kill the process.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/yanizio/themes/internal/theme"
)

// debounce is the quiet period between the last event and the rescan.
const debounce = 500 * time.Millisecond

// Watcher rescans the registry when a theme search path changes.
type Watcher struct {
	fsw *fsnotify.Watcher
	mgr *theme.Manager
}

// New builds a Watcher over the given search paths.  Missing paths are
// skipped; a path created later requires a restart to be picked up.
func New(mgr *theme.Manager, paths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, p := range paths {
		if err := addTree(fsw, p); err != nil {
			zap.S().Warnw("watch path skipped", "path", p, "err", err)
		}
	}

	return &Watcher{fsw: fsw, mgr: mgr}, nil
}

// addTree registers dir and its immediate subdirectories.  One level is
// enough: descriptor and template edits inside a theme all touch paths whose
// parent is already watched.
func addTree(fsw *fsnotify.Watcher, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	if err := fsw.Add(dir); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, ent := range entries {
		if ent.IsDir() {
			_ = fsw.Add(filepath.Join(dir, ent.Name()))
		}
	}
	return nil
}

// Run blocks until ctx is done, refreshing the registry after bursts of
// filesystem events.  Call it from its own goroutine.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	arm := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			select {
			case fire <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			_ = w.fsw.Close()
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// New theme directory: start watching it, too.
			if ev.Op.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = w.fsw.Add(ev.Name)
				}
			}
			arm()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			zap.S().Warnw("theme watcher error", "err", err)

		case <-fire:
			if err := w.mgr.Refresh(); err != nil {
				zap.S().Errorw("watch refresh failed", "err", err)
			}
		}
	}
}
