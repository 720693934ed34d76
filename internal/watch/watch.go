// Package watch re-runs a callback whenever a single file changes on disk.
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a temp file and renaming it over the
// original keep triggering events. Bursts of events are coalesced: the
// callback runs once the file has been quiet for the debounce delay.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/logging"
)

// DefaultDebounce is used when a Watcher is built with a non-positive delay.
const DefaultDebounce = 200 * time.Millisecond

// relevant is the set of operations that can change the file's contents.
const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Func is invoked on start and after each settled change.
type Func func(ctx context.Context) error

// Watcher re-runs a Func when its file changes.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
}

// New returns a Watcher for path. A nil logger discards output.
func New(path string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Watcher{path: filepath.Clean(path), debounce: debounce, logger: logger}
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls fn once, then again after every settled change, until ctx is
// canceled. Errors from fn are logged and do not stop the loop. Run returns
// nil on cancellation.
func (w *Watcher) Run(ctx context.Context, fn Func) error {
	dir := filepath.Dir(w.path)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return errors.WithHint(
				errors.Wrapf(errors.ErrNotFound, "watch directory %s", dir),
				"Create the directory or pass a path inside an existing one")
		}
		return errors.Wrapf(err, "stat %s", dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer fsw.Close()

	if err := fsw.Add(dir); err != nil {
		return errors.Wrapf(err, "watching %s", dir)
	}
	w.logger.Debug("watching", "path", w.path, "debounce", w.debounce)

	w.invoke(ctx, fn)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&relevant == 0 {
				continue
			}
			w.logger.Log(ctx, logging.LevelTrace, "event", "op", ev.Op.String(), "path", ev.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-fire:
			fire = nil
			w.invoke(ctx, fn)
		}
	}
}

func (w *Watcher) invoke(ctx context.Context, fn Func) {
	if ctx.Err() != nil {
		return
	}
	if err := fn(ctx); err != nil {
		w.logger.Error("run failed", "path", w.path, "error", err)
	}
}
