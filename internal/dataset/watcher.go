package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"chefguide/internal/logger"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads the store when the dataset file changes on disk.
type Watcher struct {
	path     string
	store    *Store
	log      *logger.Logger
	debounce time.Duration
	strict   bool
	onReload func(err error)
}

// NewWatcher watches path for changes. With strict set a failed reload stops Run with
// the error; otherwise the failure is logged and the previous snapshot keeps serving.
func NewWatcher(path string, store *Store, strict bool, log *logger.Logger) *Watcher {
	return &Watcher{
		path:     path,
		store:    store,
		log:      log.With("component", "watcher", "path", path),
		debounce: defaultDebounce,
		strict:   strict,
	}
}

// Run blocks until ctx is done or, in strict mode, a reload fails.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(w.path)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	w.log.Info("watching dataset")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.log.Debug("dataset changed", "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			w.log.Error("watcher error", "error", err)

		case <-timer.C:
			_, err := w.store.Reload(ctx)
			if w.onReload != nil {
				w.onReload(err)
			}

			if err == nil {
				continue
			}

			if w.strict {
				return fmt.Errorf("reload after change: %w", err)
			}

			w.log.Warn("reload failed, keeping previous snapshot", "error", err)
		}
	}
}
