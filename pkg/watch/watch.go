// Package watch notifies callers when the dpkg status file changes.
//
// dpkg rewrites the status file by writing status-new and renaming it over
// status, so the watcher observes the containing directory and filters
// events for the file's name.
package watch

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events produced by one dpkg run.
const DefaultDebounce = 250 * time.Millisecond

// Watcher calls OnChange after the watched file has been written, created,
// renamed or removed and then stayed quiet for the debounce interval.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	logger   *log.Logger

	fsw *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

// New starts observing the directory of path. Events are delivered once
// [Watcher.Run] is called. A debounce of zero uses [DefaultDebounce].
func New(path string, debounce time.Duration, onChange func(), logger *log.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		fsw:      fsw,
	}, nil
}

// Run dispatches events until ctx is cancelled, then releases the
// underlying watcher. It always returns nil after cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	defer w.stopTimer()

	w.logger.Debug("watching control file", "path", w.path)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				w.schedule()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "err", err)

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.logger.Info("control file changed", "path", w.path)
	if w.onChange != nil {
		w.onChange()
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
