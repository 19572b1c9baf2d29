package patterns

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// PackWatcher watches an extension pack file and recompiles the library when
// it changes. Events are debounced so an editor's write-rename dance triggers
// a single reload. The compiled Library itself stays immutable; each reload
// hands a freshly compiled replacement to the onSwap callback.
type PackWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	path     string
	debounce time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	timer   *time.Timer
}

// NewPackWatcher creates a watcher for the extension pack at path.
// A debounce of zero defaults to 100ms.
func NewPackWatcher(path string, debounce time.Duration, logger *slog.Logger) (*PackWatcher, error) {
	if path == "" {
		return nil, fmt.Errorf("pack watcher requires a pack path")
	}
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &PackWatcher{
		watcher:  w,
		logger:   logger.With("component", "patterns.watcher"),
		path:     path,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch blocks until the context is cancelled or Stop is called, invoking
// onSwap with a freshly compiled Library after each debounced change.
// A pack that fails to load or compile is logged and skipped; the previous
// library remains in effect.
func (pw *PackWatcher) Watch(ctx context.Context, onSwap func(*Library)) error {
	pw.mu.Lock()
	if pw.running {
		pw.mu.Unlock()
		return fmt.Errorf("pack watcher already running")
	}
	pw.running = true
	pw.mu.Unlock()

	defer func() {
		pw.mu.Lock()
		pw.running = false
		pw.mu.Unlock()
		close(pw.doneCh)
	}()

	// Watch the containing directory so atomic rename-over saves are seen.
	if err := pw.watcher.Add(filepath.Dir(pw.path)); err != nil {
		return fmt.Errorf("failed to watch pack directory: %w", err)
	}

	pw.logger.Info("pattern pack watcher started",
		"path", pw.path,
		"debounce_ms", pw.debounce.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			pw.logger.Info("pattern pack watcher stopped (context cancelled)")
			return nil

		case <-pw.stopCh:
			pw.logger.Info("pattern pack watcher stopped")
			return nil

		case event, ok := <-pw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !pw.shouldProcess(event) {
				continue
			}
			pw.schedule(onSwap)

		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			pw.logger.Error("pattern pack watcher error", "error", err)
		}
	}
}

// Stop terminates the watch loop and releases the fsnotify watcher.
func (pw *PackWatcher) Stop() error {
	pw.mu.Lock()
	if !pw.running {
		pw.mu.Unlock()
		return pw.watcher.Close()
	}
	if pw.timer != nil {
		pw.timer.Stop()
	}
	pw.mu.Unlock()

	close(pw.stopCh)
	<-pw.doneCh

	if err := pw.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

func (pw *PackWatcher) shouldProcess(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(pw.path)
}

func (pw *PackWatcher) schedule(onSwap func(*Library)) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.timer != nil {
		pw.timer.Stop()
	}
	pw.timer = time.AfterFunc(pw.debounce, func() {
		lib, err := CompileFile(pw.path)
		if err != nil {
			pw.logger.Error("pattern pack reload failed, keeping previous library",
				"path", pw.path,
				"error", err,
			)
			return
		}
		pw.logger.Info("pattern pack reloaded", "path", pw.path)
		onSwap(lib)
	})
}
