package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/lookgraph/internal/loader"
)

// watchDebounce collapses bursts of file events into one rebuild.
const watchDebounce = 100 * time.Millisecond

// watchModels calls rebuild after model files under dir change, until ctx
// is done. Rebuild errors are logged and watching continues.
func watchModels(ctx context.Context, dir string, logger *slog.Logger, rebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDir(watcher, dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Info("watching for changes", "dir", dir)

	var (
		debounce <-chan time.Time
		changed  string
	)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				// New directories are watched too.
				_ = watchDir(watcher, event.Name)
			}
			if !isModelEvent(event) {
				continue
			}
			changed = event.Name
			debounce = time.After(watchDebounce)

		case <-debounce:
			debounce = nil
			logger.Info("change detected, rebuilding", "file", filepath.Base(changed))
			if err := rebuild(); err != nil {
				logger.Error("rebuild failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// watchDir recursively adds a directory to the watcher.
func watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		// Skip hidden directories
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// isModelEvent reports whether event changes a file some parser can read.
func isModelEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	_, ok := loader.Lookup(event.Name)
	return ok
}
