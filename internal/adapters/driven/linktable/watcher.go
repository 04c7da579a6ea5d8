package linktable

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// Watch reloads the link file whenever it is written, created, renamed or
// removed, and passes each new table to onReload. Bursts of events within
// the debounce window cause a single reload. The file's directory is watched
// so editors that replace the file on save are handled.
//
// Watch blocks until ctx is cancelled and then returns nil.
func (s *Source) Watch(ctx context.Context, onReload func(*domain.LinkTable)) error {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("resolving link file path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("Watching %s for link changes", abs)

	var (
		timer   *time.Timer
		pending <-chan time.Time
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

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, abs) {
				continue
			}
			logger.Debug("Link file event: %s", event.Op)
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			pending = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Link watcher error: %v", err)

		case <-pending:
			pending = nil
			table, err := s.Load(ctx)
			if err != nil {
				logger.Warn("Reloading links failed, keeping previous table: %v", err)
				continue
			}
			logger.Info("Reloaded %d crop links", table.Len())
			onReload(table)
		}
	}
}

func relevant(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}
