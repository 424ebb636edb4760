package catalog

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"rocket-stove/internal/logger"
)

const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watch invalidates cache whenever its file is written, replaced or removed.
// The containing directory is watched so editors that save by rename are
// noticed. Watch blocks until ctx is done.
func Watch(ctx context.Context, cache *Cache, log logger.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close()

	target := filepath.Clean(cache.Path())
	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to watch directory \"%s\"", dir)
	}
	log.Info("Watching catalog", logger.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&changeOps == 0 {
				continue
			}
			cache.Invalidate()
			log.Debug("Catalog changed, cache invalidated",
				logger.String("path", target),
				logger.String("op", event.Op.String()),
			)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Catalog watcher error", logger.Error(err))
		}
	}
}
