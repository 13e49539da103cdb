package study

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dakotatools/dakgo/internal/ctxlog"
	"github.com/dakotatools/dakgo/internal/reader"
)

// watchProgress tails the tabular data file while DAKOTA runs and logs
// the evaluation count each time new rows land. Progress reporting is
// best effort: watcher failures are logged, never fatal.
func watchProgress(ctx context.Context, workdir, tabularName string) {
	logger := ctxlog.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("Progress watcher unavailable.", "error", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(workdir); err != nil {
		logger.Warn("Cannot watch study workdir.", "error", err)
		return
	}

	tabPath := filepath.Join(workdir, tabularName)
	reported := 0
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != tabularName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			rows, err := reader.CountTabularRows(tabPath)
			if err != nil || rows <= reported {
				continue
			}
			reported = rows
			logger.Info("Evaluations completed.", "count", reported)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Progress watcher error.", "error", err)
		}
	}
}
