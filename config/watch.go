package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/render"
)

// settleDelay coalesces the burst of events editors produce on save
const settleDelay = 120 * time.Millisecond

// WatchTheme reloads the config at path whenever it changes and sends the resolved theme
// Invalid files are logged and skipped; the channel closes when ctx is done
func WatchTheme(ctx context.Context, path string, logger *log.Logger) (<-chan render.Theme, error) {
	if logger == nil {
		logger = log.Default()
	}
	target := filepath.Clean(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Directory watch survives rename-on-save
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	out := make(chan render.Theme, 1)
	core.Go(func() {
		defer close(out)
		defer w.Close()

		var settle <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				settle = time.After(settleDelay)

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("theme watcher", "err", err)

			case <-settle:
				settle = nil
				cfg, err := Load(target)
				if err != nil {
					logger.Error("theme reload failed", "path", target, "err", err)
					continue
				}
				theme, err := cfg.Theme.Resolve()
				if err != nil {
					logger.Error("theme reload failed", "path", target, "err", err)
					continue
				}
				logger.Info("theme reloaded", "path", target)

				// Keep only the newest theme if the consumer is behind
				select {
				case <-out:
				default:
				}
				select {
				case out <- theme:
				case <-ctx.Done():
					return
				}
			}
		}
	})
	return out, nil
}
