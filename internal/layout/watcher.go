package layout

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ChangeHandler is called when a watched layout file changes.
type ChangeHandler func(path string)

// Watcher monitors layout definition files so the host can purge
// cached keyboards when a definition changes on disk.
type Watcher struct {
	fsw     *fsnotify.Watcher
	handler ChangeHandler
	logger  *zap.Logger
}

// NewWatcher creates a watcher calling handler for every relevant
// change. The logger may be nil.
func NewWatcher(handler ChangeHandler, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating layout watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		fsw:     fsw,
		handler: handler,
		logger:  logger,
	}, nil
}

// Watch adds a layout file or directory to the watch set.
func (w *Watcher) Watch(path string) error {
	if err := w.fsw.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	return nil
}

// Run dispatches change events until the context is cancelled. Only
// writes and creates of .toml and .lua files are reported; editors
// that replace files on save show up as creates.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if !isLayoutFile(ev.Name) {
				continue
			}
			w.logger.Debug("layout file changed", zap.String("path", ev.Name))
			w.handler(ev.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("layout watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// isLayoutFile returns true for files the loader understands.
func isLayoutFile(path string) bool {
	switch filepath.Ext(path) {
	case ".toml", ".lua":
		return true
	}
	return false
}
