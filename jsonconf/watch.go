package jsonconf

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cfgtree/cfgtree/debug"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a configuration file whenever it changes on disk.
// A Configuration is immutable, so every reload hands out a new one.
//
// The directory containing the file is watched rather than the file, so
// editors that save by writing a temporary file and renaming it over the
// original are noticed too. Watching needs the operating system
// filesystem; WithFS only affects how the file is read.
type Watcher struct {
	path    string
	opts    []Option
	o       *options
	log     *slog.Logger
	watcher *fsnotify.Watcher
}

func NewWatcher(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	o := newOptions(opts)
	return &Watcher{
		path:    abs,
		opts:    opts,
		o:       o,
		log:     debug.Logger(o.log),
		watcher: fw,
	}, nil
}

// Run loads the file once, then again after every burst of changes, and
// passes each result to fn. It returns when ctx is done or the watcher
// is closed.
func (w *Watcher) Run(ctx context.Context, fn func(*Configuration, error)) error {
	fn(Load(w.path, w.opts...))

	var (
		timer  *time.Timer
		reload <-chan time.Time
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

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if debug.Watch() {
				debug.Logf("watch: %s %s\n", ev.Op, ev.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.o.debounce)
			} else {
				timer.Reset(w.o.debounce)
			}
			reload = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("configuration watcher error", "path", w.path, "error", err)

		case <-reload:
			reload = nil
			cfg, err := Load(w.path, w.opts...)
			if err != nil {
				w.log.Error("configuration reload failed", "path", w.path, "error", err)
			} else {
				w.log.Info("configuration reloaded", "path", w.path)
			}
			fn(cfg, err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
