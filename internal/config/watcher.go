package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler receives each successfully reloaded configuration.
type Handler func(*Config)

// Watcher monitors one configuration file and reloads it on change. Editors
// often replace files on save (write to temp, rename over), so the watch is
// placed on the containing directory and filtered to the target path.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	handler  Handler
	debounce time.Duration

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Watch starts watching path and calls handler with the freshly parsed
// configuration after every change. A change that fails to load or validate
// is dropped, keeping the last good configuration in effect.
func Watch(path string, handler Handler) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		handler:  handler,
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			cfg, err := Load(w.path)
			if err != nil {
				continue
			}
			w.handler(cfg)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}
