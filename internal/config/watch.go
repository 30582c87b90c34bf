package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow collapses the burst of events editors emit for one save.
const debounceWindow = 100 * time.Millisecond

// Reload is delivered by a Watcher after the watched file changed and was re-read.
// Exactly one of Config and Err is meaningful.
type Reload struct {
	Path   string
	Config RunnerConfig
	Err    error
}

// Watcher re-reads a config file whenever it changes on disk.
// It watches the parent directory so atomic rename-on-save editors keep working.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Reloads chan Reload
	closeCh chan struct{}
	once    sync.Once
	done    chan struct{}
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config watch: cannot resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config watch: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Reloads: make(chan Reload, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes the Reloads channel.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Reloads)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	// Reload only after the file has been quiet for debounceWindow, so a
	// truncate-then-write save is read once, fully written.
	timer := time.NewTimer(debounceWindow)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			timer.Reset(debounceWindow)
		case <-timer.C:
			cfg, err := LoadFile(w.path)
			w.deliver(Reload{Path: w.path, Config: cfg, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.deliver(Reload{Path: w.path, Err: err})
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) deliver(r Reload) {
	select {
	case w.Reloads <- r:
	case <-w.closeCh:
	}
}

func (w *Watcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == w.path && isYAML(abs)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
