package scene

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports changes to scene and layout files in a set of directories.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Changed drains pending events without blocking and reports whether any
// scene file changed since the last call, plus the latest watcher error.
func (w *Watcher) Changed() (bool, error) {
	changed := false
	var lastErr error
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return changed, lastErr
			}
			changed = true
		case err, ok := <-w.Errors:
			if !ok {
				return changed, lastErr
			}
			lastErr = err
		default:
			return changed, lastErr
		}
	}
}

type quietFile struct {
	name string
	gen  int
}

// run reports a file once it has been quiet for the debounce interval, so a
// truncate followed by a write yields a single event after the write.
func (w *Watcher) run() {
	defer close(w.done)
	quit := make(chan struct{})
	defer close(quit)

	timers := make(map[string]*time.Timer)
	gens := make(map[string]int)
	quiet := make(chan quietFile)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSceneFile(event.Name) {
				continue
			}
			if t, ok := timers[event.Name]; ok {
				t.Stop()
			}
			gens[event.Name]++
			q := quietFile{name: event.Name, gen: gens[event.Name]}
			timers[event.Name] = time.AfterFunc(debounce, func() {
				select {
				case quiet <- q:
				case <-quit:
				}
			})
		case q := <-quiet:
			// A timer that fired while being restarted is stale.
			if q.gen != gens[q.name] {
				continue
			}
			delete(timers, q.name)
			select {
			case w.Events <- q.name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSceneFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".star":
		return true
	}
	return false
}
