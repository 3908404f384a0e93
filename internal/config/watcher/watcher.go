// Package watcher watches a blueprint file for changes so the profile can
// be regenerated live.
//
// Editors commonly replace files by rename, so the watcher monitors the
// blueprint's directory and filters for its base name. Rapid successive
// events are debounced into one.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Errors returned by watcher operations.
var (
	// ErrWatcherClosed indicates the watcher was already closed.
	ErrWatcherClosed = errors.New("watcher is closed")

	// ErrPathNotExist indicates the blueprint path does not exist.
	ErrPathNotExist = errors.New("path does not exist")
)

// DefaultDebounce is the window within which repeated change events are
// coalesced.
const DefaultDebounce = 250 * time.Millisecond

// Event signals that the watched blueprint changed.
type Event struct {
	// Path is the absolute blueprint path.
	Path string

	// Time is when the (last coalesced) change was observed.
	Time time.Time
}

// Watcher monitors one blueprint file.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration

	events chan Event
	errs   chan error

	closed  bool
	closeCh chan struct{}
	done    sync.WaitGroup
}

// New creates a watcher for the given blueprint file. A non-positive
// debounce uses DefaultDebounce.
func New(path string, debounce time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		fsw:      fsw,
		path:     absPath,
		debounce: debounce,
		events:   make(chan Event, 1),
		errs:     make(chan error, 1),
		closeCh:  make(chan struct{}),
	}

	w.done.Add(1)
	go w.loop()

	return w, nil
}

// Events returns the channel of debounced change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.done.Wait()
	return err
}

// loop filters raw events for the watched file and debounces them.
func (w *Watcher) loop() {
	defer w.done.Done()

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
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
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			select {
			case w.events <- Event{Path: w.path, Time: time.Now()}:
			default:
				// Consumer is behind; the pending event already covers
				// this change.
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}
