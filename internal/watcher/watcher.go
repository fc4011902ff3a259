// Package watcher reports changes to the files in a taskfold data directory.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/taskfold/taskfold/internal/config"
)

// EventType represents the type of file system event.
type EventType int

// Event types for file system changes.
const (
	EventSnapshotChanged EventType = iota
	EventJournalChanged
	EventSettingsChanged
)

func (t EventType) String() string {
	switch t {
	case EventSnapshotChanged:
		return "snapshot"
	case EventJournalChanged:
		return "journal"
	case EventSettingsChanged:
		return "settings"
	}
	return "unknown"
}

// DebounceInterval is how long a path must stay quiet before its change is
// reported.
const DebounceInterval = 100 * time.Millisecond

// Event represents a file system change event.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches a data directory for snapshot, journal and settings
// changes.
type Watcher struct {
	dir        string
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a watcher for dir.
func New(dir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		dir:        filepath.Clean(dir),
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 100),
		done:       make(chan struct{}),
		debounce:   make(map[string]*time.Timer),
	}, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts the watcher.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}
	log.Printf("[watcher] Watching %s", w.dir)

	go w.processEvents()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		for path, timer := range w.debounce {
			timer.Stop()
			delete(w.debounce, path)
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Saves are atomic renames of a temp file onto the target, and commit
	// removes the journal, so Rename and Remove count as changes.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}
	t, ok := w.classify(event.Name)
	if !ok {
		return
	}

	w.debounceEvent(event.Name, func() {
		w.emit(Event{Type: t, Path: event.Name})
	})
}

// classify maps a path to the event it represents. Temp files and backups
// are ignored.
func (w *Watcher) classify(path string) (EventType, bool) {
	if filepath.Dir(path) != w.dir {
		return 0, false
	}
	switch filepath.Base(path) {
	case config.SnapshotFileName:
		return EventSnapshotChanged, true
	case config.JournalFileName:
		return EventJournalChanged, true
	case config.SettingsFileName:
		return EventSettingsChanged, true
	}
	return 0, false
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(DebounceInterval, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

func (w *Watcher) emit(e Event) {
	select {
	case <-w.done:
	case w.eventsChan <- e:
	}
}
