package inbox

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes the type of file change detected.
type ChangeKind int

const (
	ChangeWritten ChangeKind = iota // request file created or edited
	ChangeRemoved                   // request file deleted
)

// String returns the lowercase name of the change kind.
func (k ChangeKind) String() string {
	if k == ChangeRemoved {
		return "removed"
	}
	return "written"
}

// Change represents a settled change to one request file.
type Change struct {
	Kind ChangeKind
	File string
}

// Watcher monitors an inbox directory for request file changes using
// fsnotify. Bursts of events on the same file collapse into one Change once
// the file has been quiet for the debounce interval.
type Watcher struct {
	Dir     string
	Changes <-chan Change

	changes  chan Change
	done     chan struct{}
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a watcher for dir. A non-positive debounce means 100ms.
func NewWatcher(dir string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Dir:      dir,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		debounce: debounce,
		watcher:  fw,
	}, nil
}

// Start begins watching the directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher, waits for the loop to exit and closes Changes.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

// drain stops the watcher while discarding pending changes, so a loop
// blocked on a full channel can exit.
func (w *Watcher) drain() {
	go w.Stop()
	for range w.Changes {
	}
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}
			if !IsRequestFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

func (w *Watcher) emit(file string) {
	kind := ChangeWritten
	if _, err := os.Stat(file); err != nil {
		kind = ChangeRemoved
	}
	w.changes <- Change{Kind: kind, File: file}
}

// IsRequestFile reports whether name is an inbox request: a visible .toml
// file.
func IsRequestFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, ".toml") && !strings.HasPrefix(base, ".")
}

// OutputPath returns the chart path written for a request file:
// ada.toml becomes ada.chart.json next to it.
func OutputPath(requestFile string) string {
	return strings.TrimSuffix(requestFile, filepath.Ext(requestFile)) + ".chart.json"
}
