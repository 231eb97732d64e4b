package watch

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"bracefix/internal/clock"
	"bracefix/internal/core"
)

// EventKind tells what a watch Event reports.
type EventKind int

const (
	EventChanged EventKind = iota // the target was rewritten by something else
	EventFixed                    // a repair was applied
	EventClean                    // the target was inspected and needed nothing
	EventError
)

// Event is emitted by the Watcher as the target file changes and is
// re-inspected.
type Event struct {
	Kind   EventKind
	Result *core.Result
	Err    error
}

// Watcher re-runs the repair whenever the target file is rewritten, e.g. by
// the generator that produces it. Change bursts are debounced, and the
// watcher's own write-backs are recognized by content hash so they do not
// trigger another pass.
type Watcher struct {
	Path     string
	Opts     core.Options
	Debounce time.Duration

	clk    clock.Clock
	fw     *fsnotify.Watcher
	events chan Event
	stop   chan struct{}
	wg     sync.WaitGroup

	mu          sync.Mutex
	lastWritten [sha256.Size]byte
	haveLast    bool
}

// New creates a Watcher for path. The clock comes from opts so tests can
// control the debounce timer.
func New(path string, opts core.Options, debounce time.Duration) *Watcher {
	clk := opts.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Watcher{
		Path:     path,
		Opts:     opts,
		Debounce: debounce,
		clk:      clk,
		events:   make(chan Event, 16),
		stop:     make(chan struct{}),
	}
}

// Start fixes the file once, then begins watching it in a background
// goroutine.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory: generators typically replace the file via
	// rename, which drops a watch set on the file itself.
	if err := fw.Add(filepath.Dir(w.Path)); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.Path), err)
	}
	w.fw = fw

	w.runFix()

	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop ends the watch and waits for the background goroutine to exit.
func (w *Watcher) Stop() {
	close(w.stop)
	w.fw.Close()
	w.wg.Wait()
}

// Events returns the channel of watch events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	var pending <-chan time.Time
	for {
		select {
		case <-w.stop:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.Path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if w.selfWrite() {
				continue
			}
			if pending == nil {
				w.emit(Event{Kind: EventChanged})
			}
			pending = w.clk.After(w.Debounce)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.emit(Event{Kind: EventError, Err: err})
		case <-pending:
			pending = nil
			w.runFix()
		}
	}
}

// selfWrite reports whether the file currently holds exactly what the
// watcher last wrote.
func (w *Watcher) selfWrite() bool {
	w.mu.Lock()
	have, last := w.haveLast, w.lastWritten
	w.mu.Unlock()
	if !have {
		return false
	}
	content, err := os.ReadFile(w.Path)
	if err != nil {
		return false
	}
	return sha256.Sum256(content) == last
}

func (w *Watcher) runFix() {
	res, err := core.FixFile(w.Path, w.Opts)
	if err != nil {
		w.emit(Event{Kind: EventError, Err: err})
		return
	}
	if content, err := os.ReadFile(w.Path); err == nil {
		w.mu.Lock()
		w.lastWritten = sha256.Sum256(content)
		w.haveLast = true
		w.mu.Unlock()
	}
	if res.Changed {
		w.emit(Event{Kind: EventFixed, Result: res})
	} else {
		w.emit(Event{Kind: EventClean, Result: res})
	}
}

func (w *Watcher) emit(ev Event) {
	select {
	case w.events <- ev:
	case <-w.stop:
	}
}
