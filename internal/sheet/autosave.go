package sheet

import (
	"context"
	"sync"
	"time"
)

// SaveStatus is the autosave indicator exposed to the form.
type SaveStatus string

const (
	SaveIdle   SaveStatus = "idle"
	SaveSaving SaveStatus = "saving"
	SaveSaved  SaveStatus = "saved"
	SaveError  SaveStatus = "error"
)

// DebounceDelay is how long after the last edit the deferred save fires.
const DebounceDelay = 1500 * time.Millisecond

// SaveFunc persists the session's current state. A failed save keeps
// the in-memory edit; the next edit retries.
type SaveFunc func(ctx context.Context) error

// AutoSaver debounces edit events on one open sheet into persistence
// calls: every Touch cancels the previously scheduled save and arms a
// new one, so rapid edits collapse into a single write after the user
// pauses. An in-flight save is never cancelled; if an older save lands
// after a newer one, the store keeps whichever write arrived last.
type AutoSaver struct {
	mu     sync.Mutex
	delay  time.Duration
	save   SaveFunc
	after  func(d time.Duration, fn func()) (stop func() bool)
	stop   func() bool
	loaded bool
	locked bool
	status SaveStatus
	notify func(SaveStatus)
}

// AutoSaveOption configures an AutoSaver.
type AutoSaveOption func(*AutoSaver)

// WithDelay overrides the debounce delay.
func WithDelay(d time.Duration) AutoSaveOption {
	return func(a *AutoSaver) { a.delay = d }
}

// WithAfterFunc substitutes the timer source; tests pass a manual one.
func WithAfterFunc(after func(time.Duration, func()) func() bool) AutoSaveOption {
	return func(a *AutoSaver) { a.after = after }
}

// WithNotify registers a callback invoked on every status change.
func WithNotify(fn func(SaveStatus)) AutoSaveOption {
	return func(a *AutoSaver) { a.notify = fn }
}

func NewAutoSaver(save SaveFunc, opts ...AutoSaveOption) *AutoSaver {
	a := &AutoSaver{
		delay:  DebounceDelay,
		save:   save,
		status: SaveIdle,
		after: func(d time.Duration, fn func()) func() bool {
			t := time.AfterFunc(d, fn)
			return t.Stop
		},
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Loaded marks the end of initial population. Touches before this are
// ignored so filling the form from the store never triggers a save.
func (a *AutoSaver) Loaded() {
	a.mu.Lock()
	a.loaded = true
	a.mu.Unlock()
}

// SetLocked suppresses scheduled saves entirely while the period window
// is closed; a pending save is cancelled.
func (a *AutoSaver) SetLocked(locked bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.locked = locked
	if locked && a.stop != nil {
		a.stop()
		a.stop = nil
	}
}

// Touch notes one edit: it moves the status to saving immediately and
// (re)schedules the deferred save.
func (a *AutoSaver) Touch(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.loaded || a.locked {
		return
	}
	if a.stop != nil {
		a.stop()
	}
	a.setStatusLocked(SaveSaving)
	a.stop = a.after(a.delay, func() { a.fire(ctx) })
}

// Status returns the current indicator state.
func (a *AutoSaver) Status() SaveStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

func (a *AutoSaver) fire(ctx context.Context) {
	a.mu.Lock()
	a.stop = nil
	save := a.save
	a.mu.Unlock()

	err := save(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stop != nil {
		return // a newer edit superseded this save's outcome
	}
	if err != nil {
		a.setStatusLocked(SaveError)
		return
	}
	a.setStatusLocked(SaveSaved)
}

func (a *AutoSaver) setStatusLocked(s SaveStatus) {
	if a.status == s {
		return
	}
	a.status = s
	if a.notify != nil {
		a.notify(s)
	}
}
