package sheet_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/campus-conduct/drl-server/internal/sheet"
)

// manualTimer stands in for time.AfterFunc so tests control when the
// debounce fires.
type manualTimer struct {
	mu      sync.Mutex
	pending func()
	stopped int
}

func (m *manualTimer) after(_ time.Duration, fn func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = fn
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.stopped++
		m.pending = nil
		return true
	}
}

func (m *manualTimer) take(t *testing.T) func() {
	t.Helper()
	m.mu.Lock()
	fn := m.pending
	m.pending = nil
	m.mu.Unlock()
	if fn == nil {
		t.Fatalf("no save scheduled")
	}
	return fn
}

func (m *manualTimer) fire(t *testing.T) {
	t.Helper()
	m.take(t)()
}

func (m *manualTimer) armed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending != nil
}

func TestRapidEditsCollapseIntoOneSave(t *testing.T) {
	var saves int
	tm := &manualTimer{}
	a := sheet.NewAutoSaver(func(context.Context) error {
		saves++
		return nil
	}, sheet.WithAfterFunc(tm.after))
	a.Loaded()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		a.Touch(ctx)
	}
	if a.Status() != sheet.SaveSaving {
		t.Fatalf("status during debounce: want saving, got %q", a.Status())
	}

	tm.fire(t)
	if saves != 1 {
		t.Fatalf("five edits must produce one save, got %d", saves)
	}
	if a.Status() != sheet.SaveSaved {
		t.Fatalf("status after save: want saved, got %q", a.Status())
	}
}

func TestInitialPopulationDoesNotSave(t *testing.T) {
	tm := &manualTimer{}
	a := sheet.NewAutoSaver(func(context.Context) error { return nil }, sheet.WithAfterFunc(tm.after))

	// the form is being filled from the store; no save may arm
	a.Touch(context.Background())
	if tm.armed() {
		t.Fatalf("touches before Loaded must be ignored")
	}

	a.Loaded()
	a.Touch(context.Background())
	if !tm.armed() {
		t.Fatalf("touches after Loaded must schedule a save")
	}
}

func TestLockSuppressesAndCancelsSaves(t *testing.T) {
	tm := &manualTimer{}
	a := sheet.NewAutoSaver(func(context.Context) error { return nil }, sheet.WithAfterFunc(tm.after))
	a.Loaded()

	a.Touch(context.Background())
	a.SetLocked(true)
	if tm.armed() {
		t.Fatalf("locking must cancel the pending save")
	}

	a.Touch(context.Background())
	if tm.armed() {
		t.Fatalf("touches while locked must be ignored")
	}

	a.SetLocked(false)
	a.Touch(context.Background())
	if !tm.armed() {
		t.Fatalf("unlocking must let edits schedule saves again")
	}
}

func TestFailedSaveReportsError(t *testing.T) {
	tm := &manualTimer{}
	var notes []sheet.SaveStatus
	a := sheet.NewAutoSaver(func(context.Context) error {
		return errors.New("store down")
	}, sheet.WithAfterFunc(tm.after), sheet.WithNotify(func(s sheet.SaveStatus) {
		notes = append(notes, s)
	}))
	a.Loaded()

	a.Touch(context.Background())
	tm.fire(t)
	if a.Status() != sheet.SaveError {
		t.Fatalf("want error status, got %q", a.Status())
	}
	want := []sheet.SaveStatus{sheet.SaveSaving, sheet.SaveError}
	if len(notes) != len(want) || notes[0] != want[0] || notes[1] != want[1] {
		t.Fatalf("notifications: want %v, got %v", want, notes)
	}

	// the next edit retries and can succeed
	a.Touch(context.Background())
	if a.Status() != sheet.SaveSaving {
		t.Fatalf("retry must re-enter saving, got %q", a.Status())
	}
}

func TestNewerEditSupersedesSaveOutcome(t *testing.T) {
	tm := &manualTimer{}
	fired := make(chan struct{})
	release := make(chan struct{})
	a := sheet.NewAutoSaver(func(context.Context) error {
		close(fired)
		<-release
		return nil
	}, sheet.WithAfterFunc(tm.after))
	a.Loaded()

	ctx := context.Background()
	a.Touch(ctx)

	fn := tm.take(t)
	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()
	<-fired

	// a new edit arrives while the save is in flight
	a.Touch(ctx)
	close(release)
	<-done

	// the in-flight save's outcome must not overwrite the saving state
	if a.Status() != sheet.SaveSaving {
		t.Fatalf("superseded save must leave status at saving, got %q", a.Status())
	}
}
