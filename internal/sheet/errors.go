package sheet

import "errors"

var (
	// ErrNotFound is returned by stores when no record exists for the
	// student/period pair.
	ErrNotFound = errors.New("sheet not found")

	// ErrLocked refuses an edit while the grading period window is
	// closed for the acting role. The in-memory edit is kept; nothing
	// is persisted.
	ErrLocked = errors.New("grading period locked")

	// ErrForbidden refuses access to a sheet the actor may not view.
	ErrForbidden = errors.New("forbidden")
)
