package transaction

import (
	"errors"
	"time"
)

// ErrInvalidWindow is returned when a window's start date is after its end date.
var ErrInvalidWindow = errors.New("window start is after end")

// Window is an inclusive date range. A zero Start or End leaves that
// side open; the zero Window passes every record.
//
// Build windows with NewWindow or TrailingWindow: a struct literal with
// Start after End bypasses validation and matches nothing. Operations
// that accept a Window call Validate before filtering.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds an explicit inclusive window.
func NewWindow(start, end time.Time) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// TrailingWindow returns the window covering the given number of days
// up to and including ref.
func TrailingWindow(ref time.Time, days int) Window {
	return Window{Start: ref.AddDate(0, 0, -days), End: ref}
}

// Validate checks that the window bounds are ordered.
func (w Window) Validate() error {
	if !w.Start.IsZero() && !w.End.IsZero() && w.Start.After(w.End) {
		return ErrInvalidWindow
	}
	return nil
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}

// Filter returns the records whose operation date falls inside w. The
// input slice is never modified.
func Filter(records []Transaction, w Window) []Transaction {
	var filtered []Transaction
	for _, r := range records {
		if w.Contains(r.Date) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
