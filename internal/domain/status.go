package domain

import "time"

// ResolvedStatus is the display status derived from a transaction's dates,
// as opposed to the cached Tool.Status field.
type ResolvedStatus string

const (
	ResolvedAvailable ResolvedStatus = "Available"
	ResolvedInUse     ResolvedStatus = "In Use"
	ResolvedOverdue   ResolvedStatus = "Overdue"
)

// Resolve derives the display status of a transaction at the given instant.
// This is the single source of truth for status labels: the list view, the
// dashboard feed and the overdue sweep all call it rather than recomputing
// the comparison inline.
//
//   - returned (ActualReturnDate set): Available, regardless of due date
//   - due date set and in the past: Overdue
//   - otherwise: In Use
func Resolve(t *Transaction, now time.Time) ResolvedStatus {
	if t.ActualReturnDate != nil {
		return ResolvedAvailable
	}
	if t.ExpectedReturnDate != nil && t.ExpectedReturnDate.Before(now) {
		return ResolvedOverdue
	}
	return ResolvedInUse
}
