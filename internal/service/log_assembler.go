package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"slices"
	"time"
)

// LogQuery holds the optional log filters. An empty From or To disables
// range filtering; a nil Limit selects up to the stored count.
type LogQuery struct {
	Limit *int
	From  string
	To    string
}

type datedEntry struct {
	entry domain.LogEntry
	at    time.Time
	valid bool
}

// AssembleLog builds the response log for user.
//
// Entries are selected by position from the front of the stored sequence,
// converted to display form, sorted newest first (stable), and then, when
// both bounds are present, filtered to the inclusive [From, To] range.
// Count always reports the stored count.
func AssembleLog(user *domain.User, q LogQuery) *domain.ExerciseLog {
	n := user.Count
	if q.Limit != nil {
		n = *q.Limit
	}
	n = min(n, len(user.Exercises))
	n = max(n, 0)

	entries := make([]datedEntry, 0, n)
	for i := 0; i < n; i++ {
		ex := user.Exercises[i]
		at, valid := parseStoredDate(ex.Date)
		entries = append(entries, datedEntry{
			entry: domain.LogEntry{
				Description: ex.Description,
				Duration:    ex.IntDuration(),
				Date:        FormatCalendarDate(ex.Date),
			},
			at:    at,
			valid: valid,
		})
	}

	slices.SortStableFunc(entries, newestFirst)

	if q.From != "" && q.To != "" {
		entries = filterRange(entries, q.From, q.To)
	}

	log := make([]domain.LogEntry, len(entries))
	for i, e := range entries {
		log[i] = e.entry
	}

	return &domain.ExerciseLog{
		ID:       user.ID,
		Username: user.Username,
		Count:    user.Count,
		Log:      log,
	}
}

// newestFirst orders valid dates descending, with invalid dates last.
func newestFirst(a, b datedEntry) int {
	switch {
	case a.valid && !b.valid:
		return -1
	case !a.valid && b.valid:
		return 1
	case !a.valid && !b.valid:
		return 0
	}
	return b.at.Compare(a.at)
}

// filterRange keeps entries inside [from, to]. An unparseable bound keeps nothing.
func filterRange(entries []datedEntry, from, to string) []datedEntry {
	lo, okFrom := parseBound(from)
	hi, okTo := parseBound(to)
	if !okFrom || !okTo {
		return entries[:0]
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.valid && !e.at.Before(lo) && !e.at.After(hi) {
			kept = append(kept, e)
		}
	}
	return kept
}
