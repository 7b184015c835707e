package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func newTestUser(exercises ...domain.Exercise) *domain.User {
	return &domain.User{
		ID:        primitive.NewObjectID(),
		Username:  "alice",
		Count:     len(exercises),
		Exercises: exercises,
	}
}

func ex(description, date string, duration float64) domain.Exercise {
	return domain.Exercise{Description: description, Date: date, Duration: floatPtr(duration)}
}

func descriptions(log []domain.LogEntry) []string {
	out := make([]string, len(log))
	for i, e := range log {
		out[i] = e.Description
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAssembleLog_SortsNewestFirst(t *testing.T) {
	user := newTestUser(
		ex("b", "2023-02-01", 10),
		ex("c", "2023-03-01", 10),
		ex("a", "2023-01-01", 10),
	)

	got := AssembleLog(user, LogQuery{})

	want := []string{"c", "b", "a"}
	if !equalStrings(descriptions(got.Log), want) {
		t.Errorf("Expected %v, got %v", want, descriptions(got.Log))
	}
	if got.Log[0].Date != "Wed Mar 01 2023" {
		t.Errorf("Expected calendar date, got %q", got.Log[0].Date)
	}

	for i := 1; i < len(got.Log); i++ {
		prev, _ := time.Parse(CalendarLayout, got.Log[i-1].Date)
		cur, _ := time.Parse(CalendarLayout, got.Log[i].Date)
		if cur.After(prev) {
			t.Errorf("Log not non-increasing at %d: %s after %s", i, got.Log[i].Date, got.Log[i-1].Date)
		}
	}
}

func TestAssembleLog_EqualDatesKeepSelectionOrder(t *testing.T) {
	user := newTestUser(
		ex("first", "2023-05-05", 1),
		ex("older", "2023-01-01", 1),
		ex("second", "2023-05-05", 1),
		ex("third", "2023-05-05", 1),
	)

	got := AssembleLog(user, LogQuery{})

	want := []string{"first", "second", "third", "older"}
	if !equalStrings(descriptions(got.Log), want) {
		t.Errorf("Expected %v, got %v", want, descriptions(got.Log))
	}
}

func TestAssembleLog_LimitSelectsByPositionBeforeSorting(t *testing.T) {
	user := newTestUser(
		ex("old", "2020-01-01", 1),
		ex("new", "2024-01-01", 1),
		ex("newest", "2025-01-01", 1),
	)

	got := AssembleLog(user, LogQuery{Limit: intPtr(2)})

	want := []string{"new", "old"}
	if !equalStrings(descriptions(got.Log), want) {
		t.Errorf("Expected %v, got %v", want, descriptions(got.Log))
	}
	if got.Count != 3 {
		t.Errorf("Expected count 3, got %d", got.Count)
	}
}

func TestAssembleLog_LimitIsClamped(t *testing.T) {
	user := newTestUser(ex("a", "2023-01-01", 1), ex("b", "2023-01-02", 1))

	tests := []struct {
		name  string
		limit *int
		want  int
	}{
		{"absent", nil, 2},
		{"larger than log", intPtr(10), 2},
		{"exact", intPtr(2), 2},
		{"one", intPtr(1), 1},
		{"zero", intPtr(0), 0},
		{"negative", intPtr(-3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssembleLog(user, LogQuery{Limit: tt.limit})
			if len(got.Log) != tt.want {
				t.Errorf("Expected %d entries, got %d", tt.want, len(got.Log))
			}
			if got.Log == nil {
				t.Errorf("Log must be an empty slice, not nil")
			}
		})
	}
}

func TestAssembleLog_CountLargerThanStoredExercises(t *testing.T) {
	user := newTestUser(ex("a", "2023-01-01", 1))
	user.Count = 5 // Inconsistent legacy document

	got := AssembleLog(user, LogQuery{})
	if len(got.Log) != 1 || got.Count != 5 {
		t.Errorf("Expected 1 entry and count 5, got %d entries and count %d", len(got.Log), got.Count)
	}
}

func TestAssembleLog_RangeFilterIsInclusive(t *testing.T) {
	user := newTestUser(
		ex("before", "2023-01-09", 1),
		ex("from", "2023-01-10", 1),
		ex("mid", "2023-01-15", 1),
		ex("to", "2023-01-20", 1),
		ex("after", "2023-01-21", 1),
	)

	got := AssembleLog(user, LogQuery{From: "2023-01-10", To: "2023-01-20"})

	want := []string{"to", "mid", "from"}
	if !equalStrings(descriptions(got.Log), want) {
		t.Errorf("Expected %v, got %v", want, descriptions(got.Log))
	}
	if got.Count != 5 {
		t.Errorf("Count must ignore filtering, got %d", got.Count)
	}
}

func TestAssembleLog_RangeNeedsBothBounds(t *testing.T) {
	user := newTestUser(ex("a", "2020-01-01", 1), ex("b", "2023-01-01", 1))

	for _, q := range []LogQuery{{From: "2022-01-01"}, {To: "2021-01-01"}} {
		got := AssembleLog(user, q)
		if len(got.Log) != 2 {
			t.Errorf("Query %+v: expected unfiltered log of 2, got %d", q, len(got.Log))
		}
	}
}

func TestAssembleLog_UnparseableBoundExcludesEverything(t *testing.T) {
	user := newTestUser(ex("a", "2023-01-01", 1))

	got := AssembleLog(user, LogQuery{From: "yesterday", To: "2024-01-01"})
	if len(got.Log) != 0 {
		t.Errorf("Expected empty log, got %v", got.Log)
	}
}

func TestAssembleLog_OverflowingDaysRollIntoNextMonth(t *testing.T) {
	user := newTestUser(
		ex("mar01", "2024-03-01", 1),
		ex("feb31", "2024-02-31", 1),
		ex("feb01", "2024-02-01", 1),
	)

	got := AssembleLog(user, LogQuery{})
	want := []string{"feb31", "mar01", "feb01"}
	if !equalStrings(descriptions(got.Log), want) {
		t.Errorf("Expected %v, got %v", want, descriptions(got.Log))
	}
	if got.Log[0].Date != "Sat Mar 02 2024" {
		t.Errorf("Expected Sat Mar 02 2024, got %q", got.Log[0].Date)
	}

	filtered := AssembleLog(user, LogQuery{From: "2024-03-01", To: "2024-03-05"})
	if !equalStrings(descriptions(filtered.Log), []string{"feb31", "mar01"}) {
		t.Errorf("Expected rolled-over date inside range, got %v", descriptions(filtered.Log))
	}

	bound := AssembleLog(user, LogQuery{From: "2024-02-30", To: "2024-03-01"})
	if !equalStrings(descriptions(bound.Log), []string{"mar01"}) {
		t.Errorf("Bounds must roll over too, got %v", descriptions(bound.Log))
	}
}

func TestAssembleLog_UnparseableStoredDates(t *testing.T) {
	user := newTestUser(
		ex("legacy", "last tuesday", 1),
		ex("real", "2024-02-01", 1),
	)

	got := AssembleLog(user, LogQuery{})
	want := []string{"real", "legacy"}
	if !equalStrings(descriptions(got.Log), want) {
		t.Errorf("Expected %v, got %v", want, descriptions(got.Log))
	}
	if got.Log[1].Date != InvalidDate {
		t.Errorf("Expected %q, got %q", InvalidDate, got.Log[1].Date)
	}

	filtered := AssembleLog(user, LogQuery{From: "2000-01-01", To: "2100-01-01"})
	if !equalStrings(descriptions(filtered.Log), []string{"real"}) {
		t.Errorf("Unparseable dates must not pass a range filter, got %v", descriptions(filtered.Log))
	}
}

func TestAssembleLog_DurationCoercion(t *testing.T) {
	user := newTestUser(
		domain.Exercise{Description: "frac", Date: "2023-01-03", Duration: floatPtr(30.9)},
		domain.Exercise{Description: "nan", Date: "2023-01-02", Duration: nil},
		domain.Exercise{Description: "int", Date: "2023-01-01", Duration: floatPtr(45)},
	)

	got := AssembleLog(user, LogQuery{})

	if got.Log[0].Duration == nil || *got.Log[0].Duration != 30 {
		t.Errorf("Expected truncated 30, got %v", got.Log[0].Duration)
	}
	if got.Log[1].Duration != nil {
		t.Errorf("Expected nil duration, got %v", *got.Log[1].Duration)
	}
	if got.Log[2].Duration == nil || *got.Log[2].Duration != 45 {
		t.Errorf("Expected 45, got %v", got.Log[2].Duration)
	}
}

func TestAssembleLog_CarriesIdentity(t *testing.T) {
	user := newTestUser()
	got := AssembleLog(user, LogQuery{})

	if got.ID != user.ID || got.Username != "alice" || got.Count != 0 || len(got.Log) != 0 {
		t.Errorf("Unexpected log: %+v", got)
	}
}
