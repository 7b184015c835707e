// internal/domain/exercise.go
package domain

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one logged activity embedded in a User document.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Description string             `bson:"description" json:"description"`
	// Duration is nil when the submitted value was not a number.
	Duration *float64 `bson:"duration" json:"duration"`
	// Date is always YYYY-MM-DD at rest.
	Date string `bson:"date" json:"date"`
}

// IntDuration truncates the stored duration to an integer, saturating at
// the int range. nil stands in for NaN and renders as JSON null.
func (e *Exercise) IntDuration() *int {
	if e.Duration == nil || math.IsNaN(*e.Duration) {
		return nil
	}
	var d int
	switch f := *e.Duration; {
	case f >= float64(math.MaxInt):
		d = math.MaxInt
	case f <= float64(math.MinInt):
		d = math.MinInt
	default:
		d = int(math.Trunc(f))
	}
	return &d
}

// LogEntry is the display form of an Exercise. It is never persisted.
type LogEntry struct {
	Description string `json:"description"`
	Duration    *int   `json:"duration"`
	Date        string `json:"date"` // e.g. "Mon Jan 01 2024"
}
