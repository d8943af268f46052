package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format accepted on the wire (from/to/date params).
const DateLayout = "2006-01-02"

// dateStringLayout renders a stored date the way the log endpoints expose it,
// e.g. "Mon Jan 01 2024".
const dateStringLayout = "Mon Jan 02 2006"

// ExerciseDB represents an exercise record in the database
type ExerciseDB struct {
	ExerciseID  uuid.UUID `json:"id" db:"exercise_id"`       // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`      // Owning user, checked at creation time only
	Username    string    `json:"username" db:"username"`    // Denormalized from the owner at creation time
	Description string    `json:"description" db:"description"`
	Duration    int       `json:"duration" db:"duration_min"` // Whole minutes
	Date        time.Time `json:"date" db:"exercise_date"`    // Day granularity, UTC
}

// DateString renders the exercise date as weekday+month+day+year text.
func (e ExerciseDB) DateString() string {
	return e.Date.Format(dateStringLayout)
}

// LogSummary is the result of a log query for one user: the resolved owner
// plus the selected exercises in insertion order.
type LogSummary struct {
	UserID   uuid.UUID
	Username string
	Entries  []ExerciseDB
}
