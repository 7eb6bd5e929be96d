package domain

import "time"

// AvailabilityRule is a recurring weekly window during which a mentor
// accepts meetings. DayOfWeek follows time.Weekday numbering (0 = Sunday).
// StartTime/EndTime are wall-clock "HH:MM" strings, StartTime < EndTime.
// Rules are soft-deleted via Active and never mutated otherwise.
type AvailabilityRule struct {
	ID        int64     `json:"id"`
	MentorID  int64     `json:"mentor_id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
