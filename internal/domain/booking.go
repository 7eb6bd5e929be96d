package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ValidBookingStatus reports whether s is one of the four known statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking is a meeting request submitted by an applicant against a mentor.
// MeetingDate is "YYYY-MM-DD", MeetingTime is the "HH:MM" start of the
// chosen slot. Duration is in minutes and independent of slot granularity.
type Booking struct {
	ID             int64         `json:"id"`
	MentorID       int64         `json:"mentor_id"`
	ApplicantName  string        `json:"applicant_name" validate:"required"`
	ApplicantEmail string        `json:"applicant_email" validate:"required,email"`
	Phone          string        `json:"phone,omitempty"`
	Company        string        `json:"company,omitempty"`
	MeetingDate    string        `json:"meeting_date" validate:"required"`
	MeetingTime    string        `json:"meeting_time" validate:"required"`
	Duration       int           `json:"duration" validate:"required,gt=0"`
	Topic          string        `json:"topic" validate:"required"`
	Message        string        `json:"message,omitempty"`
	Status         BookingStatus `json:"status"`
	ReviewNotes    string        `json:"review_notes,omitempty"`
	ReviewedBy     string        `json:"reviewed_by,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
