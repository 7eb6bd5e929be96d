package booking

// SubmitBookingRequest is the public booking form payload. MeetingTime may
// arrive either as "HH:MM" or as a slot range "HH:MM - HH:MM"; the start
// boundary is what gets stored. Any status the caller supplies is ignored.
type SubmitBookingRequest struct {
	ApplicantName  string `json:"applicant_name" binding:"required"`
	ApplicantEmail string `json:"applicant_email" binding:"required"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	MeetingDate    string `json:"meeting_date" binding:"required"`
	MeetingTime    string `json:"meeting_time" binding:"required"`
	Duration       int    `json:"duration" binding:"required"`
	Topic          string `json:"topic" binding:"required"`
	Message        string `json:"message"`
}

// ReviewBookingRequest is the editor-facing status update payload.
type ReviewBookingRequest struct {
	Status      string `json:"status" binding:"required"`
	ReviewNotes string `json:"review_notes"`
}
