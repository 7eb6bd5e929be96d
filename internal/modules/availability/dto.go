package availability

// CreateRuleRequest is the editor-facing payload for a new weekly window.
// DayOfWeek is a pointer so that Sunday (0) survives binding.
type CreateRuleRequest struct {
	DayOfWeek *int   `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
