package mentor

type CreateMentorRequest struct {
	Name  string `json:"name" binding:"required"`
	Title string `json:"title"`
	Email string `json:"email"`
}
