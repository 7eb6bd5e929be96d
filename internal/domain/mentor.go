package domain

import "time"

// Mentor is a directory entry applicants can book meetings with.
type Mentor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Title     string    `json:"title,omitempty"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
