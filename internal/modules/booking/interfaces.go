package booking

import (
	"context"

	"mentorhub/internal/domain"
)

// BookingRepository defines persistence for booking records.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateReview(ctx context.Context, id int64, status domain.BookingStatus, reviewNotes, reviewedBy string) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// MentorDirectory resolves the mentor a booking targets and supplies the
// identity used in notification templates.
type MentorDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Mentor, error)
}
