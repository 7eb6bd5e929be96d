package availability

import (
	"context"

	"mentorhub/internal/domain"
)

// AvailabilityRepository defines persistence for recurring weekly rules.
type AvailabilityRepository interface {
	Create(ctx context.Context, rule *domain.AvailabilityRule) error
	ListActive(ctx context.Context, mentorID int64) ([]domain.AvailabilityRule, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

// MentorDirectory resolves mentors before rules are accepted against them.
type MentorDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Mentor, error)
}
