package mentor

import (
	"context"

	"mentorhub/internal/domain"
	"mentorhub/internal/pkg/validator"
)

// MentorRepository defines persistence for the mentor directory.
type MentorRepository interface {
	Create(ctx context.Context, mentor *domain.Mentor) error
	GetByID(ctx context.Context, id int64) (*domain.Mentor, error)
	ListActive(ctx context.Context) ([]domain.Mentor, error)
}

type Service struct {
	mentors MentorRepository
}

func NewService(mentors MentorRepository) *Service {
	return &Service{mentors: mentors}
}

func (s *Service) Create(ctx context.Context, req CreateMentorRequest) (*domain.Mentor, error) {
	m := &domain.Mentor{
		Name:   req.Name,
		Title:  req.Title,
		Email:  req.Email,
		Active: true,
	}

	if errs := validator.Validate(m); errs != nil {
		return nil, ErrValidation
	}

	if err := s.mentors.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Mentor, error) {
	m, err := s.mentors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Mentor, error) {
	return s.mentors.ListActive(ctx)
}
