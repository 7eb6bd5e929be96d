package availability

import (
	"context"
	"time"

	"mentorhub/internal/domain"
)

type Service struct {
	rules   AvailabilityRepository
	mentors MentorDirectory
}

func NewService(rules AvailabilityRepository, mentors MentorDirectory) *Service {
	return &Service{
		rules:   rules,
		mentors: mentors,
	}
}

// ListRules returns the mentor's active rules ordered by weekday and start.
func (s *Service) ListRules(ctx context.Context, mentorID int64) ([]domain.AvailabilityRule, error) {
	if err := s.requireMentor(ctx, mentorID); err != nil {
		return nil, err
	}
	return s.rules.ListActive(ctx, mentorID)
}

// SlotsForDate expands the mentor's rules into bookable slots for one date.
func (s *Service) SlotsForDate(ctx context.Context, mentorID int64, dateStr string) ([]Slot, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	if err := s.requireMentor(ctx, mentorID); err != nil {
		return nil, err
	}

	rules, err := s.rules.ListActive(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	return GenerateSlots(rules, date), nil
}

// CreateRule validates and persists a new weekly window. Overlap with the
// mentor's existing rules is allowed; overlapping rules simply produce
// duplicate slots.
func (s *Service) CreateRule(ctx context.Context, mentorID int64, req CreateRuleRequest) (*domain.AvailabilityRule, error) {
	if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return nil, ErrValidation
	}

	start, err := parseHHMM(req.StartTime)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := parseHHMM(req.EndTime)
	if err != nil {
		return nil, ErrValidation
	}
	if start >= end {
		return nil, ErrValidation
	}

	if err := s.requireMentor(ctx, mentorID); err != nil {
		return nil, err
	}

	rule := &domain.AvailabilityRule{
		MentorID:  mentorID,
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Active:    true,
	}

	if err := s.rules.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// DeleteRule soft-deletes a rule; the row stays for audit.
func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	ok, err := s.rules.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) requireMentor(ctx context.Context, mentorID int64) error {
	mentor, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		return err
	}
	if mentor == nil {
		return ErrMentorNotFound
	}
	return nil
}
