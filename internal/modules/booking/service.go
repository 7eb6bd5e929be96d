package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"mentorhub/internal/domain"
	"mentorhub/internal/pkg/mailer"
	"mentorhub/internal/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	bookings   BookingRepository
	mentors    MentorDirectory
	mail       mailer.Mailer
	adminEmail string
}

func NewService(bookings BookingRepository, mentors MentorDirectory, mail mailer.Mailer, adminEmail string) *Service {
	return &Service{
		bookings:   bookings,
		mentors:    mentors,
		mail:       mail,
		adminEmail: adminEmail,
	}
}

// SubmitBooking validates and persists a public booking request, then sends
// best-effort notifications to the applicant, the mentor (when an email is
// on file) and the admin inbox. Notification failures are logged and never
// surfaced: the persisted booking is the source of truth.
//
// Two submissions for the same mentor/date/time both succeed. There is no
// conflict check here on purpose; if double-booking ever has to be rejected,
// this is the single seam to add the policy at.
func (s *Service) SubmitBooking(ctx context.Context, mentorID int64, req SubmitBookingRequest) (*domain.Booking, error) {
	mentor, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	meetingTime := slotStart(req.MeetingTime)
	if _, err := time.Parse("15:04", meetingTime); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse("2006-01-02", req.MeetingDate); err != nil {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		MentorID:       mentorID,
		ApplicantName:  strings.TrimSpace(req.ApplicantName),
		ApplicantEmail: strings.TrimSpace(req.ApplicantEmail),
		Phone:          strings.TrimSpace(req.Phone),
		Company:        strings.TrimSpace(req.Company),
		MeetingDate:    req.MeetingDate,
		MeetingTime:    meetingTime,
		Duration:       req.Duration,
		Topic:          strings.TrimSpace(req.Topic),
		Message:        req.Message,
		Status:         domain.BookingPending,
	}

	if errs := validator.Validate(b); errs != nil {
		return nil, ErrValidation
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// Mentor row may vanish between the lookup and the insert.
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23503" {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}

	s.notify(ctx, "applicant", b.ApplicantEmail, func() (string, string, string) {
		return applicantConfirmationEmail(b, mentor)
	})
	if mentor.Email != "" {
		s.notify(ctx, "mentor", mentor.Email, func() (string, string, string) {
			return mentorAlertEmail(b, mentor)
		})
	}
	if s.adminEmail != "" {
		s.notify(ctx, "admin", s.adminEmail, func() (string, string, string) {
			return adminAlertEmail(b, mentor)
		})
	}

	return b, nil
}

// ReviewBooking sets the status and review metadata. Any status from the
// closed set may replace any other: the admin workflow stays flexible and
// transition rules, if ever needed, belong here ahead of the store write.
// The applicant is notified best-effort after the update commits.
func (s *Service) ReviewBooking(ctx context.Context, id int64, req ReviewBookingRequest, reviewedBy string) (*domain.Booking, error) {
	status := domain.BookingStatus(req.Status)
	if !domain.ValidBookingStatus(status) {
		return nil, ErrValidation
	}

	b, err := s.bookings.UpdateReview(ctx, id, status, req.ReviewNotes, reviewedBy)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	mentor, err := s.mentors.GetByID(ctx, b.MentorID)
	if err == nil && mentor != nil {
		s.notify(ctx, "applicant", b.ApplicantEmail, func() (string, string, string) {
			return statusUpdateEmail(b, mentor)
		})
	}

	return b, nil
}

func (s *Service) ListByMentor(ctx context.Context, mentorID int64) ([]domain.Booking, error) {
	mentor, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}
	return s.bookings.ListByMentor(ctx, mentorID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *Service) DeleteBooking(ctx context.Context, id int64) error {
	ok, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// notify sends one email and swallows the outcome, logging failures.
func (s *Service) notify(ctx context.Context, kind, to string, build func() (string, string, string)) {
	if s.mail == nil || to == "" {
		return
	}
	subject, htmlBody, textBody := build()
	if err := s.mail.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		log.Printf("booking notification failed kind=%s to=%s err=%v", kind, to, err)
	}
}

// slotStart reduces a "HH:MM - HH:MM" slot range to its start boundary.
// Plain "HH:MM" input passes through unchanged.
func slotStart(meetingTime string) string {
	if i := strings.Index(meetingTime, "-"); i >= 0 {
		meetingTime = meetingTime[:i]
	}
	return strings.TrimSpace(meetingTime)
}
