package booking

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"mentorhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
	nextID int64
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = atomic.AddInt64(&m.nextID, 1) // simulate DB insert
		b.Status = domain.BookingPending     // the store forces pending
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByMentor(ctx context.Context, mentorID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateReview(ctx context.Context, id int64, status domain.BookingStatus, reviewNotes, reviewedBy string) (*domain.Booking, error) {
	args := m.Called(ctx, id, status, reviewNotes, reviewedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockMentorDirectory struct {
	mock.Mock
}

func (m *MockMentorDirectory) GetByID(ctx context.Context, id int64) (*domain.Mentor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mentor), args.Error(1)
}

// recordingMailer captures sends; fail makes every delivery attempt error.
type recordingMailer struct {
	fail bool
	sent []string // recipients in send order
}

func (m *recordingMailer) Send(_ context.Context, to, _, _, _ string) error {
	m.sent = append(m.sent, to)
	if m.fail {
		return errors.New("smtp: connection refused")
	}
	return nil
}

func validRequest() SubmitBookingRequest {
	return SubmitBookingRequest{
		ApplicantName:  "Ada",
		ApplicantEmail: "ada@example.com",
		MeetingDate:    "2026-01-05",
		MeetingTime:    "09:00",
		Duration:       30,
		Topic:          "Strategy",
	}
}

func mentorDana() *domain.Mentor {
	return &domain.Mentor{ID: 1, Name: "Dana", Email: "dana@example.edu", Active: true}
}

func TestSubmitBooking_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	mentors := new(MockMentorDirectory)
	mail := &recordingMailer{}

	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(bookings, mentors, mail, "admin@example.edu")

	b, err := service.SubmitBooking(context.Background(), 1, validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "09:00", b.MeetingTime)
	// applicant, mentor, admin
	assert.Equal(t, []string{"ada@example.com", "dana@example.edu", "admin@example.edu"}, mail.sent)
}

func TestSubmitBooking_StatusForcedPending(t *testing.T) {
	bookings := new(MockBookingRepository)
	mentors := new(MockMentorDirectory)

	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingPending && b.ReviewNotes == "" && b.ReviewedBy == ""
	})).Return(nil)

	service := NewService(bookings, mentors, &recordingMailer{}, "")

	b, err := service.SubmitBooking(context.Background(), 1, validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	bookings.AssertExpectations(t)
}

func TestSubmitBooking_SlotRangeMeetingTime(t *testing.T) {
	bookings := new(MockBookingRepository)
	mentors := new(MockMentorDirectory)

	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(bookings, mentors, &recordingMailer{}, "")

	req := validRequest()
	req.MeetingTime = "09:00 - 09:30"

	b, err := service.SubmitBooking(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, "09:00", b.MeetingTime)
}

func TestSubmitBooking_MentorNotFound(t *testing.T) {
	mentors := new(MockMentorDirectory)
	mentors.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

	service := NewService(new(MockBookingRepository), mentors, &recordingMailer{}, "")

	_, err := service.SubmitBooking(context.Background(), 404, validRequest())
	assert.ErrorIs(t, err, ErrMentorNotFound)
}

func TestSubmitBooking_InvalidEmail(t *testing.T) {
	mentors := new(MockMentorDirectory)
	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)

	service := NewService(new(MockBookingRepository), mentors, &recordingMailer{}, "")

	req := validRequest()
	req.ApplicantEmail = "not-an-email"

	_, err := service.SubmitBooking(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitBooking_MissingTopic(t *testing.T) {
	mentors := new(MockMentorDirectory)
	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)

	service := NewService(new(MockBookingRepository), mentors, &recordingMailer{}, "")

	req := validRequest()
	req.Topic = "   "

	_, err := service.SubmitBooking(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitBooking_BadMeetingTime(t *testing.T) {
	mentors := new(MockMentorDirectory)
	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)

	service := NewService(new(MockBookingRepository), mentors, &recordingMailer{}, "")

	req := validRequest()
	req.MeetingTime = "quarter past nine"

	_, err := service.SubmitBooking(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitBooking_NotificationFailuresSwallowed(t *testing.T) {
	bookings := new(MockBookingRepository)
	mentors := new(MockMentorDirectory)
	mail := &recordingMailer{fail: true}

	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(bookings, mentors, mail, "admin@example.edu")

	b, err := service.SubmitBooking(context.Background(), 1, validRequest())

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, domain.BookingPending, b.Status)
	// all three attempts were made even though each failed
	assert.Len(t, mail.sent, 3)
}

func TestSubmitBooking_MentorWithoutEmailSkipped(t *testing.T) {
	bookings := new(MockBookingRepository)
	mentors := new(MockMentorDirectory)
	mail := &recordingMailer{}

	m := mentorDana()
	m.Email = ""
	mentors.On("GetByID", mock.Anything, int64(1)).Return(m, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(bookings, mentors, mail, "admin@example.edu")

	_, err := service.SubmitBooking(context.Background(), 1, validRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"ada@example.com", "admin@example.edu"}, mail.sent)
}

func TestSubmitBooking_DoubleBookingAllowed(t *testing.T) {
	// Two identical submissions both persist; there is no conflict check.
	bookings := new(MockBookingRepository)
	mentors := new(MockMentorDirectory)

	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil).Twice()

	service := NewService(bookings, mentors, &recordingMailer{}, "")

	first, err := service.SubmitBooking(context.Background(), 1, validRequest())
	require.NoError(t, err)
	second, err := service.SubmitBooking(context.Background(), 1, validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.BookingPending, first.Status)
	assert.Equal(t, domain.BookingPending, second.Status)
	bookings.AssertExpectations(t)
}

func TestReviewBooking_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	mentors := new(MockMentorDirectory)
	mail := &recordingMailer{}

	updated := &domain.Booking{
		ID:             5,
		MentorID:       1,
		ApplicantEmail: "ada@example.com",
		ApplicantName:  "Ada",
		Status:         domain.BookingConfirmed,
		ReviewedBy:     "user:2",
	}
	bookings.On("UpdateReview", mock.Anything, int64(5), domain.BookingConfirmed, "looks good", "user:2").Return(updated, nil)
	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)

	service := NewService(bookings, mentors, mail, "")

	b, err := service.ReviewBooking(context.Background(), 5, ReviewBookingRequest{
		Status:      "confirmed",
		ReviewNotes: "looks good",
	}, "user:2")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, "user:2", b.ReviewedBy)
	assert.Equal(t, []string{"ada@example.com"}, mail.sent)
}

func TestReviewBooking_UnknownStatus(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockMentorDirectory), &recordingMailer{}, "")

	_, err := service.ReviewBooking(context.Background(), 5, ReviewBookingRequest{Status: "approved"}, "user:2")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReviewBooking_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("UpdateReview", mock.Anything, int64(404), domain.BookingCancelled, "", "user:2").Return(nil, nil)

	service := NewService(bookings, new(MockMentorDirectory), &recordingMailer{}, "")

	_, err := service.ReviewBooking(context.Background(), 404, ReviewBookingRequest{Status: "cancelled"}, "user:2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewBooking_NotificationFailureDoesNotRollBack(t *testing.T) {
	bookings := new(MockBookingRepository)
	mentors := new(MockMentorDirectory)

	updated := &domain.Booking{ID: 5, MentorID: 1, ApplicantEmail: "ada@example.com", Status: domain.BookingCancelled}
	bookings.On("UpdateReview", mock.Anything, int64(5), domain.BookingCancelled, "", "user:2").Return(updated, nil)
	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)

	service := NewService(bookings, mentors, &recordingMailer{fail: true}, "")

	b, err := service.ReviewBooking(context.Background(), 5, ReviewBookingRequest{Status: "cancelled"}, "user:2")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestListByMentor_Idempotent(t *testing.T) {
	bookings := new(MockBookingRepository)
	mentors := new(MockMentorDirectory)

	rows := []domain.Booking{
		{ID: 2, MentorID: 1, MeetingDate: "2026-01-12", MeetingTime: "09:30"},
		{ID: 1, MentorID: 1, MeetingDate: "2026-01-05", MeetingTime: "09:00"},
	}
	mentors.On("GetByID", mock.Anything, int64(1)).Return(mentorDana(), nil)
	bookings.On("ListByMentor", mock.Anything, int64(1)).Return(rows, nil)

	service := NewService(bookings, mentors, &recordingMailer{}, "")

	first, err := service.ListByMentor(context.Background(), 1)
	require.NoError(t, err)
	second, err := service.ListByMentor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("Delete", mock.Anything, int64(404)).Return(false, nil)

	service := NewService(bookings, new(MockMentorDirectory), &recordingMailer{}, "")

	err := service.DeleteBooking(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
