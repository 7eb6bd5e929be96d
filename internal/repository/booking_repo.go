package repository

import (
	"context"
	"errors"
	"time"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	MentorID       int64     `gorm:"column:mentor_id;index"`
	ApplicantName  string    `gorm:"column:applicant_name"`
	ApplicantEmail string    `gorm:"column:applicant_email"`
	Phone          *string   `gorm:"column:phone"`
	Company        *string   `gorm:"column:company"`
	MeetingDate    string    `gorm:"column:meeting_date"`
	MeetingTime    string    `gorm:"column:meeting_time"`
	Duration       int       `gorm:"column:duration"`
	Topic          string    `gorm:"column:topic"`
	Message        *string   `gorm:"column:message"`
	Status         string    `gorm:"column:status"`
	ReviewNotes    *string   `gorm:"column:review_notes"`
	ReviewedBy     *string   `gorm:"column:reviewed_by"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func strOrEmpty(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:             m.ID,
		MentorID:       m.MentorID,
		ApplicantName:  m.ApplicantName,
		ApplicantEmail: m.ApplicantEmail,
		Phone:          strOrEmpty(m.Phone),
		Company:        strOrEmpty(m.Company),
		MeetingDate:    m.MeetingDate,
		MeetingTime:    m.MeetingTime,
		Duration:       m.Duration,
		Topic:          m.Topic,
		Message:        strOrEmpty(m.Message),
		Status:         domain.BookingStatus(m.Status),
		ReviewNotes:    strOrEmpty(m.ReviewNotes),
		ReviewedBy:     strOrEmpty(m.ReviewedBy),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:             b.ID,
		MentorID:       b.MentorID,
		ApplicantName:  b.ApplicantName,
		ApplicantEmail: b.ApplicantEmail,
		Phone:          strOrNil(b.Phone),
		Company:        strOrNil(b.Company),
		MeetingDate:    b.MeetingDate,
		MeetingTime:    b.MeetingTime,
		Duration:       b.Duration,
		Topic:          b.Topic,
		Message:        strOrNil(b.Message),
		Status:         string(b.Status),
		ReviewNotes:    strOrNil(b.ReviewNotes),
		ReviewedBy:     strOrNil(b.ReviewedBy),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// Create persists a new booking. The status is forced to pending here so no
// caller-supplied value can leak through, and review fields start empty.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	m.Status = string(domain.BookingPending)
	m.ReviewNotes = nil
	m.ReviewedBy = nil

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// GetByID returns nil, nil when the booking does not exist.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByMentor(ctx context.Context, mentorID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("mentor_id = ?", mentorID).
		Order("meeting_date desc, meeting_time desc").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models), nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Order("meeting_date desc, meeting_time desc").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models), nil
}

func toDomainBookings(models []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out
}

// UpdateReview sets the review fields and returns the updated booking, or
// nil, nil when the booking does not exist. Any status may replace any other;
// the admin workflow is deliberately permissive.
func (r *BookingRepository) UpdateReview(ctx context.Context, id int64, status domain.BookingStatus, reviewNotes, reviewedBy string) (*domain.Booking, error) {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if reviewNotes != "" {
		updates["review_notes"] = reviewNotes
	}
	if reviewedBy != "" {
		updates["reviewed_by"] = reviewedBy
	}

	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
