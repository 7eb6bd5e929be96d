package repository

import (
	"context"
	"errors"
	"time"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
)

type MentorRepository struct {
	db *gorm.DB
}

func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{db: db}
}

type mentorModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Title     string    `gorm:"column:title"`
	Email     string    `gorm:"column:email"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (mentorModel) TableName() string { return "mentors" }

func toDomainMentor(m mentorModel) *domain.Mentor {
	return &domain.Mentor{
		ID:        m.ID,
		Name:      m.Name,
		Title:     m.Title,
		Email:     m.Email,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toMentorModel(m *domain.Mentor) mentorModel {
	return mentorModel{
		ID:        m.ID,
		Name:      m.Name,
		Title:     m.Title,
		Email:     m.Email,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *MentorRepository) Create(ctx context.Context, mentor *domain.Mentor) error {
	m := toMentorModel(mentor)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*mentor = *toDomainMentor(m)
	return nil
}

// GetByID returns nil, nil when the mentor does not exist.
func (r *MentorRepository) GetByID(ctx context.Context, id int64) (*domain.Mentor, error) {
	var m mentorModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainMentor(m), nil
}

func (r *MentorRepository) ListActive(ctx context.Context) ([]domain.Mentor, error) {
	var models []mentorModel
	tx := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name asc").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Mentor, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainMentor(m))
	}
	return out, nil
}
