package repository

import (
	"context"
	"time"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

type availabilityRuleModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	MentorID  int64     `gorm:"column:mentor_id;index"`
	DayOfWeek int       `gorm:"column:day_of_week"`
	StartTime string    `gorm:"column:start_time"`
	EndTime   string    `gorm:"column:end_time"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (availabilityRuleModel) TableName() string { return "availability_rules" }

func toDomainRule(m availabilityRuleModel) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:        m.ID,
		MentorID:  m.MentorID,
		DayOfWeek: m.DayOfWeek,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}

func toRuleModel(r *domain.AvailabilityRule) availabilityRuleModel {
	return availabilityRuleModel{
		ID:        r.ID,
		MentorID:  r.MentorID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
	}
}

func (r *AvailabilityRepository) Create(ctx context.Context, rule *domain.AvailabilityRule) error {
	m := toRuleModel(rule)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rule = *toDomainRule(m)
	return nil
}

// ListActive returns the mentor's live rules ordered by weekday, then start
// time, so weekly schedules render deterministically regardless of insertion
// order.
func (r *AvailabilityRepository) ListActive(ctx context.Context, mentorID int64) ([]domain.AvailabilityRule, error) {
	var models []availabilityRuleModel
	tx := r.db.WithContext(ctx).
		Where("mentor_id = ? AND active = ?", mentorID, true).
		Order("day_of_week asc, start_time asc").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.AvailabilityRule, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRule(m))
	}
	return out, nil
}

// SoftDelete flips the active flag and reports whether a live rule was hit.
// Rules are never hard-deleted.
func (r *AvailabilityRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&availabilityRuleModel{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
