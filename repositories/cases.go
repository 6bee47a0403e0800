package repositories

import (
	"context"

	"dentalflow-backend/models"

	"gorm.io/gorm"
)

type CaseFilter struct {
	Status    string
	DentistID *uint
}

type CaseRepository struct {
	store[models.Case]
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{store[models.Case]{db: db, preloads: []string{"Patient", "Dentist"}}}
}

func (r *CaseRepository) List(ctx context.Context, f CaseFilter) ([]models.Case, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		if f.DentistID != nil {
			q = q.Where("dentist_id = ?", *f.DentistID)
		}
		return q
	}, "created_at DESC, id DESC")
}

func (r *CaseRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var n int64
	if err := r.conn(ctx).Model(&models.Case{}).Where("case_number = ?", number).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}
