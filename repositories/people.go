package repositories

import (
	"context"

	"dentalflow-backend/models"

	"gorm.io/gorm"
)

type PatientFilter struct {
	DentistID *uint
}

type PatientRepository struct {
	store[models.Patient]
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{store[models.Patient]{db: db, preloads: []string{"Dentist"}}}
}

func (r *PatientRepository) List(ctx context.Context, f PatientFilter) ([]models.Patient, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		if f.DentistID != nil {
			q = q.Where("dentist_id = ?", *f.DentistID)
		}
		return q
	}, "last_name, first_name, id")
}

type DentistRepository struct {
	store[models.Dentist]
}

func NewDentistRepository(db *gorm.DB) *DentistRepository {
	return &DentistRepository{store[models.Dentist]{db: db}}
}

func (r *DentistRepository) List(ctx context.Context) ([]models.Dentist, error) {
	return r.find(ctx, nil, "last_name, first_name, id")
}
