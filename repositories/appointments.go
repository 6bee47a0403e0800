package repositories

import (
	"context"
	"time"

	"dentalflow-backend/models"

	"gorm.io/gorm"
)

// AppointmentFilter narrows a listing; From and To are inclusive calendar dates.
type AppointmentFilter struct {
	PatientID *uint
	DentistID *uint
	CaseID    *uint
	From      *time.Time
	To        *time.Time
}

type AppointmentRepository struct {
	store[models.Appointment]
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{store[models.Appointment]{db: db, preloads: []string{"Patient", "Dentist", "Case"}}}
}

func (r *AppointmentRepository) List(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		if f.PatientID != nil {
			q = q.Where("patient_id = ?", *f.PatientID)
		}
		if f.DentistID != nil {
			q = q.Where("dentist_id = ?", *f.DentistID)
		}
		if f.CaseID != nil {
			q = q.Where("case_id = ?", *f.CaseID)
		}
		if f.From != nil {
			q = q.Where("appointment_date >= ?", f.From.Format("2006-01-02"))
		}
		if f.To != nil {
			q = q.Where("appointment_date <= ?", f.To.Format("2006-01-02"))
		}
		return q
	}, "appointment_date, appointment_time, id")
}
