package services

import (
	"context"

	"dentalflow-backend/dtos"
	"dentalflow-backend/models"
	"dentalflow-backend/repositories"
)

type AppointmentService struct {
	appointments AppointmentStore
	patients     PatientStore
	dentists     DentistStore
	cases        CaseStore
}

func NewAppointmentService(appointments AppointmentStore, patients PatientStore, dentists DentistStore, cases CaseStore) *AppointmentService {
	return &AppointmentService{appointments: appointments, patients: patients, dentists: dentists, cases: cases}
}

// List returns appointments matching f ordered by date and time. A range
// whose end precedes its start is rejected.
func (s *AppointmentService) List(ctx context.Context, f repositories.AppointmentFilter) ([]dtos.Appointment, error) {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, invalid("endDate", "must not be before startDate")
	}
	rows, err := s.appointments.List(ctx, f)
	if err != nil {
		return nil, fromStore(err, "Appointment", nil)
	}
	out := make([]dtos.Appointment, 0, len(rows))
	for i := range rows {
		out = append(out, toAppointmentDTO(&rows[i]))
	}
	return out, nil
}

func (s *AppointmentService) Get(ctx context.Context, id uint) (dtos.Appointment, error) {
	a, err := s.appointments.Get(ctx, id)
	if err != nil {
		return dtos.Appointment{}, fromStore(err, "Appointment", id)
	}
	return toAppointmentDTO(a), nil
}

func (s *AppointmentService) Create(ctx context.Context, in dtos.Appointment) (dtos.Appointment, error) {
	var a models.Appointment
	if err := applyAppointment(in, &a); err != nil {
		return dtos.Appointment{}, err
	}
	if err := s.resolve(ctx, &a); err != nil {
		return dtos.Appointment{}, err
	}
	if err := s.appointments.Create(ctx, &a); err != nil {
		return dtos.Appointment{}, fromStore(err, "Appointment", nil)
	}
	return toAppointmentDTO(&a), nil
}

func (s *AppointmentService) Update(ctx context.Context, id uint, in dtos.Appointment) (dtos.Appointment, error) {
	a, err := s.appointments.Get(ctx, id)
	if err != nil {
		return dtos.Appointment{}, fromStore(err, "Appointment", id)
	}
	if err := applyAppointment(in, a); err != nil {
		return dtos.Appointment{}, err
	}
	if err := s.resolve(ctx, a); err != nil {
		return dtos.Appointment{}, err
	}
	if err := s.appointments.Update(ctx, a); err != nil {
		return dtos.Appointment{}, fromStore(err, "Appointment", id)
	}
	return toAppointmentDTO(a), nil
}

func (s *AppointmentService) Delete(ctx context.Context, id uint) error {
	return fromStore(s.appointments.Delete(ctx, id), "Appointment", id)
}

func (s *AppointmentService) resolve(ctx context.Context, a *models.Appointment) error {
	p, err := s.patients.Get(ctx, a.PatientID)
	if err != nil {
		return fromStore(err, "Patient", a.PatientID)
	}
	d, err := s.dentists.Get(ctx, a.DentistID)
	if err != nil {
		return fromStore(err, "Dentist", a.DentistID)
	}
	a.Patient, a.Dentist, a.Case = p, d, nil
	if a.CaseID != nil {
		c, err := s.cases.Get(ctx, *a.CaseID)
		if err != nil {
			return fromStore(err, "Case", *a.CaseID)
		}
		a.Case = c
	}
	return nil
}
