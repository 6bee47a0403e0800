package services

import (
	"context"

	"dentalflow-backend/dtos"
	"dentalflow-backend/models"
	"dentalflow-backend/repositories"
)

type PatientService struct {
	patients PatientStore
	dentists DentistStore
}

func NewPatientService(patients PatientStore, dentists DentistStore) *PatientService {
	return &PatientService{patients: patients, dentists: dentists}
}

func (s *PatientService) List(ctx context.Context, dentistID *uint) ([]dtos.Patient, error) {
	rows, err := s.patients.List(ctx, repositories.PatientFilter{DentistID: dentistID})
	if err != nil {
		return nil, fromStore(err, "Patient", nil)
	}
	out := make([]dtos.Patient, 0, len(rows))
	for i := range rows {
		out = append(out, toPatientDTO(&rows[i]))
	}
	return out, nil
}

func (s *PatientService) Get(ctx context.Context, id uint) (dtos.Patient, error) {
	p, err := s.patients.Get(ctx, id)
	if err != nil {
		return dtos.Patient{}, fromStore(err, "Patient", id)
	}
	return toPatientDTO(p), nil
}

func (s *PatientService) Create(ctx context.Context, in dtos.Patient) (dtos.Patient, error) {
	var p models.Patient
	applyPatient(in, &p)
	if err := s.resolve(ctx, &p); err != nil {
		return dtos.Patient{}, err
	}
	if err := s.patients.Create(ctx, &p); err != nil {
		return dtos.Patient{}, fromStore(err, "Patient", nil)
	}
	return toPatientDTO(&p), nil
}

func (s *PatientService) Update(ctx context.Context, id uint, in dtos.Patient) (dtos.Patient, error) {
	p, err := s.patients.Get(ctx, id)
	if err != nil {
		return dtos.Patient{}, fromStore(err, "Patient", id)
	}
	applyPatient(in, p)
	if err := s.resolve(ctx, p); err != nil {
		return dtos.Patient{}, err
	}
	if err := s.patients.Update(ctx, p); err != nil {
		return dtos.Patient{}, fromStore(err, "Patient", id)
	}
	return toPatientDTO(p), nil
}

func (s *PatientService) Delete(ctx context.Context, id uint) error {
	return fromStore(s.patients.Delete(ctx, id), "Patient", id)
}

// resolve loads the primary dentist, if any, so the response carries its name.
func (s *PatientService) resolve(ctx context.Context, p *models.Patient) error {
	p.Dentist = nil
	if p.DentistID == nil {
		return nil
	}
	d, err := s.dentists.Get(ctx, *p.DentistID)
	if err != nil {
		return fromStore(err, "Dentist", *p.DentistID)
	}
	p.Dentist = d
	return nil
}

type DentistService struct {
	dentists DentistStore
}

func NewDentistService(dentists DentistStore) *DentistService {
	return &DentistService{dentists: dentists}
}

func (s *DentistService) List(ctx context.Context) ([]dtos.Dentist, error) {
	rows, err := s.dentists.List(ctx)
	if err != nil {
		return nil, fromStore(err, "Dentist", nil)
	}
	out := make([]dtos.Dentist, 0, len(rows))
	for i := range rows {
		out = append(out, toDentistDTO(&rows[i]))
	}
	return out, nil
}

func (s *DentistService) Get(ctx context.Context, id uint) (dtos.Dentist, error) {
	d, err := s.dentists.Get(ctx, id)
	if err != nil {
		return dtos.Dentist{}, fromStore(err, "Dentist", id)
	}
	return toDentistDTO(d), nil
}

func (s *DentistService) Create(ctx context.Context, in dtos.Dentist) (dtos.Dentist, error) {
	var d models.Dentist
	applyDentist(in, &d)
	if err := s.dentists.Create(ctx, &d); err != nil {
		return dtos.Dentist{}, fromStore(err, "Dentist", nil)
	}
	return toDentistDTO(&d), nil
}

func (s *DentistService) Update(ctx context.Context, id uint, in dtos.Dentist) (dtos.Dentist, error) {
	d, err := s.dentists.Get(ctx, id)
	if err != nil {
		return dtos.Dentist{}, fromStore(err, "Dentist", id)
	}
	applyDentist(in, d)
	if err := s.dentists.Update(ctx, d); err != nil {
		return dtos.Dentist{}, fromStore(err, "Dentist", id)
	}
	return toDentistDTO(d), nil
}

func (s *DentistService) Delete(ctx context.Context, id uint) error {
	return fromStore(s.dentists.Delete(ctx, id), "Dentist", id)
}
