package services

import (
	"context"
	"strings"
	"time"

	"dentalflow-backend/dtos"
	"dentalflow-backend/models"
	"dentalflow-backend/repositories"
)

type CaseService struct {
	cases    CaseStore
	patients PatientStore
	dentists DentistStore
	now      Clock
}

func NewCaseService(cases CaseStore, patients PatientStore, dentists DentistStore, now Clock) *CaseService {
	if now == nil {
		now = time.Now
	}
	return &CaseService{cases: cases, patients: patients, dentists: dentists, now: now}
}

func (s *CaseService) List(ctx context.Context, f repositories.CaseFilter) ([]dtos.Case, error) {
	f.Status = strings.TrimSpace(f.Status)
	rows, err := s.cases.List(ctx, f)
	if err != nil {
		return nil, fromStore(err, "Case", nil)
	}
	out := make([]dtos.Case, 0, len(rows))
	for i := range rows {
		out = append(out, toCaseDTO(&rows[i]))
	}
	return out, nil
}

func (s *CaseService) Get(ctx context.Context, id uint) (dtos.Case, error) {
	c, err := s.cases.Get(ctx, id)
	if err != nil {
		return dtos.Case{}, fromStore(err, "Case", id)
	}
	return toCaseDTO(c), nil
}

// Create stores a new case. A blank case number is generated as CASE-<unix millis>;
// a supplied one must not already exist.
func (s *CaseService) Create(ctx context.Context, in dtos.Case) (dtos.Case, error) {
	var c models.Case
	if err := applyCase(in, &c); err != nil {
		return dtos.Case{}, err
	}
	if err := s.resolve(ctx, &c); err != nil {
		return dtos.Case{}, err
	}

	number := strings.TrimSpace(in.CaseNumber)
	if number == "" {
		n, err := nextNumber(ctx, "Case", s.now(), caseNumber, s.cases.NumberExists)
		if err != nil {
			return dtos.Case{}, err
		}
		number = n
	} else if taken, err := s.cases.NumberExists(ctx, number); err != nil {
		return dtos.Case{}, fromStore(err, "Case", nil)
	} else if taken {
		return dtos.Case{}, &ConflictError{Message: "case number " + number + " already exists"}
	}
	c.CaseNumber = number

	if err := s.cases.Create(ctx, &c); err != nil {
		return dtos.Case{}, fromStore(err, "Case", nil)
	}
	return toCaseDTO(&c), nil
}

// Update overwrites the editable fields; id, case number and creation time are kept.
func (s *CaseService) Update(ctx context.Context, id uint, in dtos.Case) (dtos.Case, error) {
	c, err := s.cases.Get(ctx, id)
	if err != nil {
		return dtos.Case{}, fromStore(err, "Case", id)
	}
	if err := applyCase(in, c); err != nil {
		return dtos.Case{}, err
	}
	if err := s.resolve(ctx, c); err != nil {
		return dtos.Case{}, err
	}
	if err := s.cases.Update(ctx, c); err != nil {
		return dtos.Case{}, fromStore(err, "Case", id)
	}
	return toCaseDTO(c), nil
}

func (s *CaseService) UpdateStatus(ctx context.Context, id uint, status string) (dtos.Case, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return dtos.Case{}, invalid("status", "is required")
	}
	c, err := s.cases.Get(ctx, id)
	if err != nil {
		return dtos.Case{}, fromStore(err, "Case", id)
	}
	c.Status = status
	if err := s.cases.Update(ctx, c); err != nil {
		return dtos.Case{}, fromStore(err, "Case", id)
	}
	return toCaseDTO(c), nil
}

func (s *CaseService) Delete(ctx context.Context, id uint) error {
	return fromStore(s.cases.Delete(ctx, id), "Case", id)
}

func (s *CaseService) resolve(ctx context.Context, c *models.Case) error {
	p, err := s.patients.Get(ctx, c.PatientID)
	if err != nil {
		return fromStore(err, "Patient", c.PatientID)
	}
	d, err := s.dentists.Get(ctx, c.DentistID)
	if err != nil {
		return fromStore(err, "Dentist", c.DentistID)
	}
	c.Patient, c.Dentist = p, d
	return nil
}
