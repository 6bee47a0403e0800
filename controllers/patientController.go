package controllers

import (
	"context"

	"dentalflow-backend/dtos"

	"github.com/gofiber/fiber/v2"
)

type PatientService interface {
	List(ctx context.Context, dentistID *uint) ([]dtos.Patient, error)
	Get(ctx context.Context, id uint) (dtos.Patient, error)
	Create(ctx context.Context, in dtos.Patient) (dtos.Patient, error)
	Update(ctx context.Context, id uint, in dtos.Patient) (dtos.Patient, error)
	Delete(ctx context.Context, id uint) error
}

type PatientController struct {
	svc PatientService
}

func NewPatientController(svc PatientService) *PatientController {
	return &PatientController{svc: svc}
}

// GET /api/patients?dentistId=
func (h *PatientController) List(c *fiber.Ctx) error {
	dentistID, err := queryID(c, "dentistId")
	if err != nil {
		return err
	}
	out, err := h.svc.List(c.UserContext(), dentistID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/patients/:id
func (h *PatientController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// POST /api/patients
func (h *PatientController) Create(c *fiber.Ctx) error {
	var in dtos.Patient
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

// PUT /api/patients/:id
func (h *PatientController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dtos.Patient
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DELETE /api/patients/:id
func (h *PatientController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return noContent(c)
}
