package controllers

import (
	"context"

	"dentalflow-backend/dtos"
	"dentalflow-backend/repositories"

	"github.com/gofiber/fiber/v2"
)

type CaseService interface {
	List(ctx context.Context, f repositories.CaseFilter) ([]dtos.Case, error)
	Get(ctx context.Context, id uint) (dtos.Case, error)
	Create(ctx context.Context, in dtos.Case) (dtos.Case, error)
	Update(ctx context.Context, id uint, in dtos.Case) (dtos.Case, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dtos.Case, error)
	Delete(ctx context.Context, id uint) error
}

type CaseController struct {
	svc CaseService
}

func NewCaseController(svc CaseService) *CaseController {
	return &CaseController{svc: svc}
}

// GET /api/cases?status=
func (h *CaseController) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext(), repositories.CaseFilter{Status: c.Query("status")})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/cases/dentist/:dentistId?status=
func (h *CaseController) ByDentist(c *fiber.Ctx) error {
	id, err := paramID(c, "dentistId")
	if err != nil {
		return err
	}
	out, err := h.svc.List(c.UserContext(), repositories.CaseFilter{Status: c.Query("status"), DentistID: &id})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CaseController) Get(c *fiber.Ctx) error {
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

func (h *CaseController) Create(c *fiber.Ctx) error {
	var in dtos.Case
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

func (h *CaseController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dtos.Case
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// PUT /api/cases/:id/status
func (h *CaseController) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	status, err := bindStatus(c)
	if err != nil {
		return err
	}
	out, err := h.svc.UpdateStatus(c.UserContext(), id, status)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CaseController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return noContent(c)
}
