package controllers

import (
	"context"

	"dentalflow-backend/dtos"

	"github.com/gofiber/fiber/v2"
)

type DentistService interface {
	List(ctx context.Context) ([]dtos.Dentist, error)
	Get(ctx context.Context, id uint) (dtos.Dentist, error)
	Create(ctx context.Context, in dtos.Dentist) (dtos.Dentist, error)
	Update(ctx context.Context, id uint, in dtos.Dentist) (dtos.Dentist, error)
	Delete(ctx context.Context, id uint) error
}

type DentistController struct {
	svc DentistService
}

func NewDentistController(svc DentistService) *DentistController {
	return &DentistController{svc: svc}
}

func (h *DentistController) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *DentistController) Get(c *fiber.Ctx) error {
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

func (h *DentistController) Create(c *fiber.Ctx) error {
	var in dtos.Dentist
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

func (h *DentistController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dtos.Dentist
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *DentistController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return noContent(c)
}
