package controllers

import (
	"context"

	"dentalflow-backend/dtos"
	"dentalflow-backend/repositories"

	"github.com/gofiber/fiber/v2"
)

type InvoiceService interface {
	List(ctx context.Context, f repositories.InvoiceFilter) ([]dtos.Invoice, error)
	Get(ctx context.Context, id uint) (dtos.Invoice, error)
	Create(ctx context.Context, in dtos.Invoice) (dtos.Invoice, error)
	Update(ctx context.Context, id uint, in dtos.Invoice) (dtos.Invoice, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dtos.Invoice, error)
	Delete(ctx context.Context, id uint) error
}

type InvoiceController struct {
	svc InvoiceService
}

func NewInvoiceController(svc InvoiceService) *InvoiceController {
	return &InvoiceController{svc: svc}
}

// GET /api/invoices?status=&patientId=&dentistId=
func (h *InvoiceController) List(c *fiber.Ctx) error {
	patientID, err := queryID(c, "patientId")
	if err != nil {
		return err
	}
	dentistID, err := queryID(c, "dentistId")
	if err != nil {
		return err
	}
	out, err := h.svc.List(c.UserContext(), repositories.InvoiceFilter{
		Status:    c.Query("status"),
		PatientID: patientID,
		DentistID: dentistID,
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/invoices/:id
func (h *InvoiceController) Get(c *fiber.Ctx) error {
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

// POST /api/invoices
func (h *InvoiceController) Create(c *fiber.Ctx) error {
	var in dtos.Invoice
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

// PUT /api/invoices/:id
func (h *InvoiceController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dtos.Invoice
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// PUT /api/invoices/:id/status
func (h *InvoiceController) UpdateStatus(c *fiber.Ctx) error {
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

// DELETE /api/invoices/:id
func (h *InvoiceController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return noContent(c)
}
