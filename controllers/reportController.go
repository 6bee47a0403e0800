package controllers

import (
	"context"

	"dentalflow-backend/dtos"
	"dentalflow-backend/services"
	"dentalflow-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportService interface {
	Financial(ctx context.Context, months int) (dtos.Report, error)
	Dentists(ctx context.Context, months int) (dtos.Report, error)
	Cases(ctx context.Context, months int) (dtos.Report, error)
}

type ReportController struct {
	svc ReportService
}

func NewReportController(svc ReportService) *ReportController {
	return &ReportController{svc: svc}
}

// months reads ?months=, defaulting to 12. Out-of-range values are clamped by
// the service; anything that is not an integer is a 400.
func months(c *fiber.Ctx) (int, error) {
	m, err := utils.ParseIntDefault(c.Query("months"), services.DefaultReportMonths)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "months must be an integer")
	}
	return m, nil
}

func (h *ReportController) run(c *fiber.Ctx, report func(context.Context, int) (dtos.Report, error)) error {
	m, err := months(c)
	if err != nil {
		return err
	}
	out, err := report(c.UserContext(), m)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/reports/financial?months=
func (h *ReportController) Financial(c *fiber.Ctx) error { return h.run(c, h.svc.Financial) }

// GET /api/reports/dentists?months=
func (h *ReportController) Dentists(c *fiber.Ctx) error { return h.run(c, h.svc.Dentists) }

// GET /api/reports/cases?months=
func (h *ReportController) Cases(c *fiber.Ctx) error { return h.run(c, h.svc.Cases) }
