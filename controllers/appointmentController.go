package controllers

import (
	"context"

	"dentalflow-backend/dtos"
	"dentalflow-backend/repositories"

	"github.com/gofiber/fiber/v2"
)

type AppointmentService interface {
	List(ctx context.Context, f repositories.AppointmentFilter) ([]dtos.Appointment, error)
	Get(ctx context.Context, id uint) (dtos.Appointment, error)
	Create(ctx context.Context, in dtos.Appointment) (dtos.Appointment, error)
	Update(ctx context.Context, id uint, in dtos.Appointment) (dtos.Appointment, error)
	Delete(ctx context.Context, id uint) error
}

type AppointmentController struct {
	svc AppointmentService
}

func NewAppointmentController(svc AppointmentService) *AppointmentController {
	return &AppointmentController{svc: svc}
}

func (h *AppointmentController) list(c *fiber.Ctx, f repositories.AppointmentFilter) error {
	out, err := h.svc.List(c.UserContext(), f)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/appointments
func (h *AppointmentController) List(c *fiber.Ctx) error {
	return h.list(c, repositories.AppointmentFilter{})
}

// GET /api/appointments/dentist/:dentistId
func (h *AppointmentController) ByDentist(c *fiber.Ctx) error {
	id, err := paramID(c, "dentistId")
	if err != nil {
		return err
	}
	return h.list(c, repositories.AppointmentFilter{DentistID: &id})
}

// GET /api/appointments/patient/:patientId
func (h *AppointmentController) ByPatient(c *fiber.Ctx) error {
	id, err := paramID(c, "patientId")
	if err != nil {
		return err
	}
	return h.list(c, repositories.AppointmentFilter{PatientID: &id})
}

// GET /api/appointments/case/:caseId
func (h *AppointmentController) ByCase(c *fiber.Ctx) error {
	id, err := paramID(c, "caseId")
	if err != nil {
		return err
	}
	return h.list(c, repositories.AppointmentFilter{CaseID: &id})
}

// GET /api/appointments/date/:date
func (h *AppointmentController) ByDate(c *fiber.Ctx) error {
	day, err := parseDay(c.Params("date"), "date")
	if err != nil {
		return err
	}
	return h.list(c, repositories.AppointmentFilter{From: &day, To: &day})
}

// GET /api/appointments/dentist/:dentistId/date/:date
func (h *AppointmentController) ByDentistAndDate(c *fiber.Ctx) error {
	id, err := paramID(c, "dentistId")
	if err != nil {
		return err
	}
	day, err := parseDay(c.Params("date"), "date")
	if err != nil {
		return err
	}
	return h.list(c, repositories.AppointmentFilter{DentistID: &id, From: &day, To: &day})
}

// GET /api/appointments/dentist/:dentistId/date-range?startDate=&endDate=
func (h *AppointmentController) ByDentistAndRange(c *fiber.Ctx) error {
	id, err := paramID(c, "dentistId")
	if err != nil {
		return err
	}
	from, err := parseDay(c.Query("startDate"), "startDate")
	if err != nil {
		return err
	}
	to, err := parseDay(c.Query("endDate"), "endDate")
	if err != nil {
		return err
	}
	return h.list(c, repositories.AppointmentFilter{DentistID: &id, From: &from, To: &to})
}

func (h *AppointmentController) Get(c *fiber.Ctx) error {
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

func (h *AppointmentController) Create(c *fiber.Ctx) error {
	var in dtos.Appointment
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

func (h *AppointmentController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dtos.Appointment
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *AppointmentController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return noContent(c)
}
