package controllers

import (
	"context"

	"dentalflow-backend/auth"
	"dentalflow-backend/dtos"
	"dentalflow-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

type MessageService interface {
	Contacts(ctx context.Context) ([]dtos.Contact, error)
	CreateContact(ctx context.Context, in dtos.Contact) (dtos.Contact, error)
	ByCase(ctx context.Context, caseID string) ([]dtos.Message, error)
	Inbox(ctx context.Context, p *auth.Principal) ([]dtos.Message, error)
	Send(ctx context.Context, p *auth.Principal, in dtos.Message) (dtos.Message, error)
	MarkRead(ctx context.Context, id uint) (dtos.Message, error)
}

type MessageController struct {
	svc MessageService
}

func NewMessageController(svc MessageService) *MessageController {
	return &MessageController{svc: svc}
}

// GET /api/messages/contacts
func (h *MessageController) Contacts(c *fiber.Ctx) error {
	out, err := h.svc.Contacts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// POST /api/messages/contacts
func (h *MessageController) CreateContact(c *fiber.Ctx) error {
	var in dtos.Contact
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateContact(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

// GET /api/messages/case/:caseId
func (h *MessageController) ByCase(c *fiber.Ctx) error {
	out, err := h.svc.ByCase(c.UserContext(), c.Params("caseId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/messages/inbox
func (h *MessageController) Inbox(c *fiber.Ctx) error {
	out, err := h.svc.Inbox(c.UserContext(), middlewares.PrincipalFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// POST /api/messages
func (h *MessageController) Send(c *fiber.Ctx) error {
	var in dtos.Message
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Send(c.UserContext(), middlewares.PrincipalFrom(c), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

// PUT /api/messages/:id/read
func (h *MessageController) MarkRead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.MarkRead(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
