package controllers

import (
	"context"

	"dentalflow-backend/dtos"
	"dentalflow-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

type AuthService interface {
	Register(ctx context.Context, in dtos.RegisterRequest) (dtos.AuthResponse, error)
	Login(ctx context.Context, in dtos.LoginRequest) (dtos.AuthResponse, error)
}

type AuthController struct {
	svc AuthService
}

func NewAuthController(svc AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var in dtos.RegisterRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var in dtos.LoginRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	p := middlewares.PrincipalFrom(c)
	if p == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(p)
}
