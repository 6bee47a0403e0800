package controllers

import (
	"strings"
	"time"

	"dentalflow-backend/dtos"
	"dentalflow-backend/middlewares"
	"dentalflow-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := utils.ParseID(c.Params(name))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name+" in path")
	}
	return id, nil
}

func queryID(c *fiber.Ctx, name string) (*uint, error) {
	id, err := utils.ParseOptionalID(c.Query(name))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name+" query parameter")
	}
	return id, nil
}

func parseDay(value, name string) (time.Time, error) {
	t, err := time.Parse(dtos.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, name+" must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// bindStatus reads a {"status": "..."} body; an empty status is a 400.
func bindStatus(c *fiber.Ctx) (string, error) {
	var in dtos.StatusUpdate
	if err := c.BodyParser(&in); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "status is required")
	}
	return status, nil
}

func created(c *fiber.Ctx, v interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(v)
}

func noContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

var bind = middlewares.BindAndValidate
