package controllers

import (
	"dentalflow-backend/dtos"

	"github.com/gofiber/fiber/v2"
)

// GET /api/inventory/categories
func (h *InventoryController) ListCategories(c *fiber.Ctx) error {
	out, err := h.svc.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// POST /api/inventory/categories
func (h *InventoryController) CreateCategory(c *fiber.Ctx) error {
	var in dtos.InventoryCategory
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateCategory(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

// PUT /api/inventory/categories/:id
func (h *InventoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dtos.InventoryCategory
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateCategory(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DELETE /api/inventory/categories/:id
func (h *InventoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteCategory(c.UserContext(), id); err != nil {
		return err
	}
	return noContent(c)
}
