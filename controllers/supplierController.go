package controllers

import (
	"dentalflow-backend/dtos"

	"github.com/gofiber/fiber/v2"
)

// GET /api/inventory/suppliers
func (h *InventoryController) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.svc.ListSuppliers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// POST /api/inventory/suppliers
func (h *InventoryController) CreateSupplier(c *fiber.Ctx) error {
	var in dtos.Supplier
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateSupplier(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

// PUT /api/inventory/suppliers/:id
func (h *InventoryController) UpdateSupplier(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dtos.Supplier
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateSupplier(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DELETE /api/inventory/suppliers/:id
func (h *InventoryController) DeleteSupplier(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteSupplier(c.UserContext(), id); err != nil {
		return err
	}
	return noContent(c)
}
