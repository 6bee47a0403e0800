package controllers

import (
	"context"

	"dentalflow-backend/dtos"

	"github.com/gofiber/fiber/v2"
)

type InventoryService interface {
	ListItems(ctx context.Context) ([]dtos.InventoryItem, error)
	LowStock(ctx context.Context) ([]dtos.InventoryItem, error)
	GetItem(ctx context.Context, id uint) (dtos.InventoryItem, error)
	CreateItem(ctx context.Context, in dtos.InventoryItem) (dtos.InventoryItem, error)
	UpdateItem(ctx context.Context, id uint, in dtos.InventoryItem) (dtos.InventoryItem, error)
	DeleteItem(ctx context.Context, id uint) error

	ListCategories(ctx context.Context) ([]dtos.InventoryCategory, error)
	CreateCategory(ctx context.Context, in dtos.InventoryCategory) (dtos.InventoryCategory, error)
	UpdateCategory(ctx context.Context, id uint, in dtos.InventoryCategory) (dtos.InventoryCategory, error)
	DeleteCategory(ctx context.Context, id uint) error

	ListSuppliers(ctx context.Context) ([]dtos.Supplier, error)
	CreateSupplier(ctx context.Context, in dtos.Supplier) (dtos.Supplier, error)
	UpdateSupplier(ctx context.Context, id uint, in dtos.Supplier) (dtos.Supplier, error)
	DeleteSupplier(ctx context.Context, id uint) error
}

// InventoryController serves /api/inventory: items here, categories and
// suppliers in their own files.
type InventoryController struct {
	svc InventoryService
}

func NewInventoryController(svc InventoryService) *InventoryController {
	return &InventoryController{svc: svc}
}

func (h *InventoryController) ListItems(c *fiber.Ctx) error {
	out, err := h.svc.ListItems(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/inventory/low-stock
func (h *InventoryController) LowStock(c *fiber.Ctx) error {
	out, err := h.svc.LowStock(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *InventoryController) GetItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetItem(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *InventoryController) CreateItem(c *fiber.Ctx) error {
	var in dtos.InventoryItem
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateItem(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out)
}

func (h *InventoryController) UpdateItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dtos.InventoryItem
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateItem(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *InventoryController) DeleteItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteItem(c.UserContext(), id); err != nil {
		return err
	}
	return noContent(c)
}
