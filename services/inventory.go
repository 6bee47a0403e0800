package services

import (
	"context"

	"dentalflow-backend/dtos"
	"dentalflow-backend/models"
)

type InventoryService struct {
	items      InventoryStore
	categories CategoryStore
	suppliers  SupplierStore
}

func NewInventoryService(items InventoryStore, categories CategoryStore, suppliers SupplierStore) *InventoryService {
	return &InventoryService{items: items, categories: categories, suppliers: suppliers}
}

func (s *InventoryService) ListItems(ctx context.Context) ([]dtos.InventoryItem, error) {
	return s.itemDTOs(s.items.List(ctx))
}

// LowStock lists items at or below their reorder level.
func (s *InventoryService) LowStock(ctx context.Context) ([]dtos.InventoryItem, error) {
	return s.itemDTOs(s.items.ListLowStock(ctx))
}

func (s *InventoryService) itemDTOs(rows []models.InventoryItem, err error) ([]dtos.InventoryItem, error) {
	if err != nil {
		return nil, fromStore(err, "InventoryItem", nil)
	}
	out := make([]dtos.InventoryItem, 0, len(rows))
	for i := range rows {
		out = append(out, toInventoryItemDTO(&rows[i]))
	}
	return out, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id uint) (dtos.InventoryItem, error) {
	it, err := s.items.Get(ctx, id)
	if err != nil {
		return dtos.InventoryItem{}, fromStore(err, "InventoryItem", id)
	}
	return toInventoryItemDTO(it), nil
}

func (s *InventoryService) CreateItem(ctx context.Context, in dtos.InventoryItem) (dtos.InventoryItem, error) {
	var it models.InventoryItem
	if err := applyInventoryItem(in, &it); err != nil {
		return dtos.InventoryItem{}, err
	}
	if err := s.resolve(ctx, &it); err != nil {
		return dtos.InventoryItem{}, err
	}
	if err := s.items.Create(ctx, &it); err != nil {
		return dtos.InventoryItem{}, fromStore(err, "InventoryItem", nil)
	}
	return toInventoryItemDTO(&it), nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id uint, in dtos.InventoryItem) (dtos.InventoryItem, error) {
	it, err := s.items.Get(ctx, id)
	if err != nil {
		return dtos.InventoryItem{}, fromStore(err, "InventoryItem", id)
	}
	if err := applyInventoryItem(in, it); err != nil {
		return dtos.InventoryItem{}, err
	}
	if err := s.resolve(ctx, it); err != nil {
		return dtos.InventoryItem{}, err
	}
	if err := s.items.Update(ctx, it); err != nil {
		return dtos.InventoryItem{}, fromStore(err, "InventoryItem", id)
	}
	return toInventoryItemDTO(it), nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id uint) error {
	return fromStore(s.items.Delete(ctx, id), "InventoryItem", id)
}

func (s *InventoryService) resolve(ctx context.Context, it *models.InventoryItem) error {
	it.Category, it.Supplier = nil, nil
	if it.CategoryID != nil {
		c, err := s.categories.Get(ctx, *it.CategoryID)
		if err != nil {
			return fromStore(err, "Category", *it.CategoryID)
		}
		it.Category = c
	}
	if it.SupplierID != nil {
		sup, err := s.suppliers.Get(ctx, *it.SupplierID)
		if err != nil {
			return fromStore(err, "Supplier", *it.SupplierID)
		}
		it.Supplier = sup
	}
	return nil
}

// Categories

func (s *InventoryService) ListCategories(ctx context.Context) ([]dtos.InventoryCategory, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fromStore(err, "Category", nil)
	}
	out := make([]dtos.InventoryCategory, 0, len(rows))
	for i := range rows {
		out = append(out, toCategoryDTO(&rows[i]))
	}
	return out, nil
}

func (s *InventoryService) CreateCategory(ctx context.Context, in dtos.InventoryCategory) (dtos.InventoryCategory, error) {
	var c models.InventoryCategory
	applyCategory(in, &c)
	if err := s.categories.Create(ctx, &c); err != nil {
		return dtos.InventoryCategory{}, fromStore(err, "Category", nil)
	}
	return toCategoryDTO(&c), nil
}

func (s *InventoryService) UpdateCategory(ctx context.Context, id uint, in dtos.InventoryCategory) (dtos.InventoryCategory, error) {
	c, err := s.categories.Get(ctx, id)
	if err != nil {
		return dtos.InventoryCategory{}, fromStore(err, "Category", id)
	}
	applyCategory(in, c)
	if err := s.categories.Update(ctx, c); err != nil {
		return dtos.InventoryCategory{}, fromStore(err, "Category", id)
	}
	return toCategoryDTO(c), nil
}

func (s *InventoryService) DeleteCategory(ctx context.Context, id uint) error {
	return fromStore(s.categories.Delete(ctx, id), "Category", id)
}

// Suppliers

func (s *InventoryService) ListSuppliers(ctx context.Context) ([]dtos.Supplier, error) {
	rows, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, fromStore(err, "Supplier", nil)
	}
	out := make([]dtos.Supplier, 0, len(rows))
	for i := range rows {
		out = append(out, toSupplierDTO(&rows[i]))
	}
	return out, nil
}

func (s *InventoryService) CreateSupplier(ctx context.Context, in dtos.Supplier) (dtos.Supplier, error) {
	var sup models.Supplier
	applySupplier(in, &sup)
	if err := s.suppliers.Create(ctx, &sup); err != nil {
		return dtos.Supplier{}, fromStore(err, "Supplier", nil)
	}
	return toSupplierDTO(&sup), nil
}

func (s *InventoryService) UpdateSupplier(ctx context.Context, id uint, in dtos.Supplier) (dtos.Supplier, error) {
	sup, err := s.suppliers.Get(ctx, id)
	if err != nil {
		return dtos.Supplier{}, fromStore(err, "Supplier", id)
	}
	applySupplier(in, sup)
	if err := s.suppliers.Update(ctx, sup); err != nil {
		return dtos.Supplier{}, fromStore(err, "Supplier", id)
	}
	return toSupplierDTO(sup), nil
}

func (s *InventoryService) DeleteSupplier(ctx context.Context, id uint) error {
	return fromStore(s.suppliers.Delete(ctx, id), "Supplier", id)
}
