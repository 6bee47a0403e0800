package repositories

import (
	"context"

	"dentalflow-backend/models"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	store[models.InventoryItem]
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{store[models.InventoryItem]{db: db, preloads: []string{"Category", "Supplier"}}}
}

func (r *InventoryRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	return r.find(ctx, nil, "name, id")
}

// ListLowStock returns items whose quantity is at or below their reorder level.
func (r *InventoryRepository) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("quantity <= reorder_level")
	}, "quantity, name, id")
}

type CategoryRepository struct {
	store[models.InventoryCategory]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{store[models.InventoryCategory]{db: db}}
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.InventoryCategory, error) {
	return r.find(ctx, nil, "name, id")
}

type SupplierRepository struct {
	store[models.Supplier]
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{store[models.Supplier]{db: db}}
}

func (r *SupplierRepository) List(ctx context.Context) ([]models.Supplier, error) {
	return r.find(ctx, nil, "name, id")
}
