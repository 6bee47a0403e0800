package dtos

import "github.com/shopspring/decimal"

type InventoryItem struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Quantity     *int            `json:"quantity" validate:"required,gte=0"`
	UnitPrice    decimal.Decimal `json:"unitPrice" validate:"gte=0"`
	ReorderLevel *int            `json:"reorderLevel" validate:"required,gte=0"`
	Unit         string          `json:"unit" validate:"required"`
	CategoryID   *uint           `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"`
	SupplierID   *uint           `json:"supplierId"`
	SupplierName string          `json:"supplierName,omitempty"`
	LastOrdered  string          `json:"lastOrdered,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LowStock     bool            `json:"lowStock"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	UpdatedAt    string          `json:"updatedAt,omitempty"`
}

type InventoryCategory struct {
	ID          uint   `json:"id"`
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description"`
}

type Supplier struct {
	ID            uint   `json:"id"`
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}
