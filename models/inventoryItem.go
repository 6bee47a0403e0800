package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type InventoryItem struct {
	ID           uint               `json:"id" gorm:"primaryKey"`
	Name         string             `json:"name" gorm:"not null"`
	Description  string             `json:"description" gorm:"type:text"`
	Quantity     int                `json:"quantity" gorm:"not null"`
	UnitPrice    decimal.Decimal    `json:"unitPrice" gorm:"type:numeric(10,2);not null"`
	ReorderLevel int                `json:"reorderLevel" gorm:"not null"`
	Unit         string             `json:"unit" gorm:"not null"`
	CategoryID   *uint              `json:"categoryId" gorm:"index"`
	Category     *InventoryCategory `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	SupplierID   *uint              `json:"supplierId" gorm:"index"`
	Supplier     *Supplier          `json:"-" gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL"`
	LastOrdered  *datatypes.Date    `json:"lastOrdered"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LowStock reports whether the item is at or below its reorder level.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.ReorderLevel
}
