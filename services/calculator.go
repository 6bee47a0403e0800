package services

import (
	"dentalflow-backend/models"
	"dentalflow-backend/utils"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate applies when an invoice is saved without an explicit tax.
var DefaultTaxRate = decimal.RequireFromString("0.10")

type ItemInput struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// ApplyItems replaces the invoice's items with items and recomputes amount,
// tax and total. A nil tax is derived from DefaultTaxRate, rounded half-up to
// cents.
func ApplyItems(inv *models.Invoice, items []ItemInput, tax *decimal.Decimal) error {
	if len(items) == 0 {
		return invalid("items", "at least one item is required")
	}

	lines := make([]models.InvoiceItem, 0, len(items))
	amount := decimal.Zero
	for _, in := range items {
		if in.Quantity < 0 {
			return invalid("items.quantity", "must not be negative")
		}
		if in.UnitPrice.IsNegative() {
			return invalid("items.unitPrice", "must not be negative")
		}
		price := utils.Round2(in.UnitPrice)
		line := price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		lines = append(lines, models.InvoiceItem{
			InvoiceID:   inv.ID,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   price,
			Amount:      line,
		})
		amount = amount.Add(line)
	}

	var t decimal.Decimal
	if tax == nil {
		t = utils.Percent(amount, DefaultTaxRate)
	} else {
		if tax.IsNegative() {
			return invalid("tax", "must not be negative")
		}
		t = utils.Round2(*tax)
	}

	inv.Items = lines
	inv.Amount = amount
	inv.Tax = t
	inv.Total = amount.Add(t)
	return nil
}
