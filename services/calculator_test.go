package services

import (
	"testing"

	"dentalflow-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestApplyItems_DefaultTax(t *testing.T) {
	var inv models.Invoice
	err := ApplyItems(&inv, []ItemInput{
		{Description: "Cleaning", Quantity: 2, UnitPrice: dec("50.00")},
		{Description: "X-Ray", Quantity: 1, UnitPrice: dec("30.00")},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "130.00", inv.Amount.StringFixed(2))
	assert.Equal(t, "13.00", inv.Tax.StringFixed(2))
	assert.Equal(t, "143.00", inv.Total.StringFixed(2))
	require.Len(t, inv.Items, 2)
	assert.Equal(t, "100.00", inv.Items[0].Amount.StringFixed(2))
	assert.Equal(t, "30.00", inv.Items[1].Amount.StringFixed(2))
}

func TestApplyItems_ExplicitTax(t *testing.T) {
	var inv models.Invoice
	tax := dec("7.5")
	err := ApplyItems(&inv, []ItemInput{{Description: "Filling", Quantity: 1, UnitPrice: dec("80")}}, &tax)
	require.NoError(t, err)

	assert.True(t, inv.Tax.Equal(dec("7.50")))
	assert.True(t, inv.Total.Equal(dec("87.50")))
}

func TestApplyItems_ZeroTaxIsKept(t *testing.T) {
	var inv models.Invoice
	zero := decimal.Zero
	err := ApplyItems(&inv, []ItemInput{{Description: "Check-up", Quantity: 1, UnitPrice: dec("40")}}, &zero)
	require.NoError(t, err)
	assert.True(t, inv.Tax.IsZero())
	assert.True(t, inv.Total.Equal(dec("40")))
}

func TestApplyItems_TaxRoundsHalfUp(t *testing.T) {
	var inv models.Invoice
	err := ApplyItems(&inv, []ItemInput{{Description: "Floss", Quantity: 1, UnitPrice: dec("0.05")}}, nil)
	require.NoError(t, err)

	assert.Equal(t, "0.01", inv.Tax.StringFixed(2))
	assert.Equal(t, "0.06", inv.Total.StringFixed(2))
}

func TestApplyItems_TotalIsAmountPlusTax(t *testing.T) {
	var inv models.Invoice
	err := ApplyItems(&inv, []ItemInput{
		{Description: "A", Quantity: 3, UnitPrice: dec("19.99")},
		{Description: "B", Quantity: 7, UnitPrice: dec("0.33")},
		{Description: "C", Quantity: 0, UnitPrice: dec("12.00")},
	}, nil)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, it := range inv.Items {
		sum = sum.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	assert.True(t, inv.Amount.Equal(sum))
	assert.True(t, inv.Total.Equal(inv.Amount.Add(inv.Tax)))
	assert.True(t, inv.Tax.Equal(inv.Amount.Mul(DefaultTaxRate).Round(2)))
}

func TestApplyItems_ReplacesPreviousItems(t *testing.T) {
	inv := models.Invoice{ID: 4, Items: []models.InvoiceItem{
		{ID: 1, Description: "old 1"}, {ID: 2, Description: "old 2"}, {ID: 3, Description: "old 3"},
	}}
	err := ApplyItems(&inv, []ItemInput{{Description: "new", Quantity: 1, UnitPrice: dec("10")}}, nil)
	require.NoError(t, err)

	require.Len(t, inv.Items, 1)
	assert.Equal(t, "new", inv.Items[0].Description)
	assert.Equal(t, uint(4), inv.Items[0].InvoiceID)
	assert.Zero(t, inv.Items[0].ID)
}

func TestApplyItems_Rejects(t *testing.T) {
	var inv models.Invoice
	assert.ErrorIs(t, ApplyItems(&inv, nil, nil), ErrValidation)
	assert.ErrorIs(t, ApplyItems(&inv, []ItemInput{{Quantity: -1, UnitPrice: dec("1")}}, nil), ErrValidation)
	assert.ErrorIs(t, ApplyItems(&inv, []ItemInput{{Quantity: 1, UnitPrice: dec("-1")}}, nil), ErrValidation)

	neg := dec("-0.01")
	assert.ErrorIs(t, ApplyItems(&inv, []ItemInput{{Quantity: 1, UnitPrice: dec("1")}}, &neg), ErrValidation)
}
