package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"dentalflow-backend/dtos"
	"dentalflow-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 18, 10, 15, 0, 0, time.UTC)

type invoiceFixture struct {
	svc      *InvoiceService
	invoices *fakeInvoices
	patient  models.Patient
	dentist  models.Dentist
}

func newInvoiceFixture(t *testing.T) invoiceFixture {
	t.Helper()
	ctx := context.Background()
	patients, dentists, cases := newFakePatients(), newFakeDentists(), newFakeCases()

	d := models.Dentist{FirstName: "Ana", LastName: "Silva"}
	require.NoError(t, dentists.Create(ctx, &d))
	p := models.Patient{FirstName: "John", LastName: "Doe"}
	require.NoError(t, patients.Create(ctx, &p))

	invoices := newFakeInvoices()
	return invoiceFixture{
		svc:      NewInvoiceService(invoices, patients, dentists, cases, fixedClock(testNow)),
		invoices: invoices,
		patient:  p,
		dentist:  d,
	}
}

func (f invoiceFixture) input() dtos.Invoice {
	return dtos.Invoice{
		Status:    "unpaid",
		PatientID: f.patient.ID,
		DentistID: f.dentist.ID,
		IssueDate: "2026-10-01",
		DueDate:   "2026-10-31",
		Items: []dtos.InvoiceItem{
			{Description: "Cleaning", Quantity: 2, UnitPrice: dec("50.00")},
			{Description: "X-Ray", Quantity: 1, UnitPrice: dec("30.00")},
		},
	}
}

func TestInvoiceService_Create(t *testing.T) {
	f := newInvoiceFixture(t)

	out, err := f.svc.Create(context.Background(), f.input())
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Regexp(t, regexp.MustCompile(`^INV-2026-\d{4}$`), out.InvoiceNumber)
	assert.Equal(t, invoiceNumber(testNow), out.InvoiceNumber)
	assert.Equal(t, "130.00", out.Amount.StringFixed(2))
	require.NotNil(t, out.Tax)
	assert.Equal(t, "13.00", out.Tax.StringFixed(2))
	assert.Equal(t, "143.00", out.Total.StringFixed(2))
	assert.Equal(t, "John Doe", out.PatientName)
	assert.Equal(t, "Ana Silva", out.DentistName)
	assert.Len(t, out.Items, 2)
	assert.Empty(t, out.PaidDate)
}

func TestInvoiceService_CreateSkipsTakenNumber(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	assert.NotEqual(t, first.InvoiceNumber, second.InvoiceNumber)
	assert.Regexp(t, `^INV-2026-\d{4}$`, second.InvoiceNumber)
}

func TestInvoiceService_CreateRejectsDuplicateSuppliedNumber(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	in := f.input()
	in.InvoiceNumber = "INV-2026-0001"
	_, err := f.svc.Create(ctx, in)
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, in)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestInvoiceService_CreateUnknownPatient(t *testing.T) {
	f := newInvoiceFixture(t)
	in := f.input()
	in.PatientID = 404

	_, err := f.svc.Create(context.Background(), in)
	require.ErrorIs(t, err, ErrNotFound)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Patient", nf.Entity)
	assert.Empty(t, f.invoices.rows)
}

func TestInvoiceService_CreateUnknownCase(t *testing.T) {
	f := newInvoiceFixture(t)
	in := f.input()
	in.CaseID = uintPtr(77)

	_, err := f.svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceService_CreateRejectsDueBeforeIssue(t *testing.T) {
	f := newInvoiceFixture(t)
	in := f.input()
	in.DueDate = "2026-09-01"

	_, err := f.svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInvoiceService_CreatePaidStampsToday(t *testing.T) {
	f := newInvoiceFixture(t)
	in := f.input()
	in.Status = "paid"

	out, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", out.PaidDate)
}

func TestInvoiceService_UpdateReplacesItems(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	in := f.input()
	in.InvoiceNumber = "ignored"
	in.Items = []dtos.InvoiceItem{{Description: "Crown", Quantity: 1, UnitPrice: dec("500.00")}}
	updated, err := f.svc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "500.00", updated.Amount.StringFixed(2))
	assert.Equal(t, "50.00", updated.Tax.StringFixed(2))
	assert.Equal(t, "550.00", updated.Total.StringFixed(2))

	stored, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
}

func TestInvoiceService_UpdateMissing(t *testing.T) {
	f := newInvoiceFixture(t)
	_, err := f.svc.Update(context.Background(), 9999, f.input())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceService_UpdateStatus(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, created.ID, "  ")
	assert.ErrorIs(t, err, ErrValidation)

	out, err := f.svc.UpdateStatus(ctx, created.ID, "paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", out.Status)
	assert.Equal(t, "2026-10-18", out.PaidDate)
	assert.Equal(t, "143.00", out.Total.StringFixed(2))
}

func TestInvoiceService_Delete(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, created.ID), ErrNotFound)
	_, err = f.svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
