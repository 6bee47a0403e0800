package services

import (
	"context"
	"strings"
	"time"

	"dentalflow-backend/dtos"
	"dentalflow-backend/models"
	"dentalflow-backend/repositories"

	"gorm.io/datatypes"
)

const StatusPaid = "paid"

type InvoiceService struct {
	invoices InvoiceStore
	patients PatientStore
	dentists DentistStore
	cases    CaseStore
	now      Clock
}

func NewInvoiceService(invoices InvoiceStore, patients PatientStore, dentists DentistStore, cases CaseStore, now Clock) *InvoiceService {
	if now == nil {
		now = time.Now
	}
	return &InvoiceService{invoices: invoices, patients: patients, dentists: dentists, cases: cases, now: now}
}

func (s *InvoiceService) List(ctx context.Context, f repositories.InvoiceFilter) ([]dtos.Invoice, error) {
	f.Status = strings.TrimSpace(f.Status)
	rows, err := s.invoices.List(ctx, f)
	if err != nil {
		return nil, fromStore(err, "Invoice", nil)
	}
	out := make([]dtos.Invoice, 0, len(rows))
	for i := range rows {
		out = append(out, toInvoiceDTO(&rows[i]))
	}
	return out, nil
}

func (s *InvoiceService) Get(ctx context.Context, id uint) (dtos.Invoice, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return dtos.Invoice{}, fromStore(err, "Invoice", id)
	}
	return toInvoiceDTO(inv), nil
}

// Create validates references, assigns an invoice number when none is given,
// computes totals from the items and stores the invoice with its items.
func (s *InvoiceService) Create(ctx context.Context, in dtos.Invoice) (dtos.Invoice, error) {
	var inv models.Invoice
	if err := s.prepare(ctx, in, &inv); err != nil {
		return dtos.Invoice{}, err
	}

	number := strings.TrimSpace(in.InvoiceNumber)
	if number == "" {
		n, err := nextNumber(ctx, "Invoice", s.now(), invoiceNumber, s.invoices.NumberExists)
		if err != nil {
			return dtos.Invoice{}, err
		}
		number = n
	} else if taken, err := s.invoices.NumberExists(ctx, number); err != nil {
		return dtos.Invoice{}, fromStore(err, "Invoice", nil)
	} else if taken {
		return dtos.Invoice{}, &ConflictError{Message: "invoice number " + number + " already exists"}
	}
	inv.InvoiceNumber = number

	if err := s.invoices.Save(ctx, &inv); err != nil {
		return dtos.Invoice{}, fromStore(err, "Invoice", nil)
	}
	return toInvoiceDTO(&inv), nil
}

// Update replaces the invoice's fields and its complete item set. The id,
// invoice number and creation time are kept.
func (s *InvoiceService) Update(ctx context.Context, id uint, in dtos.Invoice) (dtos.Invoice, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return dtos.Invoice{}, fromStore(err, "Invoice", id)
	}
	if err := s.prepare(ctx, in, inv); err != nil {
		return dtos.Invoice{}, err
	}
	if err := s.invoices.Save(ctx, inv); err != nil {
		return dtos.Invoice{}, fromStore(err, "Invoice", id)
	}
	return toInvoiceDTO(inv), nil
}

// UpdateStatus changes only the status. Marking an invoice paid without a
// paid date records today.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uint, status string) (dtos.Invoice, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return dtos.Invoice{}, invalid("status", "is required")
	}
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return dtos.Invoice{}, fromStore(err, "Invoice", id)
	}
	inv.Status = status
	s.stampPaid(inv)
	if err := s.invoices.Update(ctx, inv); err != nil {
		return dtos.Invoice{}, fromStore(err, "Invoice", id)
	}
	return toInvoiceDTO(inv), nil
}

func (s *InvoiceService) Delete(ctx context.Context, id uint) error {
	return fromStore(s.invoices.Delete(ctx, id), "Invoice", id)
}

func (s *InvoiceService) prepare(ctx context.Context, in dtos.Invoice, inv *models.Invoice) error {
	if err := applyInvoice(in, inv); err != nil {
		return err
	}
	if time.Time(inv.DueDate).Before(time.Time(inv.IssueDate)) {
		return invalid("dueDate", "must not be before issueDate")
	}
	if err := s.resolve(ctx, inv); err != nil {
		return err
	}
	if err := ApplyItems(inv, itemInputs(in.Items), in.Tax); err != nil {
		return err
	}
	s.stampPaid(inv)
	return nil
}

func (s *InvoiceService) stampPaid(inv *models.Invoice) {
	if strings.EqualFold(inv.Status, StatusPaid) && inv.PaidDate == nil {
		d := datatypes.Date(today(s.now()))
		inv.PaidDate = &d
	}
}

func (s *InvoiceService) resolve(ctx context.Context, inv *models.Invoice) error {
	p, err := s.patients.Get(ctx, inv.PatientID)
	if err != nil {
		return fromStore(err, "Patient", inv.PatientID)
	}
	d, err := s.dentists.Get(ctx, inv.DentistID)
	if err != nil {
		return fromStore(err, "Dentist", inv.DentistID)
	}
	inv.Patient, inv.Dentist = p, d
	if inv.CaseID != nil {
		if _, err := s.cases.Get(ctx, *inv.CaseID); err != nil {
			return fromStore(err, "Case", *inv.CaseID)
		}
	}
	return nil
}
