package services

import (
	"context"
	"time"

	"dentalflow-backend/models"
	"dentalflow-backend/repositories"
)

type PatientStore interface {
	Get(ctx context.Context, id uint) (*models.Patient, error)
	List(ctx context.Context, f repositories.PatientFilter) ([]models.Patient, error)
	Create(ctx context.Context, p *models.Patient) error
	Update(ctx context.Context, p *models.Patient) error
	Delete(ctx context.Context, id uint) error
}

type DentistStore interface {
	Get(ctx context.Context, id uint) (*models.Dentist, error)
	List(ctx context.Context) ([]models.Dentist, error)
	Create(ctx context.Context, d *models.Dentist) error
	Update(ctx context.Context, d *models.Dentist) error
	Delete(ctx context.Context, id uint) error
}

type AppointmentStore interface {
	Get(ctx context.Context, id uint) (*models.Appointment, error)
	List(ctx context.Context, f repositories.AppointmentFilter) ([]models.Appointment, error)
	Create(ctx context.Context, a *models.Appointment) error
	Update(ctx context.Context, a *models.Appointment) error
	Delete(ctx context.Context, id uint) error
}

type CaseStore interface {
	Get(ctx context.Context, id uint) (*models.Case, error)
	List(ctx context.Context, f repositories.CaseFilter) ([]models.Case, error)
	Create(ctx context.Context, c *models.Case) error
	Update(ctx context.Context, c *models.Case) error
	Delete(ctx context.Context, id uint) error
	NumberExists(ctx context.Context, number string) (bool, error)
}

type InvoiceStore interface {
	Get(ctx context.Context, id uint) (*models.Invoice, error)
	List(ctx context.Context, f repositories.InvoiceFilter) ([]models.Invoice, error)
	// Save writes the invoice and replaces its items atomically.
	Save(ctx context.Context, inv *models.Invoice) error
	// Update writes the invoice row only.
	Update(ctx context.Context, inv *models.Invoice) error
	Delete(ctx context.Context, id uint) error
	NumberExists(ctx context.Context, number string) (bool, error)
}

type InventoryStore interface {
	Get(ctx context.Context, id uint) (*models.InventoryItem, error)
	List(ctx context.Context) ([]models.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]models.InventoryItem, error)
	Create(ctx context.Context, i *models.InventoryItem) error
	Update(ctx context.Context, i *models.InventoryItem) error
	Delete(ctx context.Context, id uint) error
}

type CategoryStore interface {
	Get(ctx context.Context, id uint) (*models.InventoryCategory, error)
	List(ctx context.Context) ([]models.InventoryCategory, error)
	Create(ctx context.Context, c *models.InventoryCategory) error
	Update(ctx context.Context, c *models.InventoryCategory) error
	Delete(ctx context.Context, id uint) error
}

type SupplierStore interface {
	Get(ctx context.Context, id uint) (*models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
	Create(ctx context.Context, s *models.Supplier) error
	Update(ctx context.Context, s *models.Supplier) error
	Delete(ctx context.Context, id uint) error
}

type MessageStore interface {
	Get(ctx context.Context, id uint) (*models.Message, error)
	ListByCase(ctx context.Context, caseID string) ([]models.Message, error)
	ListByReceiver(ctx context.Context, receiverID string) ([]models.Message, error)
	Create(ctx context.Context, m *models.Message) error
	Update(ctx context.Context, m *models.Message) error
}

type ContactStore interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, c *models.Contact) error
}

type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

type ReportStore interface {
	InvoiceSummary(ctx context.Context, today time.Time) (repositories.InvoiceSummaryRow, error)
	MonthlyRevenue(ctx context.Context, since time.Time) ([]repositories.MonthTotal, error)
	TopDentistsByInvoiceCount(ctx context.Context, limit int) ([]repositories.DentistTotals, error)
	TopDentistsByRevenue(ctx context.Context, since time.Time, limit int) ([]repositories.DentistTotals, error)
	TopDentistsByCaseCount(ctx context.Context, since time.Time, limit int) ([]repositories.DentistTotals, error)
	CaseCountsByStatus(ctx context.Context, since time.Time) ([]repositories.StatusCount, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(username, role string) (string, error)
}
