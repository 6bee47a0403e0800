package repositories

import (
	"context"

	"dentalflow-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceFilter struct {
	Status    string
	PatientID *uint
	DentistID *uint
}

type InvoiceRepository struct {
	store[models.Invoice]
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{store[models.Invoice]{db: db, preloads: []string{"Patient", "Dentist"}}}
}

func (r *InvoiceRepository) withItems(q *gorm.DB) *gorm.DB {
	return q.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
}

func (r *InvoiceRepository) Get(ctx context.Context, id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.withItems(r.query(ctx)).First(&inv, id).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, f InvoiceFilter) ([]models.Invoice, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		q = r.withItems(q)
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		if f.PatientID != nil {
			q = q.Where("patient_id = ?", *f.PatientID)
		}
		if f.DentistID != nil {
			q = q.Where("dentist_id = ?", *f.DentistID)
		}
		return q
	}, "issue_date DESC, id DESC")
}

// Save writes the invoice row and replaces its item set in one transaction,
// a savepoint when the context already carries the request transaction.
func (r *InvoiceRepository) Save(ctx context.Context, inv *models.Invoice) error {
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(inv).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		if len(inv.Items) == 0 {
			return nil
		}
		for i := range inv.Items {
			inv.Items[i].ID = 0
			inv.Items[i].InvoiceID = inv.ID
		}
		return tx.Create(&inv.Items).Error
	})
	return translate(err)
}

// Delete removes the invoice together with the items it owns.
func (r *InvoiceRepository) Delete(ctx context.Context, id uint) error {
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Invoice{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translate(err)
}

func (r *InvoiceRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var n int64
	if err := r.conn(ctx).Model(&models.Invoice{}).Where("invoice_number = ?", number).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}
