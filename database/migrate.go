package database

import (
	"fmt"

	"dentalflow-backend/models"

	"gorm.io/gorm"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns/index tags)
// - composite indexes used by the report queries
// - CHECK constraints on money and quantity columns
func Migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Dentist{},
			&models.Patient{},
			&models.Case{},
			&models.Appointment{},
			&models.Invoice{},
			&models.InvoiceItem{},
			&models.InventoryCategory{},
			&models.Supplier{},
			&models.InventoryItem{},
			&models.Contact{},
			&models.Message{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_invoices_status_due_date ON invoices (status, due_date)`,
			`CREATE INDEX IF NOT EXISTS idx_invoices_dentist_issue_date ON invoices (dentist_id, issue_date)`,
			`CREATE INDEX IF NOT EXISTS idx_cases_created_at ON cases (created_at)`,
			`CREATE INDEX IF NOT EXISTS idx_messages_case_timestamp ON messages (case_id, timestamp)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		checks := []struct{ table, name, expr string }{
			{"invoice_items", "chk_invoice_items_quantity_nonneg", "quantity >= 0"},
			{"invoice_items", "chk_invoice_items_unit_price_nonneg", "unit_price >= 0"},
			{"invoice_items", "chk_invoice_items_amount_nonneg", "amount >= 0"},
			{"invoices", "chk_invoices_total_sum", "total = amount + tax"},
			{"inventory_items", "chk_inventory_items_quantity_nonneg", "quantity >= 0"},
			{"inventory_items", "chk_inventory_items_unit_price_nonneg", "unit_price >= 0"},
		}
		for _, c := range checks {
			if err := tx.Exec(checkConstraint(c.table, c.name, c.expr)).Error; err != nil {
				return fmt.Errorf("check constraint migration failed on %s: %w", c.name, err)
			}
		}
		return nil
	})
}

func checkConstraint(table, name, expr string) string {
	return fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint
		WHERE conrelid = '%[1]s'::regclass
		  AND conname  = '%[2]s'
	) THEN
		ALTER TABLE %[1]s
		ADD CONSTRAINT %[2]s
		CHECK (%[3]s);
	END IF;
END $$;`, table, name, expr)
}
