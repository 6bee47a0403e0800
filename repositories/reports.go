package repositories

import (
	"context"
	"time"

	"dentalflow-backend/database"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceSummaryRow struct {
	UnpaidCount  int64
	UnpaidTotal  decimal.Decimal
	OverdueCount int64
	OverdueTotal decimal.Decimal
	PaidCount    int64
	PaidTotal    decimal.Decimal
}

type MonthTotal struct {
	Year  int
	Month int
	Total decimal.Decimal
}

type DentistTotals struct {
	DentistID    uint
	FirstName    string
	LastName     string
	InvoiceCount int64
	TotalAmount  decimal.Decimal
	CaseCount    int64
}

type StatusCount struct {
	Status string
	Count  int64
}

// ReportRepository runs the read-only aggregation queries behind the reports.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const invoiceSummarySQL = `
SELECT
	COUNT(*) FILTER (WHERE status = 'unpaid')                                AS unpaid_count,
	COALESCE(SUM(total) FILTER (WHERE status = 'unpaid'), 0)                 AS unpaid_total,
	COUNT(*) FILTER (WHERE status = 'unpaid' AND due_date < ?)               AS overdue_count,
	COALESCE(SUM(total) FILTER (WHERE status = 'unpaid' AND due_date < ?), 0) AS overdue_total,
	COUNT(*) FILTER (WHERE status = 'paid')                                  AS paid_count,
	COALESCE(SUM(total) FILTER (WHERE status = 'paid'), 0)                   AS paid_total
FROM invoices`

// InvoiceSummary counts and sums unpaid, overdue and paid invoices. An unpaid
// invoice is overdue when its due date is strictly before today.
func (r *ReportRepository) InvoiceSummary(ctx context.Context, today time.Time) (InvoiceSummaryRow, error) {
	day := today.Format("2006-01-02")
	var row InvoiceSummaryRow
	err := database.Conn(ctx, r.db).Raw(invoiceSummarySQL, day, day).Scan(&row).Error
	return row, translate(err)
}

const monthlyRevenueSQL = `
SELECT
	CAST(EXTRACT(YEAR FROM issue_date) AS INTEGER)  AS year,
	CAST(EXTRACT(MONTH FROM issue_date) AS INTEGER) AS month,
	COALESCE(SUM(total), 0)                         AS total
FROM invoices
WHERE issue_date >= ?
GROUP BY 1, 2
ORDER BY 1, 2`

// MonthlyRevenue sums invoice totals per issue month for invoices issued on or after since.
func (r *ReportRepository) MonthlyRevenue(ctx context.Context, since time.Time) ([]MonthTotal, error) {
	var rows []MonthTotal
	err := database.Conn(ctx, r.db).Raw(monthlyRevenueSQL, since.Format("2006-01-02")).Scan(&rows).Error
	return rows, translate(err)
}

const topDentistsByInvoiceCountSQL = `
SELECT d.id AS dentist_id, d.first_name, d.last_name,
	COUNT(i.id) AS invoice_count, COALESCE(SUM(i.total), 0) AS total_amount
FROM invoices i
JOIN dentists d ON d.id = i.dentist_id
GROUP BY d.id, d.first_name, d.last_name
ORDER BY invoice_count DESC, d.id
LIMIT ?`

func (r *ReportRepository) TopDentistsByInvoiceCount(ctx context.Context, limit int) ([]DentistTotals, error) {
	var rows []DentistTotals
	err := database.Conn(ctx, r.db).Raw(topDentistsByInvoiceCountSQL, limit).Scan(&rows).Error
	return rows, translate(err)
}

const topDentistsByRevenueSQL = `
SELECT d.id AS dentist_id, d.first_name, d.last_name,
	COUNT(i.id) AS invoice_count, COALESCE(SUM(i.total), 0) AS total_amount
FROM invoices i
JOIN dentists d ON d.id = i.dentist_id
WHERE i.issue_date >= ?
GROUP BY d.id, d.first_name, d.last_name
ORDER BY total_amount DESC, d.id
LIMIT ?`

func (r *ReportRepository) TopDentistsByRevenue(ctx context.Context, since time.Time, limit int) ([]DentistTotals, error) {
	var rows []DentistTotals
	err := database.Conn(ctx, r.db).Raw(topDentistsByRevenueSQL, since.Format("2006-01-02"), limit).Scan(&rows).Error
	return rows, translate(err)
}

const topDentistsByCaseCountSQL = `
SELECT d.id AS dentist_id, d.first_name, d.last_name, COUNT(c.id) AS case_count
FROM cases c
JOIN dentists d ON d.id = c.dentist_id
WHERE c.created_at >= ?
GROUP BY d.id, d.first_name, d.last_name
ORDER BY case_count DESC, d.id
LIMIT ?`

func (r *ReportRepository) TopDentistsByCaseCount(ctx context.Context, since time.Time, limit int) ([]DentistTotals, error) {
	var rows []DentistTotals
	err := database.Conn(ctx, r.db).Raw(topDentistsByCaseCountSQL, since, limit).Scan(&rows).Error
	return rows, translate(err)
}

const caseCountsByStatusSQL = `
SELECT status, COUNT(*) AS count
FROM cases
WHERE created_at >= ?
GROUP BY status
ORDER BY status`

func (r *ReportRepository) CaseCountsByStatus(ctx context.Context, since time.Time) ([]StatusCount, error) {
	var rows []StatusCount
	err := database.Conn(ctx, r.db).Raw(caseCountsByStatusSQL, since).Scan(&rows).Error
	return rows, translate(err)
}
