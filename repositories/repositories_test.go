package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestTranslate(t *testing.T) {
	assert.Nil(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})), ErrDuplicate)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23503"}), ErrReferenced)

	other := errors.New("boom")
	assert.Equal(t, other, translate(other))
}

func TestDentistRepository_GetMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "dentists"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}))

	_, err := NewDentistRepository(db).Get(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "cases"`)).
		WithArgs(9999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewCaseRepository(db).Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDentistRepository_DeleteReferenced(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "dentists"`)).
		WithArgs(3).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := NewDentistRepository(db).Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrReferenced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseRepository_NumberExists(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "cases" WHERE case_number = $1`)).
		WithArgs("CASE-1700000000000").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := NewCaseRepository(db).NumberExists(context.Background(), "CASE-1700000000000")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_InvoiceSummary(t *testing.T) {
	db, mock := newMockDB(t)
	today := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM invoices`).
		WithArgs("2026-10-18", "2026-10-18").
		WillReturnRows(sqlmock.NewRows([]string{
			"unpaid_count", "unpaid_total", "overdue_count", "overdue_total", "paid_count", "paid_total",
		}).AddRow(3, "300.00", 1, "110.00", 2, "250.50"))

	row, err := NewReportRepository(db).InvoiceSummary(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, int64(3), row.UnpaidCount)
	assert.True(t, row.UnpaidTotal.Equal(decimal.RequireFromString("300")))
	assert.Equal(t, int64(1), row.OverdueCount)
	assert.True(t, row.OverdueTotal.Equal(decimal.RequireFromString("110")))
	assert.Equal(t, int64(2), row.PaidCount)
	assert.True(t, row.PaidTotal.Equal(decimal.RequireFromString("250.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_MonthlyRevenue(t *testing.T) {
	db, mock := newMockDB(t)
	since := time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE issue_date >= \$1`).
		WithArgs("2026-09-18").
		WillReturnRows(sqlmock.NewRows([]string{"year", "month", "total"}).
			AddRow(2026, 9, "143.00").
			AddRow(2026, 10, "57.20"))

	rows, err := NewReportRepository(db).MonthlyRevenue(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2026, rows[0].Year)
	assert.Equal(t, 9, rows[0].Month)
	assert.True(t, rows[0].Total.Equal(decimal.RequireFromString("143")))
	assert.Equal(t, 10, rows[1].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_TopDentistsByInvoiceCount(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`ORDER BY invoice_count DESC`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"dentist_id", "first_name", "last_name", "invoice_count", "total_amount"}).
			AddRow(2, "Ana", "Silva", 4, "880.00").
			AddRow(1, "Ben", "Okafor", 1, "143.00"))

	rows, err := NewReportRepository(db).TopDentistsByInvoiceCount(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(2), rows[0].DentistID)
	assert.Equal(t, "Ana", rows[0].FirstName)
	assert.Equal(t, int64(4), rows[0].InvoiceCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
