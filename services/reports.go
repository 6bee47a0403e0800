package services

import (
	"context"
	"time"

	"dentalflow-backend/dtos"
	"dentalflow-backend/repositories"

	"github.com/shopspring/decimal"
)

const (
	DefaultReportMonths = 12
	MinReportMonths     = 1
	MaxReportMonths     = 120
	topDentistsLimit    = 10
)

type ReportService struct {
	store ReportStore
	now   Clock
}

func NewReportService(store ReportStore, now Clock) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{store: store, now: now}
}

// ClampMonths bounds a reporting window to [MinReportMonths, MaxReportMonths].
func ClampMonths(months int) int {
	if months < MinReportMonths {
		return MinReportMonths
	}
	if months > MaxReportMonths {
		return MaxReportMonths
	}
	return months
}

// Financial summarizes invoices by status, revenue per month over the window
// and dentists by invoice count.
func (s *ReportService) Financial(ctx context.Context, months int) (dtos.Report, error) {
	months = ClampMonths(months)
	day := today(s.now())
	since := monthsBefore(day, months)

	sum, err := s.store.InvoiceSummary(ctx, day)
	if err != nil {
		return dtos.Report{}, fromStore(err, "Report", nil)
	}
	revenue, err := s.store.MonthlyRevenue(ctx, since)
	if err != nil {
		return dtos.Report{}, fromStore(err, "Report", nil)
	}
	top, err := s.store.TopDentistsByInvoiceCount(ctx, topDentistsLimit)
	if err != nil {
		return dtos.Report{}, fromStore(err, "Report", nil)
	}

	return dtos.Report{
		Months: months,
		InvoiceSummary: &dtos.InvoiceSummary{
			UnpaidCount:  sum.UnpaidCount,
			UnpaidTotal:  sum.UnpaidTotal,
			OverdueCount: sum.OverdueCount,
			OverdueTotal: sum.OverdueTotal,
			PaidCount:    sum.PaidCount,
			PaidTotal:    sum.PaidTotal,
		},
		MonthlyRevenue: fillMonths(since, day, revenue),
		TopDentists:    topDentistDTOs(top),
	}, nil
}

// Dentists ranks dentists by revenue from invoices issued within the window.
func (s *ReportService) Dentists(ctx context.Context, months int) (dtos.Report, error) {
	months = ClampMonths(months)
	since := monthsBefore(today(s.now()), months)
	top, err := s.store.TopDentistsByRevenue(ctx, since, topDentistsLimit)
	if err != nil {
		return dtos.Report{}, fromStore(err, "Report", nil)
	}
	return dtos.Report{Months: months, TopDentists: topDentistDTOs(top)}, nil
}

// Cases counts cases opened within the window by status and ranks dentists by case count.
func (s *ReportService) Cases(ctx context.Context, months int) (dtos.Report, error) {
	months = ClampMonths(months)
	since := monthsBefore(today(s.now()), months)

	counts, err := s.store.CaseCountsByStatus(ctx, since)
	if err != nil {
		return dtos.Report{}, fromStore(err, "Report", nil)
	}
	top, err := s.store.TopDentistsByCaseCount(ctx, since, topDentistsLimit)
	if err != nil {
		return dtos.Report{}, fromStore(err, "Report", nil)
	}

	byStatus := make([]dtos.StatusCount, 0, len(counts))
	for _, c := range counts {
		byStatus = append(byStatus, dtos.StatusCount{Status: c.Status, Count: c.Count})
	}
	return dtos.Report{Months: months, TopDentists: topDentistDTOs(top), CasesByStatus: byStatus}, nil
}

// monthsBefore steps back whole calendar months, clamping the day to the
// length of the target month (Mar 31 minus one month is Feb 28).
func monthsBefore(day time.Time, months int) time.Time {
	y, m, d := day.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, day.Location()).AddDate(0, -months, 0)
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, day.Location())
}

// fillMonths returns one entry per calendar month from since to until, in
// order, using zero for months without revenue.
func fillMonths(since, until time.Time, rows []repositories.MonthTotal) []dtos.MonthlyRevenue {
	type ym struct{ y, m int }
	totals := make(map[ym]decimal.Decimal, len(rows))
	for _, r := range rows {
		totals[ym{r.Year, r.Month}] = r.Total
	}

	var out []dtos.MonthlyRevenue
	cur := time.Date(since.Year(), since.Month(), 1, 0, 0, 0, 0, since.Location())
	end := time.Date(until.Year(), until.Month(), 1, 0, 0, 0, 0, since.Location())
	for !cur.After(end) {
		key := ym{cur.Year(), int(cur.Month())}
		total, ok := totals[key]
		if !ok {
			total = decimal.Zero
		}
		out = append(out, dtos.MonthlyRevenue{Year: key.y, Month: key.m, Total: total})
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}

func topDentistDTOs(rows []repositories.DentistTotals) []dtos.TopDentist {
	out := make([]dtos.TopDentist, 0, len(rows))
	for _, r := range rows {
		out = append(out, dtos.TopDentist{
			DentistID:    r.DentistID,
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			InvoiceCount: r.InvoiceCount,
			TotalAmount:  r.TotalAmount,
			CaseCount:    r.CaseCount,
		})
	}
	return out
}
