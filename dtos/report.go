package dtos

import "github.com/shopspring/decimal"

type InvoiceSummary struct {
	UnpaidCount  int64           `json:"unpaidCount"`
	UnpaidTotal  decimal.Decimal `json:"unpaidTotal"`
	OverdueCount int64           `json:"overdueCount"`
	OverdueTotal decimal.Decimal `json:"overdueTotal"`
	PaidCount    int64           `json:"paidCount"`
	PaidTotal    decimal.Decimal `json:"paidTotal"`
}

type MonthlyRevenue struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type TopDentist struct {
	DentistID    uint            `json:"dentistId"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	InvoiceCount int64           `json:"invoiceCount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CaseCount    int64           `json:"caseCount,omitempty"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Report is the envelope shared by all report endpoints; sections a report
// does not compute are omitted.
type Report struct {
	Months         int              `json:"months"`
	InvoiceSummary *InvoiceSummary  `json:"invoiceSummary,omitempty"`
	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue,omitempty"`
	TopDentists    []TopDentist     `json:"topDentists"`
	CasesByStatus  []StatusCount    `json:"casesByStatus,omitempty"`
}
