package dtos

import "github.com/shopspring/decimal"

type Invoice struct {
	ID            uint   `json:"id"`
	InvoiceNumber string `json:"invoiceNumber" validate:"max=64"`
	Status        string `json:"status" validate:"required"`
	PatientID     uint   `json:"patientId" validate:"required"`
	PatientName   string `json:"patientName,omitempty"`
	DentistID     uint   `json:"dentistId" validate:"required"`
	DentistName   string `json:"dentistName,omitempty"`
	CaseID        *uint  `json:"caseId"`

	Amount decimal.Decimal `json:"amount"`
	// Tax is computed from the default rate when omitted.
	Tax   *decimal.Decimal `json:"tax" validate:"omitempty,gte=0"`
	Total decimal.Decimal  `json:"total"`
	Notes string           `json:"notes"`

	IssueDate string `json:"issueDate" validate:"required,datetime=2006-01-02"`
	DueDate   string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	PaidDate  string `json:"paidDate,omitempty" validate:"omitempty,datetime=2006-01-02"`

	Items []InvoiceItem `json:"items" validate:"required,min=1,dive"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type InvoiceItem struct {
	ID          uint            `json:"id"`
	Description string          `json:"description" validate:"required"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"gte=0"`
	Amount      decimal.Decimal `json:"amount"`
}
