package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice is the billable document for a patient's treatment.
type Invoice struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	InvoiceNumber string   `json:"invoiceNumber" gorm:"size:64;uniqueIndex;not null"`
	Status        string   `json:"status" gorm:"not null;index"` // unpaid | paid | overdue
	PatientID     uint     `json:"patientId" gorm:"not null;index"`
	Patient       *Patient `json:"-" gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT"`
	DentistID     uint     `json:"dentistId" gorm:"not null;index"`
	Dentist       *Dentist `json:"-" gorm:"foreignKey:DentistID;constraint:OnDelete:RESTRICT"`
	CaseID        *uint    `json:"caseId" gorm:"index"`
	Case          *Case    `json:"-" gorm:"foreignKey:CaseID;constraint:OnDelete:SET NULL"`

	// Items are owned by the invoice and replaced wholesale on update.
	Items  []InvoiceItem   `json:"items" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Amount decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`
	Tax    decimal.Decimal `json:"tax" gorm:"type:numeric(10,2);not null"`
	Total  decimal.Decimal `json:"total" gorm:"type:numeric(10,2);not null"`
	Notes  string          `json:"notes" gorm:"type:text"`

	IssueDate datatypes.Date  `json:"issueDate" gorm:"not null;index"`
	DueDate   datatypes.Date  `json:"dueDate" gorm:"not null"`
	PaidDate  *datatypes.Date `json:"paidDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type InvoiceItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	InvoiceID   uint            `json:"invoiceId" gorm:"not null;index"`
	Description string          `json:"description" gorm:"not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	UnitPrice   decimal.Decimal `json:"unitPrice" gorm:"type:numeric(10,2);not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`
}
