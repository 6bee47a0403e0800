package models

import (
	"time"

	"gorm.io/datatypes"
)

// Case is a treatment episode linking a patient and a dentist.
type Case struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	CaseNumber  string          `json:"caseNumber" gorm:"size:64;uniqueIndex;not null"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	Status      string          `json:"status" gorm:"not null;index"`
	Priority    string          `json:"priority"`
	PatientID   uint            `json:"patientId" gorm:"not null;index"`
	Patient     *Patient        `json:"-" gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT"`
	DentistID   uint            `json:"dentistId" gorm:"not null;index"`
	Dentist     *Dentist        `json:"-" gorm:"foreignKey:DentistID;constraint:OnDelete:RESTRICT"`
	DueDate     *datatypes.Date `json:"dueDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
