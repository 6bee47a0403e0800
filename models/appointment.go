package models

import (
	"time"

	"gorm.io/datatypes"
)

type Appointment struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	PatientID       uint           `json:"patientId" gorm:"not null;index"`
	Patient         *Patient       `json:"-" gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT"`
	DentistID       uint           `json:"dentistId" gorm:"not null;index:idx_appointments_dentist_date,priority:1"`
	Dentist         *Dentist       `json:"-" gorm:"foreignKey:DentistID;constraint:OnDelete:RESTRICT"`
	AppointmentDate datatypes.Date `json:"appointmentDate" gorm:"not null;index:idx_appointments_dentist_date,priority:2"`
	AppointmentTime datatypes.Time `json:"appointmentTime" gorm:"not null"`
	AppointmentType string         `json:"appointmentType" gorm:"not null"`
	Notes           string         `json:"notes"`
	Status          string         `json:"status" gorm:"not null"` // scheduled | completed | cancelled | no-show
	CaseID          *uint          `json:"caseId" gorm:"index"`
	Case            *Case          `json:"-" gorm:"foreignKey:CaseID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
