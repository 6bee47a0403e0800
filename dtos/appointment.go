package dtos

type Appointment struct {
	ID              uint   `json:"id"`
	PatientID       uint   `json:"patientId" validate:"required"`
	PatientName     string `json:"patientName,omitempty"`
	DentistID       uint   `json:"dentistId" validate:"required"`
	DentistName     string `json:"dentistName,omitempty"`
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointmentTime" validate:"required"` // HH:MM or HH:MM:SS
	AppointmentType string `json:"appointmentType" validate:"required"`
	Notes           string `json:"notes"`
	Status          string `json:"status" validate:"required"`
	CaseID          *uint  `json:"caseId"`
	CaseName        string `json:"caseName,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}
