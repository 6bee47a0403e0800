package dtos

type Case struct {
	ID          uint   `json:"id"`
	CaseNumber  string `json:"caseNumber" validate:"max=64"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"required"`
	Priority    string `json:"priority"`
	PatientID   uint   `json:"patientId" validate:"required"`
	PatientName string `json:"patientName,omitempty"`
	DentistID   uint   `json:"dentistId" validate:"required"`
	DentistName string `json:"dentistName,omitempty"`
	DueDate     string `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}
