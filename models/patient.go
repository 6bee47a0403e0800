package models

import "time"

type Patient struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	FirstName string   `json:"firstName" gorm:"not null"`
	LastName  string   `json:"lastName" gorm:"not null"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	DentistID *uint    `json:"dentistId" gorm:"index"`
	Dentist   *Dentist `json:"-" gorm:"foreignKey:DentistID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
