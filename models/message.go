package models

import "time"

type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   string    `json:"senderId" gorm:"not null"`
	ReceiverID string    `json:"receiverId" gorm:"not null;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CaseID     string    `json:"caseId" gorm:"index"`
	IsRead     bool      `json:"isRead" gorm:"not null;default:false"`
	Timestamp  time.Time `json:"timestamp" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
