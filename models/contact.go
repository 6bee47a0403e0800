package models

type Contact struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Role        string `json:"role" gorm:"not null"`
	Avatar      string `json:"avatar"`
	Initials    string `json:"initials"`
	Online      bool   `json:"online"`
	LastMessage string `json:"lastMessage"`
	Timestamp   string `json:"timestamp"`
	Unread      int    `json:"unread"`
}
