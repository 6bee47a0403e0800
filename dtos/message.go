package dtos

// Message ids are strings on the wire; the client keys its threads by them.
type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required"`
	CaseID     string `json:"caseId,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
	IsRead     bool   `json:"isRead"`
}

type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Avatar      string `json:"avatar"`
	Initials    string `json:"initials"`
	Online      bool   `json:"online"`
	LastMessage string `json:"lastMessage"`
	Timestamp   string `json:"timestamp"`
	Unread      int    `json:"unread" validate:"gte=0"`
}
