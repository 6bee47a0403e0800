package services

import (
	"context"
	"strings"

	"dentalflow-backend/auth"
	"dentalflow-backend/dtos"
	"dentalflow-backend/models"
)

// MessageService is a polling store for internal messages and the contact list.
type MessageService struct {
	messages MessageStore
	contacts ContactStore
}

func NewMessageService(messages MessageStore, contacts ContactStore) *MessageService {
	return &MessageService{messages: messages, contacts: contacts}
}

func (s *MessageService) Contacts(ctx context.Context) ([]dtos.Contact, error) {
	rows, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fromStore(err, "Contact", nil)
	}
	out := make([]dtos.Contact, 0, len(rows))
	for i := range rows {
		out = append(out, toContactDTO(&rows[i]))
	}
	return out, nil
}

func (s *MessageService) CreateContact(ctx context.Context, in dtos.Contact) (dtos.Contact, error) {
	var c models.Contact
	applyContact(in, &c)
	if err := s.contacts.Create(ctx, &c); err != nil {
		return dtos.Contact{}, fromStore(err, "Contact", nil)
	}
	return toContactDTO(&c), nil
}

func (s *MessageService) ByCase(ctx context.Context, caseID string) ([]dtos.Message, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return nil, invalid("caseId", "is required")
	}
	return messageDTOs(s.messages.ListByCase(ctx, caseID))
}

// Inbox lists the messages addressed to the principal, newest first.
func (s *MessageService) Inbox(ctx context.Context, p *auth.Principal) ([]dtos.Message, error) {
	if p == nil {
		return nil, ErrUnauthorized
	}
	return messageDTOs(s.messages.ListByReceiver(ctx, p.Username))
}

// Send stores a message. An authenticated caller always sends as itself; a
// senderId naming anyone else is rejected. Anonymous callers must name the
// sender.
func (s *MessageService) Send(ctx context.Context, p *auth.Principal, in dtos.Message) (dtos.Message, error) {
	sender := strings.TrimSpace(in.SenderID)
	if p != nil {
		if sender != "" && sender != p.Username {
			return dtos.Message{}, invalid("senderId", "must match the authenticated user")
		}
		sender = p.Username
	}
	if sender == "" {
		return dtos.Message{}, invalid("senderId", "is required")
	}
	receiver := strings.TrimSpace(in.ReceiverID)
	if receiver == "" {
		return dtos.Message{}, invalid("receiverId", "is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return dtos.Message{}, invalid("content", "is required")
	}

	m := models.Message{
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    in.Content,
		CaseID:     strings.TrimSpace(in.CaseID),
	}
	if err := s.messages.Create(ctx, &m); err != nil {
		return dtos.Message{}, fromStore(err, "Message", nil)
	}
	return toMessageDTO(&m), nil
}

func (s *MessageService) MarkRead(ctx context.Context, id uint) (dtos.Message, error) {
	m, err := s.messages.Get(ctx, id)
	if err != nil {
		return dtos.Message{}, fromStore(err, "Message", id)
	}
	if !m.IsRead {
		m.IsRead = true
		if err := s.messages.Update(ctx, m); err != nil {
			return dtos.Message{}, fromStore(err, "Message", id)
		}
	}
	return toMessageDTO(m), nil
}

func messageDTOs(rows []models.Message, err error) ([]dtos.Message, error) {
	if err != nil {
		return nil, fromStore(err, "Message", nil)
	}
	out := make([]dtos.Message, 0, len(rows))
	for i := range rows {
		out = append(out, toMessageDTO(&rows[i]))
	}
	return out, nil
}
