package repositories

import (
	"context"

	"dentalflow-backend/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	store[models.Message]
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{store[models.Message]{db: db}}
}

func (r *MessageRepository) ListByCase(ctx context.Context, caseID string) ([]models.Message, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("case_id = ?", caseID)
	}, "timestamp, id")
}

func (r *MessageRepository) ListByReceiver(ctx context.Context, receiverID string) ([]models.Message, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("receiver_id = ?", receiverID)
	}, "timestamp DESC, id DESC")
}

type ContactRepository struct {
	store[models.Contact]
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{store[models.Contact]{db: db}}
}

func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	return r.find(ctx, nil, "name, id")
}
