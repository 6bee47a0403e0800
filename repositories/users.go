package repositories

import (
	"context"

	"dentalflow-backend/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	store[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{store[models.User]{db: db}}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "LOWER(email) = LOWER(?)", email)
}

func (r *UserRepository) findOne(ctx context.Context, cond string, arg any) (*models.User, error) {
	var u models.User
	if err := r.conn(ctx).Where(cond, arg).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
