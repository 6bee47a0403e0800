package repositories

import (
	"context"

	"dentalflow-backend/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// store implements the primary-key operations every entity repository shares.
// Associations are loaded through preloads on reads and never written.
type store[T any] struct {
	db       *gorm.DB
	preloads []string
}

func (s store[T]) conn(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, s.db)
}

func (s store[T]) query(ctx context.Context) *gorm.DB {
	q := s.conn(ctx)
	for _, p := range s.preloads {
		q = q.Preload(p)
	}
	return q
}

func (s store[T]) Get(ctx context.Context, id uint) (*T, error) {
	var m T
	if err := s.query(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (s store[T]) Create(ctx context.Context, m *T) error {
	return translate(s.conn(ctx).Omit(clause.Associations).Create(m).Error)
}

func (s store[T]) Update(ctx context.Context, m *T) error {
	return translate(s.conn(ctx).Omit(clause.Associations).Save(m).Error)
}

func (s store[T]) Delete(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s store[T]) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB, order string) ([]T, error) {
	q := s.query(ctx)
	if scope != nil {
		q = scope(q)
	}
	var out []T
	if err := q.Order(order).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}
