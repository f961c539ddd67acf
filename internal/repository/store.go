package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope 查询范围，归属过滤与可选查询条件都以 Scope 表达
type Scope = func(*gorm.DB) *gorm.DB

// OwnedBy 限定为用户自己的记录
func OwnedBy(userID uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// Equals 值为 nil 时不过滤
func Equals(column string, value *uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

// Store 单表通用 CRUD，读取时按 preloads 预加载关联
type Store[T any] struct {
	DB       *gorm.DB
	preloads []string
}

func NewStore[T any](db *gorm.DB, preloads ...string) *Store[T] {
	return &Store[T]{DB: db, preloads: preloads}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (s *Store[T]) query(ctx context.Context, scopes []Scope) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(new(T))
	for _, p := range s.preloads {
		q = q.Preload(p, orderByID)
	}
	return q.Scopes(scopes...)
}

func (s *Store[T]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	items := make([]T, 0)
	err := s.query(ctx, scopes).Order("id").Find(&items).Error
	return items, err
}

// Get 不在范围内的记录返回 gorm.ErrRecordNotFound
func (s *Store[T]) Get(ctx context.Context, id uint, scopes ...Scope) (*T, error) {
	var item T
	err := s.query(ctx, scopes).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store[T]) Exists(ctx context.Context, id uint, scopes ...Scope) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(new(T)).Scopes(scopes...).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *Store[T]) Create(ctx context.Context, item *T) error {
	return s.DB.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (s *Store[T]) Save(ctx context.Context, item *T) error {
	return s.DB.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (s *Store[T]) Delete(ctx context.Context, id uint, scopes ...Scope) error {
	result := s.DB.WithContext(ctx).Scopes(scopes...).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store[T]) Count(ctx context.Context, scopes ...Scope) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(new(T)).Scopes(scopes...).Count(&count).Error
	return count, err
}
