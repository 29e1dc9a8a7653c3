package repository

import (
	"context"
	"errors"

	"lagnasohalaa/internal/query"

	"gorm.io/gorm"
)

// ResourceRepository is the store contract every entity shares: simple CRUD
// plus the filtered-list and count operations the query engine drives.
type ResourceRepository[T any] interface {
	Create(ctx context.Context, m *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindBy(ctx context.Context, column string, value interface{}) (*T, error)
	Save(ctx context.Context, m *T) error
	Delete(ctx context.Context, id uint) error
	DeleteBy(ctx context.Context, column string, value interface{}) error
	List(ctx context.Context, q query.Query) ([]T, int64, error)
	Count(ctx context.Context, conds map[string]interface{}) (int64, error)
}

// Store is the gorm-backed implementation shared by all entities.
type Store[T any] struct {
	db *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

func (s *Store[T]) Create(ctx context.Context, m *T) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *Store[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var m T
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store[T]) FindBy(ctx context.Context, column string, value interface{}) (*T, error) {
	var m T
	if err := s.db.WithContext(ctx).Where(column+" = ?", value).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store[T]) Save(ctx context.Context, m *T) error {
	return s.db.WithContext(ctx).Save(m).Error
}

func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store[T]) DeleteBy(ctx context.Context, column string, value interface{}) error {
	result := s.db.WithContext(ctx).Where(column+" = ?", value).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List runs the same predicate twice: once for the page of rows, once for
// the total count before pagination.
func (s *Store[T]) List(ctx context.Context, q query.Query) ([]T, int64, error) {
	var total int64
	counter := q.ApplyFilters(s.db.WithContext(ctx).Model(new(T)))
	if err := counter.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []T{}
	finder := q.ApplyWindow(q.ApplyOrder(q.ApplyFilters(s.db.WithContext(ctx).Model(new(T)))))
	if err := finder.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Store[T]) Count(ctx context.Context, conds map[string]interface{}) (int64, error) {
	var total int64
	db := s.db.WithContext(ctx).Model(new(T))
	if len(conds) > 0 {
		db = db.Where(conds)
	}
	err := db.Count(&total).Error
	return total, err
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
