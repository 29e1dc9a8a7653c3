package mocks

import (
	"context"

	"lagnasohalaa/internal/models"
	"lagnasohalaa/internal/query"

	"github.com/stretchr/testify/mock"
)

// MockResource is a testify mock for the shared resource repository.
type MockResource[T any] struct {
	mock.Mock
}

func (m *MockResource[T]) Create(ctx context.Context, v *T) error {
	args := m.Called(v)
	return args.Error(0)
}

func (m *MockResource[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResource[T]) FindBy(ctx context.Context, column string, value interface{}) (*T, error) {
	args := m.Called(column, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResource[T]) Save(ctx context.Context, v *T) error {
	args := m.Called(v)
	return args.Error(0)
}

func (m *MockResource[T]) Delete(ctx context.Context, id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockResource[T]) DeleteBy(ctx context.Context, column string, value interface{}) error {
	args := m.Called(column, value)
	return args.Error(0)
}

func (m *MockResource[T]) List(ctx context.Context, q query.Query) ([]T, int64, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]T), args.Get(1).(int64), args.Error(2)
}

func (m *MockResource[T]) Count(ctx context.Context, conds map[string]interface{}) (int64, error) {
	args := m.Called(conds)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *models.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *models.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, q query.Query) ([]models.User, int64, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Count(ctx context.Context, conds map[string]interface{}) (int64, error) {
	args := m.Called(conds)
	return args.Get(0).(int64), args.Error(1)
}
