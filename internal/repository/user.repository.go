package repository

import (
	"context"
	"strings"

	"lagnasohalaa/internal/models"
	"lagnasohalaa/internal/query"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q query.Query) ([]models.User, int64, error)
	Count(ctx context.Context, conds map[string]interface{}) (int64, error)
}

type userRepository struct {
	*Store[models.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{Store: NewStore[models.User](db)}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.FindBy(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.FindBy(ctx, "phone", phone)
}
