package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrAdminUserNotFound = errors.New("admin user not found")

type AdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	FindByID(ctx context.Context, id int64) (*model.AdminUser, error)
	Create(ctx context.Context, u *model.AdminUser) error
	Update(ctx context.Context, u *model.AdminUser) error
}
