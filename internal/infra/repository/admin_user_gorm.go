package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type AdminUserGormRepository struct {
	db *gorm.DB
}

func NewAdminUserGormRepository(db *gorm.DB) *AdminUserGormRepository {
	return &AdminUserGormRepository{db: db}
}

func (r *AdminUserGormRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrAdminUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AdminUserGormRepository) FindByID(ctx context.Context, id int64) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrAdminUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AdminUserGormRepository) Create(ctx context.Context, u *model.AdminUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *AdminUserGormRepository) Update(ctx context.Context, u *model.AdminUser) error {
	return r.db.WithContext(ctx).Save(u).Error
}
