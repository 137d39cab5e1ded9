package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Fatimadayan/Sooqbot/entity"
	storepkg "github.com/Fatimadayan/Sooqbot/store"
)

type GormStoreRepo struct{ db *gorm.DB }

func NewGormStoreRepo(db *gorm.DB) storepkg.Repository { return &GormStoreRepo{db: db} }

func (r *GormStoreRepo) CreateStore(ctx context.Context, s *entity.Store) (*entity.Store, error) {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *GormStoreRepo) GetStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var s entity.Store
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormStoreRepo) ListStores(ctx context.Context) ([]entity.Store, error) {
	var list []entity.Store
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormStoreRepo) UpdateStoreFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&entity.Store{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storepkg.ErrStoreNotFound
	}
	return nil
}

func (r *GormStoreRepo) CountStores(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Store{}).Count(&count).Error
	return count, err
}
