package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Fatimadayan/Sooqbot/entity"
	productpkg "github.com/Fatimadayan/Sooqbot/product"
)

type GormProductRepo struct{ db *gorm.DB }

func NewGormProductRepo(db *gorm.DB) productpkg.Repository { return &GormProductRepo{db: db} }

func (r *GormProductRepo) CreateProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormProductRepo) GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepo) ListProductsByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error) {
	list := []entity.Product{}
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
