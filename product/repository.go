package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/entity"
)

// Repository defines DB operations for products.
type Repository interface {
	CreateProduct(ctx context.Context, p *entity.Product) (*entity.Product, error)
	// GetProductByID returns (nil, nil) when no product has the given id.
	GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// ListProductsByStore returns the store's products in insertion order;
	// an empty slice when there are none.
	ListProductsByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error)
}
