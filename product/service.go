package product

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/entity"
)

var (
	// ErrStoreNotFound rejects products referencing a nonexistent store.
	ErrStoreNotFound = errors.New("store not found")
	// ErrInvalidPrice and ErrInvalidStock reject negative values.
	ErrInvalidPrice = errors.New("price must not be negative")
	ErrInvalidStock = errors.New("stock must not be negative")
)

type CreateProductRequest struct {
	StoreID     uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	Category    string
	ImageURL    string
	Stock       int
}

// GenerateProductsRequest asks for a batch of AI-drafted products for one
// store. Price bounds are in minor units.
type GenerateProductsRequest struct {
	StoreID       uuid.UUID
	Category      string
	Count         int
	MinPriceCents int64
	MaxPriceCents int64
}

type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error)
	// GenerateProducts drafts Count products via one upstream call and
	// persists them sequentially. A generation failure persists nothing;
	// a mid-batch insert failure keeps the earlier inserts (no atomicity
	// across the batch).
	GenerateProducts(ctx context.Context, req GenerateProductsRequest) ([]entity.Product, error)
}
