package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Fatimadayan/Sooqbot/entity"
)

type CreateStoreRequest struct {
	Name         string
	Category     string
	Description  string
	Template     entity.StoreTemplate
	CustomDomain *string
	Settings     datatypes.JSONMap
}

// UpdateStoreRequest carries a partial update; nil fields are left untouched.
// An empty CustomDomain clears the domain.
type UpdateStoreRequest struct {
	Name         *string
	Category     *string
	Description  *string
	Template     *entity.StoreTemplate
	CustomDomain *string
	Active       *bool
	Settings     datatypes.JSONMap
}

type Service interface {
	CreateStore(ctx context.Context, req CreateStoreRequest) (*entity.Store, error)
	GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	ListStores(ctx context.Context) ([]entity.Store, error)
	UpdateStore(ctx context.Context, id uuid.UUID, req UpdateStoreRequest) (*entity.Store, error)
}
