package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/entity"
)

// ErrStoreNotFound is returned by updates targeting a nonexistent store.
// Lookups treat absence as a normal outcome and return (nil, nil) instead.
var ErrStoreNotFound = errors.New("store not found")

// Repository defines DB operations for stores.
type Repository interface {
	CreateStore(ctx context.Context, s *entity.Store) (*entity.Store, error)
	// GetStoreByID returns (nil, nil) when no store has the given id.
	GetStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	// ListStores returns all stores in insertion order.
	ListStores(ctx context.Context) ([]entity.Store, error)
	// UpdateStoreFields applies a partial update. Fails with ErrStoreNotFound
	// if the target id does not exist.
	UpdateStoreFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	CountStores(ctx context.Context) (int64, error)
}
