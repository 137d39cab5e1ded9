package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/entity"
)

// MemoryProductRepo implements product.Repository with in-memory maps.
type MemoryProductRepo struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*entity.Product
	byStore  map[uuid.UUID][]uuid.UUID // insertion order per store
}

func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{
		products: make(map[uuid.UUID]*entity.Product),
		byStore:  make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *MemoryProductRepo) CreateProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	cp := *p
	r.products[cp.ID] = &cp
	r.byStore[cp.StoreID] = append(r.byStore[cp.StoreID], cp.ID)
	return p, nil
}

func (r *MemoryProductRepo) GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *MemoryProductRepo) ListProductsByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byStore[storeID]
	list := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		list = append(list, *r.products[id])
	}
	return list, nil
}
