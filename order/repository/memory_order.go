package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/entity"
	orderpkg "github.com/Fatimadayan/Sooqbot/order"
)

// MemoryOrderRepo implements order.Repository with in-memory maps.
type MemoryOrderRepo struct {
	mu      sync.RWMutex
	orders  map[uuid.UUID]*entity.Order
	byStore map[uuid.UUID][]uuid.UUID // insertion order per store
}

func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{
		orders:  make(map[uuid.UUID]*entity.Order),
		byStore: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *MemoryOrderRepo) CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	cp := *o
	r.orders[cp.ID] = &cp
	r.byStore[cp.StoreID] = append(r.byStore[cp.StoreID], cp.ID)
	return o, nil
}

func (r *MemoryOrderRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *MemoryOrderRepo) ListOrdersByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byStore[storeID]
	list := make([]entity.Order, 0, len(ids))
	for _, id := range ids {
		list = append(list, *r.orders[id])
	}
	return list, nil
}

func (r *MemoryOrderRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return orderpkg.ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}
