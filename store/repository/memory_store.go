package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Fatimadayan/Sooqbot/entity"
	storepkg "github.com/Fatimadayan/Sooqbot/store"
)

// MemoryStoreRepo implements store.Repository with in-memory maps. It is a
// development and test backend with the same contract as the gorm one.
type MemoryStoreRepo struct {
	mu     sync.RWMutex
	stores map[uuid.UUID]*entity.Store
	order  []uuid.UUID // insertion order for ListStores
}

func NewMemoryStoreRepo() *MemoryStoreRepo {
	return &MemoryStoreRepo{stores: make(map[uuid.UUID]*entity.Store)}
}

func (r *MemoryStoreRepo) CreateStore(ctx context.Context, s *entity.Store) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	cp := *s
	r.stores[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return s, nil
}

func (r *MemoryStoreRepo) GetStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *MemoryStoreRepo) ListStores(ctx context.Context) ([]entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]entity.Store, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, *r.stores[id])
	}
	return list, nil
}

func (r *MemoryStoreRepo) UpdateStoreFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stores[id]
	if !ok {
		return storepkg.ErrStoreNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			s.Name = v.(string)
		case "category":
			s.Category = v.(string)
		case "description":
			s.Description = v.(string)
		case "template":
			s.Template = v.(entity.StoreTemplate)
		case "custom_domain":
			if v == nil {
				s.CustomDomain = nil
			} else {
				d := v.(string)
				s.CustomDomain = &d
			}
		case "active":
			s.Active = v.(bool)
		case "settings":
			s.Settings = v.(datatypes.JSONMap)
		}
	}
	s.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryStoreRepo) CountStores(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.stores)), nil
}
