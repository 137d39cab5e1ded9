package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/entity"
	storepkg "github.com/Fatimadayan/Sooqbot/store"
)

// ErrNameRequired rejects store creation with a blank name.
var ErrNameRequired = errors.New("store name is required")

type storeService struct {
	repo storepkg.Repository
}

func NewStoreService(repo storepkg.Repository) storepkg.Service { return &storeService{repo: repo} }

func (s *storeService) CreateStore(ctx context.Context, req storepkg.CreateStoreRequest) (*entity.Store, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	tpl := req.Template
	if tpl == "" {
		tpl = entity.TemplateClassic
	}
	st := &entity.Store{
		Name:         strings.TrimSpace(req.Name),
		Category:     req.Category,
		Description:  req.Description,
		Template:     tpl,
		CustomDomain: req.CustomDomain,
		Active:       true,
		Settings:     req.Settings,
	}
	return s.repo.CreateStore(ctx, st)
}

func (s *storeService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return s.repo.GetStoreByID(ctx, id)
}

func (s *storeService) ListStores(ctx context.Context) ([]entity.Store, error) {
	return s.repo.ListStores(ctx)
}

func (s *storeService) UpdateStore(ctx context.Context, id uuid.UUID, req storepkg.UpdateStoreRequest) (*entity.Store, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Template != nil {
		fields["template"] = *req.Template
	}
	if req.CustomDomain != nil {
		if *req.CustomDomain == "" {
			fields["custom_domain"] = nil
		} else {
			fields["custom_domain"] = *req.CustomDomain
		}
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if req.Settings != nil {
		fields["settings"] = req.Settings
	}
	if len(fields) > 0 {
		if err := s.repo.UpdateStoreFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	st, err := s.repo.GetStoreByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, storepkg.ErrStoreNotFound
	}
	return st, nil
}
