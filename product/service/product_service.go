package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Fatimadayan/Sooqbot/ai"
	"github.com/Fatimadayan/Sooqbot/entity"
	"github.com/Fatimadayan/Sooqbot/logger"
	productpkg "github.com/Fatimadayan/Sooqbot/product"
	storepkg "github.com/Fatimadayan/Sooqbot/store"
)

type productService struct {
	repo      productpkg.Repository
	storeRepo storepkg.Repository
	generator ai.Generator
}

func NewProductService(repo productpkg.Repository, storeRepo storepkg.Repository, generator ai.Generator) productpkg.Service {
	return &productService{repo: repo, storeRepo: storeRepo, generator: generator}
}

func (s *productService) CreateProduct(ctx context.Context, req productpkg.CreateProductRequest) (*entity.Product, error) {
	if req.PriceCents < 0 {
		return nil, productpkg.ErrInvalidPrice
	}
	if req.Stock < 0 {
		return nil, productpkg.ErrInvalidStock
	}
	st, err := s.storeRepo.GetStoreByID(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, productpkg.ErrStoreNotFound
	}
	p := &entity.Product{
		StoreID:     req.StoreID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		Active:      true,
	}
	return s.repo.CreateProduct(ctx, p)
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error) {
	return s.repo.ListProductsByStore(ctx, storeID)
}

// defaultGeneratedStock is the initial stock for AI-drafted products;
// the generation API does not invent inventory levels.
const defaultGeneratedStock = 10

func (s *productService) GenerateProducts(ctx context.Context, req productpkg.GenerateProductsRequest) ([]entity.Product, error) {
	st, err := s.storeRepo.GetStoreByID(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, productpkg.ErrStoreNotFound
	}

	drafts, err := s.generator.GenerateProducts(ctx, ai.GenerateRequest{
		Category:      req.Category,
		Count:         req.Count,
		MinPriceCents: req.MinPriceCents,
		MaxPriceCents: req.MaxPriceCents,
	})
	if err != nil {
		return nil, err
	}

	created := make([]entity.Product, 0, len(drafts))
	for i, d := range drafts {
		p := &entity.Product{
			StoreID:     req.StoreID,
			Name:        d.Name,
			Description: d.Description,
			PriceCents:  d.PriceCents,
			Category:    d.Category,
			ImageURL:    d.ImageURL,
			Stock:       defaultGeneratedStock,
			Active:      true,
			AIGenerated: true,
		}
		saved, err := s.repo.CreateProduct(ctx, p)
		if err != nil {
			// Earlier inserts stay persisted; the batch has no atomicity.
			logger.Log.Error("batch insert failed partway",
				zap.String("store_id", req.StoreID.String()),
				zap.Int("inserted", len(created)), zap.Error(err))
			return created, fmt.Errorf("insert generated product %d of %d: %w", i+1, len(drafts), err)
		}
		created = append(created, *saved)
	}
	return created, nil
}
