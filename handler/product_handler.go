package api

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/ai"
	productpkg "github.com/Fatimadayan/Sooqbot/product"
)

// ProductHandler bundles dependencies for product-related HTTP handlers.
type ProductHandler struct {
	service productpkg.Service
}

func NewProductHandler(svc productpkg.Service) *ProductHandler {
	return &ProductHandler{service: svc}
}

type createProductPayload struct {
	StoreID     string `json:"store_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Stock       int    `json:"stock" binding:"min=0"`
}

// CreateProduct adds a manually entered product to a store.
func (h *ProductHandler) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createProductPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		sid, err := uuid.Parse(p.StoreID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store_id"})
			return
		}

		req := productpkg.CreateProductRequest{
			StoreID:     sid,
			Name:        p.Name,
			Description: p.Description,
			PriceCents:  p.PriceCents,
			Category:    p.Category,
			ImageURL:    p.ImageURL,
			Stock:       p.Stock,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateProduct(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, productpkg.ErrStoreNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
			case errors.Is(err, productpkg.ErrInvalidPrice), errors.Is(err, productpkg.ErrInvalidStock):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListProducts returns a store's products: GET /api/v1/products?store_id=
func (h *ProductHandler) ListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := uuid.Parse(c.Query("store_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing store_id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		products, err := h.service.ListProducts(ctx, sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProduct fetches one product by id.
func (h *ProductHandler) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		p, err := h.service.GetProduct(ctx, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

type priceRangePayload struct {
	Min float64 `json:"min" binding:"min=0"`
	Max float64 `json:"max" binding:"min=0"`
}

type generateProductsPayload struct {
	Category   string            `json:"category" binding:"required"`
	Count      int               `json:"count" binding:"required,min=1,max=20"`
	PriceRange priceRangePayload `json:"price_range" binding:"required"`
}

// GenerateProducts drafts and persists a batch of AI-generated products:
// POST /api/v1/stores/:id/generate-products
func (h *ProductHandler) GenerateProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
			return
		}
		var p generateProductsPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		if p.PriceRange.Max < p.PriceRange.Min {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price_range.max must be >= price_range.min"})
			return
		}

		req := productpkg.GenerateProductsRequest{
			StoreID:       sid,
			Category:      p.Category,
			Count:         p.Count,
			MinPriceCents: int64(math.Round(p.PriceRange.Min * 100)),
			MaxPriceCents: int64(math.Round(p.PriceRange.Max * 100)),
		}

		// Generation is a single blocking upstream call; allow more time
		// than the CRUD handlers.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()
		created, err := h.service.GenerateProducts(ctx, req)
		if err != nil {
			var genErr *ai.GenerationError
			switch {
			case errors.Is(err, productpkg.ErrStoreNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
			case errors.As(err, &genErr):
				c.JSON(http.StatusBadGateway, gin.H{"error": "product generation failed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist generated products", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"products": created, "count": len(created)})
	}
}
