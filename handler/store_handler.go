package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	authpkg "github.com/Fatimadayan/Sooqbot/auth"
	"github.com/Fatimadayan/Sooqbot/entity"
	storepkg "github.com/Fatimadayan/Sooqbot/store"
	storesvc "github.com/Fatimadayan/Sooqbot/store/service"
)

// StoreHandler bundles dependencies for store-related HTTP handlers.
type StoreHandler struct {
	service   storepkg.Service
	jwtSecret string
}

// NewStoreHandler constructs a StoreHandler.
func NewStoreHandler(svc storepkg.Service, jwtSecret string) *StoreHandler {
	return &StoreHandler{service: svc, jwtSecret: jwtSecret}
}

type createStorePayload struct {
	Name         string                 `json:"name" binding:"required"`
	Category     string                 `json:"category"`
	Description  string                 `json:"description"`
	Template     string                 `json:"template"`
	CustomDomain *string                `json:"custom_domain"`
	Settings     map[string]interface{} `json:"settings"`
}

// CreateStore creates a store and issues its dashboard token.
func (h *StoreHandler) CreateStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createStorePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		req := storepkg.CreateStoreRequest{
			Name:         p.Name,
			Category:     p.Category,
			Description:  p.Description,
			Template:     entity.StoreTemplate(p.Template),
			CustomDomain: p.CustomDomain,
			Settings:     datatypes.JSONMap(p.Settings),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateStore(ctx, req)
		if err != nil {
			if errors.Is(err, storesvc.ErrNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create store", "detail": err.Error()})
			return
		}

		token, err := authpkg.SignStoreToken(h.jwtSecret, created.ID.String(), authpkg.DashboardTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue dashboard token", "detail": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"store": created, "dashboard_token": token})
	}
}

// ListStores returns all stores.
func (h *StoreHandler) ListStores() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		stores, err := h.service.ListStores(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stores)
	}
}

// GetStore fetches one store by id.
func (h *StoreHandler) GetStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		st, err := h.service.GetStore(ctx, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if st == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

type updateStorePayload struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Template    *string `json:"template"`
	// CustomDomain: "" unsets the domain, absent leaves it untouched.
	CustomDomain *string                `json:"custom_domain"`
	Active       *bool                  `json:"active"`
	Settings     map[string]interface{} `json:"settings"`
}

// UpdateStore applies a partial update to a store.
func (h *StoreHandler) UpdateStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
			return
		}
		var p updateStorePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		req := storepkg.UpdateStoreRequest{
			Name:         p.Name,
			Category:     p.Category,
			Description:  p.Description,
			CustomDomain: p.CustomDomain,
			Active:       p.Active,
			Settings:     datatypes.JSONMap(p.Settings),
		}
		if p.Template != nil {
			tpl := entity.StoreTemplate(*p.Template)
			req.Template = &tpl
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateStore(ctx, id, req)
		if err != nil {
			switch {
			case errors.Is(err, storepkg.ErrStoreNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
			case errors.Is(err, storesvc.ErrNameRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update store", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
