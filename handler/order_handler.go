package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/entity"
	orderpkg "github.com/Fatimadayan/Sooqbot/order"
	"github.com/Fatimadayan/Sooqbot/realtime"
)

// OrderHandler bundles dependencies for order-related HTTP handlers.
type OrderHandler struct {
	service orderpkg.Service
	hub     *realtime.Hub
}

func NewOrderHandler(svc orderpkg.Service, hub *realtime.Hub) *OrderHandler {
	return &OrderHandler{service: svc, hub: hub}
}

type orderItemPayload struct {
	ProductID      string `json:"product_id" binding:"required"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"min=0"`
}

type createOrderPayload struct {
	StoreID       string             `json:"store_id" binding:"required"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerEmail string             `json:"customer_email" binding:"required,email"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []orderItemPayload `json:"items" binding:"required,min=1,dive"`
	// TotalCents is accepted for API symmetry but never trusted; the
	// server recomputes the total from the line items.
	TotalCents int64 `json:"total_cents"`
}

// CreateOrder submits a customer order against a store.
func (h *OrderHandler) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createOrderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		sid, err := uuid.Parse(p.StoreID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store_id"})
			return
		}

		items := make([]entity.OrderItem, 0, len(p.Items))
		for _, it := range p.Items {
			pid, err := uuid.Parse(it.ProductID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id in items"})
				return
			}
			items = append(items, entity.OrderItem{
				ProductID:      pid,
				Name:           it.Name,
				Quantity:       it.Quantity,
				UnitPriceCents: it.UnitPriceCents,
			})
		}

		req := orderpkg.CreateOrderRequest{
			StoreID:       sid,
			CustomerName:  p.CustomerName,
			CustomerEmail: p.CustomerEmail,
			CustomerPhone: p.CustomerPhone,
			Items:         items,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateOrder(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, orderpkg.ErrStoreNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
			case errors.Is(err, orderpkg.ErrNoItems), errors.Is(err, orderpkg.ErrInvalidItem):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order", "detail": err.Error()})
			}
			return
		}

		if h.hub != nil {
			h.hub.NotifyStore(created.StoreID.String(), "order.created", created)
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListOrders returns a store's orders: GET /api/v1/orders?store_id=
func (h *OrderHandler) ListOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := uuid.Parse(c.Query("store_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing store_id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		orders, err := h.service.ListOrders(ctx, sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrder fetches one order by id.
func (h *OrderHandler) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		o, err := h.service.GetOrder(ctx, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if o == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an order through its lifecycle. Requires a dashboard
// token for the order's store (RequireStoreToken middleware runs first).
func (h *OrderHandler) UpdateStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var p updateStatusPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		newStatus := entity.OrderStatus(p.Status)
		if !entity.ValidOrderStatus(newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		// Token must belong to the order's store.
		current, err := h.service.GetOrder(ctx, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if current == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if tokenStore := c.GetString("store_id"); tokenStore != current.StoreID.String() {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: token is for a different store"})
			return
		}

		updated, err := h.service.UpdateStatus(ctx, id, newStatus)
		if err != nil {
			switch {
			case errors.Is(err, orderpkg.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.Is(err, orderpkg.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status", "detail": err.Error()})
			}
			return
		}

		if h.hub != nil {
			h.hub.NotifyStore(updated.StoreID.String(), "order.status_changed", updated)
		}
		c.JSON(http.StatusOK, updated)
	}
}
