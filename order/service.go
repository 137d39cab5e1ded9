package order

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/entity"
)

var (
	// ErrStoreNotFound rejects orders referencing a nonexistent store.
	ErrStoreNotFound = errors.New("store not found")
	// ErrNoItems rejects orders with an empty line-item list.
	ErrNoItems = errors.New("order must contain at least one item")
	// ErrInvalidItem rejects line items with non-positive quantity or
	// negative unit price.
	ErrInvalidItem = errors.New("invalid line item")
	// ErrInvalidTransition rejects non-monotonic status changes.
	ErrInvalidTransition = errors.New("invalid status transition")
)

type CreateOrderRequest struct {
	StoreID       uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []entity.OrderItem
}

type Service interface {
	// CreateOrder persists an order with status pending. The total is
	// always recomputed from the line items; any client-supplied total
	// is ignored.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, storeID uuid.UUID) ([]entity.Order, error)
	// UpdateStatus enforces the monotonic transition table. A same-status
	// update succeeds without touching the record.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, newStatus entity.OrderStatus) (*entity.Order, error)
}
