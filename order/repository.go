package order

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/entity"
)

// ErrOrderNotFound is returned by updates targeting a nonexistent order.
var ErrOrderNotFound = errors.New("order not found")

// Repository defines DB operations for orders.
type Repository interface {
	CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	// GetOrderByID returns (nil, nil) when no order has the given id.
	GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// ListOrdersByStore returns the store's orders in insertion order.
	ListOrdersByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Order, error)
	// UpdateOrderStatus fails with ErrOrderNotFound if the id does not exist.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
