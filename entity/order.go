package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus enumerates the lifecycle of a customer order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"   // created, awaiting store confirmation
	OrderConfirmed OrderStatus = "confirmed" // store confirmed, preparing shipment
	OrderShipped   OrderStatus = "shipped"   // handed to carrier
	OrderDelivered OrderStatus = "delivered" // delivered to customer
	OrderCancelled OrderStatus = "cancelled" // cancelled before shipment
)

// OrderItem is one line of an order. Product references are a snapshot,
// not a foreign key: the product may be deactivated later without
// invalidating past orders.
type OrderItem struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name,omitempty"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

// OrderItems is stored as a single jsonb column, preserving line order.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	case nil:
		*items = nil
		return nil
	default:
		return fmt.Errorf("order items: cannot scan %T", src)
	}
}

// TotalCents sums unit price times quantity across all lines.
func (items OrderItems) TotalCents() int64 {
	var total int64
	for _, it := range items {
		total += it.UnitPriceCents * int64(it.Quantity)
	}
	return total
}

// Order captures a customer's purchase against one store.
type Order struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	StoreID       uuid.UUID `json:"store_id" gorm:"type:uuid;index;not null"`
	CustomerName  string    `json:"customer_name" gorm:"type:text;not null"`
	CustomerEmail string    `json:"customer_email" gorm:"type:text;not null"`
	CustomerPhone string    `json:"customer_phone,omitempty" gorm:"type:text"`
	// TotalCents is recomputed server-side from Items at creation time;
	// client-supplied totals are never trusted.
	TotalCents int64          `json:"total_cents" gorm:"type:bigint;not null;default:0"`
	Status     OrderStatus    `json:"status" gorm:"type:text;index;not null;default:'pending'"`
	Items      OrderItems     `json:"items" gorm:"type:jsonb;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// statusRank orders the forward lifecycle. Cancelled is handled separately
// since it is terminal but only reachable before shipment.
var statusRank = map[OrderStatus]int{
	OrderPending:   0,
	OrderConfirmed: 1,
	OrderShipped:   2,
	OrderDelivered: 3,
}

// ValidOrderStatus reports whether s is a known status value.
func ValidOrderStatus(s OrderStatus) bool {
	if s == OrderCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether an order may move from one status to
// another. Transitions are monotonic: forward only, no reverse edges.
// A same-status transition is allowed (treated as a no-op by callers).
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	if from == OrderCancelled {
		return false
	}
	if to == OrderCancelled {
		return from == OrderPending || from == OrderConfirmed
	}
	fr, ok := statusRank[from]
	if !ok {
		return false
	}
	tr, ok := statusRank[to]
	if !ok {
		return false
	}
	return tr > fr
}
