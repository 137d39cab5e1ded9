package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Fatimadayan/Sooqbot/entity"
	orderpkg "github.com/Fatimadayan/Sooqbot/order"
	storepkg "github.com/Fatimadayan/Sooqbot/store"
)

type orderService struct {
	repo      orderpkg.Repository
	storeRepo storepkg.Repository
}

func NewOrderService(repo orderpkg.Repository, storeRepo storepkg.Repository) orderpkg.Service {
	return &orderService{repo: repo, storeRepo: storeRepo}
}

func (s *orderService) CreateOrder(ctx context.Context, req orderpkg.CreateOrderRequest) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, orderpkg.ErrNoItems
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 || it.UnitPriceCents < 0 {
			return nil, orderpkg.ErrInvalidItem
		}
	}
	st, err := s.storeRepo.GetStoreByID(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, orderpkg.ErrStoreNotFound
	}

	items := entity.OrderItems(req.Items)
	o := &entity.Order{
		StoreID:       req.StoreID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		TotalCents:    items.TotalCents(),
		Status:        entity.OrderPending,
		Items:         items,
	}
	return s.repo.CreateOrder(ctx, o)
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context, storeID uuid.UUID) ([]entity.Order, error) {
	return s.repo.ListOrdersByStore(ctx, storeID)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, newStatus entity.OrderStatus) (*entity.Order, error) {
	ord, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, orderpkg.ErrOrderNotFound
	}
	if ord.Status == newStatus {
		return ord, nil
	}
	if !entity.CanTransition(ord.Status, newStatus) {
		return nil, orderpkg.ErrInvalidTransition
	}
	if err := s.repo.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}
	return s.repo.GetOrderByID(ctx, orderID)
}
