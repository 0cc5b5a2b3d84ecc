package services

import (
	"context"
	"fmt"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/helper"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/store"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	store store.OrderStore
	limit int64
	clock clock
}

func NewOrderService(orderStore store.OrderStore, limit int64) *OrderService {
	return &OrderService{
		store: orderStore,
		limit: normalizeLimit(limit),
		clock: defaultClock(),
	}
}

// OrderTotal sums price × quantity over the lines in decimal, so the total
// carries no binary floating point drift.
func OrderTotal(items []models.OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}

// Create prices the order from the line snapshots supplied by the caller.
// The catalog is not consulted: neither menu_item_id nor the unit price is
// checked against current menu data.
func (s *OrderService) Create(ctx context.Context, in models.OrderCreate) (*models.Order, error) {
	if err := helper.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	items := in.OrderItems()
	now := s.clock.stamp()
	order := models.Order{
		ID:            s.clock.newID(),
		CustomerName:  *in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Items:         items,
		TotalAmount:   OrderTotal(items),
		Status:        models.OrderStatusPending,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

func (s *OrderService) List(ctx context.Context) (models.Listing[models.Order], error) {
	orders, err := s.store.FindAll(ctx, s.limit+1)
	if err != nil {
		return models.Listing[models.Order]{}, fmt.Errorf("list orders: %w", err)
	}
	return capListing(orders, s.limit, "orders"), nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return order, nil
}

// UpdateStatus moves an order to any known status. No transition graph is
// enforced, terminal states included.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	next := models.OrderStatus(status)
	if !next.Valid() {
		return nil, validationError("status: %q is not a valid order status", status)
	}

	order, err := s.store.UpdateStatus(ctx, id, next, s.clock.stamp())
	if err != nil {
		return nil, fmt.Errorf("update order %s status: %w", id, err)
	}
	return order, nil
}
