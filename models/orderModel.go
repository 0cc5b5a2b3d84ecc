package models

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	ID            string      `json:"id" bson:"id" validate:"required"`
	CustomerName  string      `json:"customer_name" bson:"customer_name"`
	CustomerPhone *string     `json:"customer_phone" bson:"customer_phone"`
	Items         []OrderItem `json:"items" bson:"items"`
	TotalAmount   float64     `json:"total_amount" bson:"total_amount"`
	Status        OrderStatus `json:"status" bson:"status" validate:"order_status"`
	Notes         *string     `json:"notes" bson:"notes"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" bson:"updated_at"`
}

// OrderCreate is the request body for placing an order. CustomerName must be
// present but may be empty.
type OrderCreate struct {
	CustomerName  *string           `json:"customer_name" validate:"required"`
	CustomerPhone *string           `json:"customer_phone"`
	Items         []OrderItemCreate `json:"items" validate:"required,min=1,dive"`
	Notes         *string           `json:"notes"`
}

func (in OrderCreate) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		items = append(items, line.OrderItem())
	}
	return items
}
