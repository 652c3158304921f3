package domain

import (
	"errors"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidOrderStatus = errors.New("invalid order status")
var ErrEmptyOrder = errors.New("order has no items")

// OrderItem is a single line on an order. UnitPrice and TotalPrice are taken
// from the authoritative menu price at creation time, never from the client.
type OrderItem struct {
	MenuItemID string  `json:"menuItemId" bson:"menu_item_id"`
	Name       string  `json:"name" bson:"name"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	UnitPrice  float64 `json:"unitPrice" bson:"unit_price"`
	TotalPrice float64 `json:"totalPrice" bson:"total_price"`
	Notes      string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order is the aggregate root. Line items are embedded so an order and its
// items are written in a single insert.
type Order struct {
	ID            string      `json:"id" bson:"_id,omitempty"`
	OrderNumber   string      `json:"orderNumber" bson:"order_number"`
	CustomerName  string      `json:"customerName,omitempty" bson:"customer_name,omitempty"`
	CustomerPhone string      `json:"customerPhone,omitempty" bson:"customer_phone,omitempty"`
	CustomerEmail string      `json:"customerEmail,omitempty" bson:"customer_email,omitempty"`
	Status        OrderStatus `json:"status" bson:"status"`
	Source        string      `json:"source,omitempty" bson:"source,omitempty"`
	TotalAmount   float64     `json:"totalAmount" bson:"total_amount"`
	TaxAmount     float64     `json:"taxAmount" bson:"tax_amount"`
	Notes         string      `json:"notes,omitempty" bson:"notes,omitempty"`
	Items         []OrderItem `json:"orderItems" bson:"items"`
	UserID        string      `json:"userId" bson:"user_id"`
	RestaurantID  string      `json:"restaurantId,omitempty" bson:"restaurant_id,omitempty"`
	ExternalID    string      `json:"externalId,omitempty" bson:"external_id,omitempty"`
	CreatedAt     time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" bson:"updated_at"`
}
