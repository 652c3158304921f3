package ports

import (
	"context"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Line items are
// embedded in the order document, so creation is a single atomic write.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// FindByUser lists a user's orders, newest first.
	FindByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	FindByExternalID(ctx context.Context, externalID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

// OrderItemInput is one requested line: quantity of a menu item. Prices are
// never taken from the client.
type OrderItemInput struct {
	MenuItemID string
	Quantity   int
	Notes      string
}

// CreateOrderInput carries everything needed to create an order on behalf of
// the authenticated principal.
type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         string
	Source        string
	Items         []OrderItemInput
	UserID        string
	RestaurantID  string
	// ExternalID is set for delivery-platform orders only.
	ExternalID string
}

// OrderService implements order listing, creation, and status updates.
type OrderService interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
