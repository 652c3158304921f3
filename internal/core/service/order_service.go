package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tablemesa/restaurant-api/internal/api/metrics"
	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// OrderService creates and lists orders. Line totals are recomputed from the
// authoritative menu prices with decimal arithmetic; client-submitted amounts
// are ignored. Items are embedded in the order document, so the whole order is
// persisted in one write.
type OrderService struct {
	orders  ports.OrderRepository
	menu    ports.MenuRepository
	taxRate decimal.Decimal
	log     zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, menu ports.MenuRepository, taxRate float64, log zerolog.Logger) *OrderService {
	if taxRate <= 0 {
		taxRate = 0.085
	}
	return &OrderService{
		orders:  orders,
		menu:    menu,
		taxRate: decimal.NewFromFloat(taxRate),
		log:     log,
	}
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	subtotal := decimal.Zero
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		menuItem, err := s.menu.FindByID(ctx, line.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrMenuItemNotFound, line.MenuItemID)
		}

		unitPrice := decimal.NewFromFloat(menuItem.Price)
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)

		items = append(items, domain.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   line.Quantity,
			UnitPrice:  menuItem.Price,
			TotalPrice: lineTotal.InexactFloat64(),
			Notes:      line.Notes,
		})
	}

	tax := subtotal.Mul(s.taxRate)

	now := time.Now().UTC()
	order := &domain.Order{
		OrderNumber:   generateOrderNumber(now),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Status:        domain.OrderPending,
		Source:        in.Source,
		TotalAmount:   subtotal.InexactFloat64(),
		TaxAmount:     tax.InexactFloat64(),
		Notes:         in.Notes,
		Items:         items,
		UserID:        in.UserID,
		RestaurantID:  in.RestaurantID,
		ExternalID:    in.ExternalID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	source := in.Source
	if source == "" {
		source = "POS"
	}
	metrics.OrdersCreatedTotal.WithLabelValues(source).Inc()

	s.log.Info().
		Str("order_number", created.OrderNumber).
		Str("user_id", in.UserID).
		Float64("total", created.TotalAmount).
		Msg("order created")

	return created, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidOrderStatus
	}
	return s.orders.UpdateStatus(ctx, id, status)
}

// generateOrderNumber returns an order number in the format
// ORD-<unix-ms>-<8 hex chars>.
func generateOrderNumber(now time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}
