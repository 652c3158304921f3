package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

type stubMenuRepo struct {
	items map[string]*domain.MenuItem
}

func newStubMenuRepo(items ...*domain.MenuItem) *stubMenuRepo {
	r := &stubMenuRepo{items: make(map[string]*domain.MenuItem)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *stubMenuRepo) Create(_ context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	r.items[item.ID] = item
	return item, nil
}

func (r *stubMenuRepo) FindByID(_ context.Context, id string) (*domain.MenuItem, error) {
	if it, ok := r.items[id]; ok {
		return it, nil
	}
	return nil, domain.ErrMenuItemNotFound
}

func (r *stubMenuRepo) List(_ context.Context) ([]*domain.MenuItem, error) {
	out := make([]*domain.MenuItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *stubMenuRepo) Update(_ context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if _, ok := r.items[item.ID]; !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	r.items[item.ID] = item
	return item, nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(r.items, id)
	return nil
}

type stubOrderRepo struct {
	created []*domain.Order
	status  map[string]domain.OrderStatus
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{status: make(map[string]domain.OrderStatus)}
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order.ID == "" {
		order.ID = "order-1"
	}
	r.created = append(r.created, order)
	return order, nil
}

func (r *stubOrderRepo) FindByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0)
	for _, o := range r.created {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) FindByExternalID(_ context.Context, externalID string) (*domain.Order, error) {
	for _, o := range r.created {
		if o.ExternalID == externalID {
			return o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	for _, o := range r.created {
		if o.ID == id {
			o.Status = status
			return o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func TestOrderService_Create_Totals(t *testing.T) {
	menu := newStubMenuRepo(
		&domain.MenuItem{ID: "burger", Name: "Burger", Price: 10.00},
		&domain.MenuItem{ID: "fries", Name: "Fries", Price: 5.00},
	)
	orders := newStubOrderRepo()
	svc := NewOrderService(orders, menu, 0.085, zerolog.Nop())

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:       "u1",
		RestaurantID: "r1",
		Items: []ports.OrderItemInput{
			{MenuItemID: "burger", Quantity: 2},
			{MenuItemID: "fries", Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if order.TotalAmount != 35.00 {
		t.Fatalf("expected total 35.00, got %v", order.TotalAmount)
	}
	if order.TaxAmount != 2.975 {
		t.Fatalf("expected tax 2.975, got %v", order.TaxAmount)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("expected status PENDING, got %s", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].UnitPrice != 10.00 || order.Items[0].TotalPrice != 20.00 {
		t.Fatalf("unexpected first line: %+v", order.Items[0])
	}
	if order.Items[1].Name != "Fries" {
		t.Fatalf("expected item name from menu, got %q", order.Items[1].Name)
	}
	if !strings.HasPrefix(order.OrderNumber, "ORD-") {
		t.Fatalf("unexpected order number: %s", order.OrderNumber)
	}
}

func TestOrderService_Create_MenuItemMissing(t *testing.T) {
	menu := newStubMenuRepo(&domain.MenuItem{ID: "burger", Name: "Burger", Price: 10.00})
	svc := NewOrderService(newStubOrderRepo(), menu, 0.085, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "u1",
		Items: []ports.OrderItemInput{
			{MenuItemID: "burger", Quantity: 1},
			{MenuItemID: "ghost", Quantity: 1},
		},
	})
	if !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestOrderService_Create_NoItems(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubMenuRepo(), 0.085, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateOrderInput{UserID: "u1"}); !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderService_Create_IgnoresClientAmounts(t *testing.T) {
	// The repository receives the price the menu dictates, regardless of what
	// the request carried.
	menu := newStubMenuRepo(&domain.MenuItem{ID: "soup", Name: "Soup", Price: 7.50})
	orders := newStubOrderRepo()
	svc := NewOrderService(orders, menu, 0.085, zerolog.Nop())

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "u1",
		Items:  []ports.OrderItemInput{{MenuItemID: "soup", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.TotalAmount != 15.00 {
		t.Fatalf("expected total 15.00, got %v", order.TotalAmount)
	}
	if len(orders.created) != 1 || orders.created[0].Items[0].UnitPrice != 7.50 {
		t.Fatalf("persisted order does not use menu price: %+v", orders.created)
	}
}

func TestOrderService_UpdateStatus_Invalid(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubMenuRepo(), 0.085, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "order-1", "SHOUTING"); !errors.Is(err, domain.ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}

func TestOrderService_UpdateStatus_Valid(t *testing.T) {
	menu := newStubMenuRepo(&domain.MenuItem{ID: "soup", Name: "Soup", Price: 7.50})
	orders := newStubOrderRepo()
	svc := NewOrderService(orders, menu, 0.085, zerolog.Nop())

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "u1",
		Items:  []ports.OrderItemInput{{MenuItemID: "soup", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), order.ID, domain.OrderReady)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != domain.OrderReady {
		t.Fatalf("expected READY, got %s", updated.Status)
	}
}
