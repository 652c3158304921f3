package ports

import (
	"context"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// MenuRepository defines persistence operations for menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	// List returns all menu items ordered by category.
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// MenuItemInput carries the writable fields of a menu item. Price arrives as a
// string because clients submit it both as a JSON number and as text; the
// service parses it to a float.
type MenuItemInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	IsAvailable *bool
	ImageURL    string
	Allergens   []string
	Nutrition   *domain.Nutrition
}

// MenuService implements menu CRUD with a read cache in front of the
// repository.
type MenuService interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Create(ctx context.Context, in MenuItemInput) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, in MenuItemInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}
