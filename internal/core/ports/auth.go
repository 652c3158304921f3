package ports

import (
	"context"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// TokenVerifier is one strategy for turning a bearer credential into claims.
// Verifiers are tried in a fixed order; the first success wins.
type TokenVerifier interface {
	// Name identifies the verifier in logs and metrics ("provider", "legacy").
	Name() string
	Verify(ctx context.Context, token string) (*domain.Claims, error)
}

// PrincipalResolver maps verified claims onto a request principal, enriching
// it with the user's restaurant affiliation and ownership.
type PrincipalResolver interface {
	Resolve(ctx context.Context, claims *domain.Claims) (*domain.Principal, error)
}

// UserRepository defines persistence operations for staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByRestaurant lists all users affiliated with a restaurant,
	// oldest first.
	FindByRestaurant(ctx context.Context, restaurantID string) ([]*domain.User, error)
	// Upsert creates the user keyed by email, or applies the given fields to
	// the existing record.
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateRole changes a user's role iff the user belongs to restaurantID.
	UpdateRole(ctx context.Context, id, restaurantID string, role domain.Role) (*domain.User, error)
	// Delete removes a user iff the user belongs to restaurantID.
	Delete(ctx context.Context, id, restaurantID string) error
}

// AuthService implements the legacy register/login flow.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// RegisterInput carries the fields accepted by POST /auth/register.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
}
