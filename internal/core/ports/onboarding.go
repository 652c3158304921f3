package ports

import (
	"context"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// RestaurantRepository defines persistence operations for restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error)
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	// FindByOwner returns the restaurants a user owns.
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Restaurant, error)
}

// OnboardInput carries the fields accepted by POST /onboarding.
type OnboardInput struct {
	RestaurantName    string
	RestaurantAddress string
	RestaurantPhone   string
	Role              domain.Role
	UserID            string
	Email             string
	FirstName         string
	LastName          string
}

// OnboardResult is the created restaurant plus the owning user record.
type OnboardResult struct {
	Restaurant *domain.Restaurant
	User       *domain.User
}

// AcceptInvitationInput carries the fields accepted by POST /invitation/accept.
type AcceptInvitationInput struct {
	InvitationID string
	UserID       string
	Email        string
	FirstName    string
	LastName     string
}

// OnboardingService covers first-run restaurant setup and invitation
// acceptance.
type OnboardingService interface {
	Onboard(ctx context.Context, in OnboardInput) (*OnboardResult, error)
	AcceptInvitation(ctx context.Context, in AcceptInvitationInput) (*domain.User, error)
}
