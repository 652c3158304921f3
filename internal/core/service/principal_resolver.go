package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// PrincipalResolver enriches verified claims with the local user record and
// its restaurant context. A user that authenticated with the provider but has
// no local record yet (mid-onboarding) resolves to a minimal principal rather
// than an error.
type PrincipalResolver struct {
	users       ports.UserRepository
	restaurants ports.RestaurantRepository
	log         zerolog.Logger
}

func NewPrincipalResolver(users ports.UserRepository, restaurants ports.RestaurantRepository, log zerolog.Logger) *PrincipalResolver {
	return &PrincipalResolver{users: users, restaurants: restaurants, log: log}
}

func (r *PrincipalResolver) Resolve(ctx context.Context, claims *domain.Claims) (*domain.Principal, error) {
	user, err := r.lookup(ctx, claims)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return &domain.Principal{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   domain.NormalizeRole(claims.Role),
			}, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrResolution, err)
	}

	principal := &domain.Principal{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         domain.NormalizeRole(user.Role),
		RestaurantID: user.RestaurantID,
	}

	if user.RestaurantID != "" {
		restaurant, err := r.restaurants.FindByID(ctx, user.RestaurantID)
		if err != nil && !errors.Is(err, domain.ErrRestaurantNotFound) {
			return nil, fmt.Errorf("%w: %v", domain.ErrResolution, err)
		}
		principal.Restaurant = restaurant
	}

	owned, err := r.restaurants.FindByOwner(ctx, user.ID)
	if err != nil {
		// Ownership is advisory context; resolution proceeds without it.
		r.log.Warn().Err(err).Str("user_id", user.ID).Msg("owned restaurants lookup failed")
	} else {
		principal.OwnedRestaurants = owned
	}

	return principal, nil
}

// lookup selects the identifying attribute per claims source: provider tokens
// carry the email, legacy tokens the user id.
func (r *PrincipalResolver) lookup(ctx context.Context, claims *domain.Claims) (*domain.User, error) {
	if claims.Source == domain.SourceLegacy && claims.UserID != "" {
		return r.users.FindByID(ctx, claims.UserID)
	}
	return r.users.FindByEmail(ctx, claims.Email)
}
