package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

var ErrMissingOnboardingFields = errors.New("missing required fields")

// OnboardingService covers first-run restaurant creation and invitation
// acceptance. Both run before the caller has a usable principal, which is why
// the routes are unprotected.
type OnboardingService struct {
	restaurants ports.RestaurantRepository
	users       ports.UserRepository
	identity    ports.IdentityProvider
	log         zerolog.Logger
}

func NewOnboardingService(restaurants ports.RestaurantRepository, users ports.UserRepository, identity ports.IdentityProvider, log zerolog.Logger) *OnboardingService {
	return &OnboardingService{restaurants: restaurants, users: users, identity: identity, log: log}
}

func (s *OnboardingService) Onboard(ctx context.Context, in ports.OnboardInput) (*ports.OnboardResult, error) {
	if in.RestaurantName == "" || in.UserID == "" || in.Email == "" {
		return nil, ErrMissingOnboardingFields
	}

	now := time.Now().UTC()
	restaurant, err := s.restaurants.Create(ctx, &domain.Restaurant{
		Name:      in.RestaurantName,
		Address:   in.RestaurantAddress,
		Phone:     in.RestaurantPhone,
		OwnerID:   in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	role := in.Role
	if !role.Valid() {
		role = domain.RoleManager
	}

	// Keyed by email: a provider-authenticated user may already have a record
	// from an earlier registration.
	user, err := s.users.Upsert(ctx, &domain.User{
		Email:        in.Email,
		PasswordHash: "temp-password",
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		RestaurantID: restaurant.ID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("restaurant_id", restaurant.ID).
		Str("owner_id", in.UserID).
		Msg("restaurant onboarded")

	return &ports.OnboardResult{Restaurant: restaurant, User: user}, nil
}

func (s *OnboardingService) AcceptInvitation(ctx context.Context, in ports.AcceptInvitationInput) (*domain.User, error) {
	if in.InvitationID == "" || in.UserID == "" || in.Email == "" {
		return nil, ErrMissingOnboardingFields
	}

	invitation, err := s.identity.GetInvitation(ctx, in.InvitationID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Role = domain.NormalizeRole(invitation.Role)
	user.RestaurantID = invitation.RestaurantID
	user.IsActive = true
	user.PasswordHash = "provider-authenticated"
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("invitation_id", in.InvitationID).
		Str("user_id", updated.ID).
		Msg("invitation accepted")

	return updated, nil
}
