package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// TeamService manages a restaurant's staff roster. Invitations go through the
// external identity provider; a placeholder user is created locally so the
// roster shows pending members.
type TeamService struct {
	users    ports.UserRepository
	identity ports.IdentityProvider
	log      zerolog.Logger
}

func NewTeamService(users ports.UserRepository, identity ports.IdentityProvider, log zerolog.Logger) *TeamService {
	return &TeamService{users: users, identity: identity, log: log}
}

func (s *TeamService) List(ctx context.Context, restaurantID string) ([]*domain.TeamMember, error) {
	users, err := s.users.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	members := make([]*domain.TeamMember, 0, len(users))
	for _, u := range users {
		members = append(members, &domain.TeamMember{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
		})
	}
	return members, nil
}

func (s *TeamService) Invite(ctx context.Context, principal *domain.Principal, email string, role domain.Role) (*ports.InviteResult, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil && existing.RestaurantID == principal.RestaurantID {
		return nil, domain.ErrAlreadyMember
	}

	invitation, err := s.identity.CreateInvitation(ctx, &domain.Invitation{
		EmailAddress: email,
		Role:         role,
		RestaurantID: principal.RestaurantID,
		InvitedBy:    principal.UserID,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	placeholder := &domain.User{
		Email:        email,
		PasswordHash: "invitation-pending",
		Role:         role,
		RestaurantID: principal.RestaurantID,
		IsActive:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	invited, err := s.users.Create(ctx, placeholder)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("email", email).
		Str("role", string(role)).
		Str("restaurant_id", principal.RestaurantID).
		Msg("team invitation sent")

	return &ports.InviteResult{InvitationID: invitation.ID, UserID: invited.ID}, nil
}

func (s *TeamService) UpdateRole(ctx context.Context, restaurantID, userID string, role domain.Role) (*domain.User, error) {
	return s.users.UpdateRole(ctx, userID, restaurantID, role)
}

func (s *TeamService) Remove(ctx context.Context, principal *domain.Principal, userID string) error {
	if userID == principal.UserID {
		return domain.ErrRemoveSelf
	}
	return s.users.Delete(ctx, userID, principal.RestaurantID)
}
