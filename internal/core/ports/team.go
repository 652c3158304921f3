package ports

import (
	"context"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// InviteResult reports a successful team invitation.
type InviteResult struct {
	InvitationID string
	UserID       string
}

// TeamService manages the staff roster of a restaurant.
type TeamService interface {
	// List returns the members of the principal's restaurant, oldest first.
	List(ctx context.Context, restaurantID string) ([]*domain.TeamMember, error)
	// Invite creates a provider invitation and an inactive placeholder user.
	// Fails with domain.ErrAlreadyMember when the email already belongs to the
	// restaurant.
	Invite(ctx context.Context, principal *domain.Principal, email string, role domain.Role) (*InviteResult, error)
	// UpdateRole changes a member's role within the principal's restaurant.
	UpdateRole(ctx context.Context, restaurantID, userID string, role domain.Role) (*domain.User, error)
	// Remove deletes a member. Fails with domain.ErrRemoveSelf when the caller
	// targets their own account.
	Remove(ctx context.Context, principal *domain.Principal, userID string) error
}
