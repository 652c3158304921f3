package ports

import (
	"context"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// IdentityProvider is the external identity service. Token verification is
// covered separately by TokenVerifier; this interface carries the invitation
// API used by team management.
type IdentityProvider interface {
	// CreateInvitation asks the provider to email an invitation. The role and
	// restaurant id are attached as public metadata and the redirect points at
	// the frontend sign-up page.
	CreateInvitation(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error)
	// GetInvitation fetches a previously created invitation by id. Returns
	// domain.ErrInvitationNotFound when the provider does not know it.
	GetInvitation(ctx context.Context, id string) (*domain.Invitation, error)
}
