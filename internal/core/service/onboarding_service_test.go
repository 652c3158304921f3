package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

func TestOnboardingService_Onboard(t *testing.T) {
	restaurants := newStubRestaurantRepo()
	users := newStubUserRepo()
	svc := NewOnboardingService(restaurants, users, newStubIdentityProvider(), zerolog.Nop())

	result, err := svc.Onboard(context.Background(), ports.OnboardInput{
		RestaurantName: "La Mesa",
		UserID:         "provider-sub-1",
		Email:          "owner@example.com",
		FirstName:      "Olive",
	})
	if err != nil {
		t.Fatalf("Onboard returned error: %v", err)
	}
	if result.Restaurant.Name != "La Mesa" || result.Restaurant.OwnerID != "provider-sub-1" {
		t.Fatalf("unexpected restaurant: %+v", result.Restaurant)
	}
	if result.User.Role != domain.RoleManager {
		t.Fatalf("owner should default to MANAGER, got %s", result.User.Role)
	}
	if result.User.RestaurantID != result.Restaurant.ID {
		t.Fatalf("owner not affiliated with the new restaurant: %+v", result.User)
	}
}

func TestOnboardingService_Onboard_MissingFields(t *testing.T) {
	svc := NewOnboardingService(newStubRestaurantRepo(), newStubUserRepo(), newStubIdentityProvider(), zerolog.Nop())

	_, err := svc.Onboard(context.Background(), ports.OnboardInput{Email: "x@example.com"})
	if !errors.Is(err, ErrMissingOnboardingFields) {
		t.Fatalf("expected ErrMissingOnboardingFields, got %v", err)
	}
}

func TestOnboardingService_AcceptInvitation(t *testing.T) {
	users := newStubUserRepo()
	identity := newStubIdentityProvider()
	// Pending invitation plus the placeholder user the invite flow created.
	inv, _ := identity.CreateInvitation(context.Background(), &domain.Invitation{
		EmailAddress: "newbie@example.com",
		Role:         domain.RoleHost,
		RestaurantID: "rest-1",
	})
	_, _ = users.Create(context.Background(), &domain.User{
		Email:        "newbie@example.com",
		PasswordHash: "invitation-pending",
		Role:         domain.RoleHost,
		RestaurantID: "rest-1",
		IsActive:     false,
	})
	svc := NewOnboardingService(newStubRestaurantRepo(), users, identity, zerolog.Nop())

	user, err := svc.AcceptInvitation(context.Background(), ports.AcceptInvitationInput{
		InvitationID: inv.ID,
		UserID:       "provider-sub-2",
		Email:        "newbie@example.com",
		FirstName:    "Nora",
	})
	if err != nil {
		t.Fatalf("AcceptInvitation returned error: %v", err)
	}
	if !user.IsActive {
		t.Fatalf("accepted user should be active")
	}
	if user.Role != domain.RoleHost || user.RestaurantID != "rest-1" {
		t.Fatalf("invitation metadata not applied: %+v", user)
	}
	if user.FirstName != "Nora" {
		t.Fatalf("profile fields not applied: %+v", user)
	}
}

func TestOnboardingService_AcceptInvitation_Unknown(t *testing.T) {
	svc := NewOnboardingService(newStubRestaurantRepo(), newStubUserRepo(), newStubIdentityProvider(), zerolog.Nop())

	_, err := svc.AcceptInvitation(context.Background(), ports.AcceptInvitationInput{
		InvitationID: "ghost",
		UserID:       "u1",
		Email:        "x@example.com",
	})
	if !errors.Is(err, domain.ErrInvitationNotFound) {
		t.Fatalf("expected ErrInvitationNotFound, got %v", err)
	}
}
