package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

type stubIdentityProvider struct {
	created     []*domain.Invitation
	invitations map[string]*domain.Invitation
	err         error
}

func newStubIdentityProvider() *stubIdentityProvider {
	return &stubIdentityProvider{invitations: make(map[string]*domain.Invitation)}
}

func (p *stubIdentityProvider) CreateInvitation(_ context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	if p.err != nil {
		return nil, p.err
	}
	clone := *inv
	clone.ID = "inv-1"
	p.created = append(p.created, &clone)
	p.invitations[clone.ID] = &clone
	return &clone, nil
}

func (p *stubIdentityProvider) GetInvitation(_ context.Context, id string) (*domain.Invitation, error) {
	if inv, ok := p.invitations[id]; ok {
		return inv, nil
	}
	return nil, domain.ErrInvitationNotFound
}

func managerPrincipal() *domain.Principal {
	return &domain.Principal{
		UserID:       "manager-1",
		Email:        "boss@example.com",
		Role:         domain.RoleManager,
		RestaurantID: "rest-1",
	}
}

func TestTeamService_Invite(t *testing.T) {
	users := newStubUserRepo()
	identity := newStubIdentityProvider()
	svc := NewTeamService(users, identity, zerolog.Nop())

	result, err := svc.Invite(context.Background(), managerPrincipal(), "new@example.com", domain.RoleServer)
	if err != nil {
		t.Fatalf("Invite returned error: %v", err)
	}
	if result.InvitationID != "inv-1" {
		t.Fatalf("unexpected invitation id: %s", result.InvitationID)
	}
	if len(identity.created) != 1 {
		t.Fatalf("expected one provider invitation, got %d", len(identity.created))
	}
	if identity.created[0].RestaurantID != "rest-1" || identity.created[0].Role != domain.RoleServer {
		t.Fatalf("invitation metadata wrong: %+v", identity.created[0])
	}

	placeholder, err := users.FindByEmail(context.Background(), "new@example.com")
	if err != nil {
		t.Fatalf("placeholder user missing: %v", err)
	}
	if placeholder.IsActive {
		t.Fatalf("placeholder should be inactive until acceptance")
	}
	if placeholder.RestaurantID != "rest-1" {
		t.Fatalf("placeholder not scoped to restaurant: %+v", placeholder)
	}
}

func TestTeamService_Invite_AlreadyMember(t *testing.T) {
	users := newStubUserRepo()
	_, _ = users.Create(context.Background(), &domain.User{
		Email:        "taken@example.com",
		RestaurantID: "rest-1",
		Role:         domain.RoleServer,
	})
	svc := NewTeamService(users, newStubIdentityProvider(), zerolog.Nop())

	_, err := svc.Invite(context.Background(), managerPrincipal(), "taken@example.com", domain.RoleHost)
	if !errors.Is(err, domain.ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}
}

func TestTeamService_Invite_MemberOfOtherRestaurant(t *testing.T) {
	users := newStubUserRepo()
	_, _ = users.Create(context.Background(), &domain.User{
		Email:        "elsewhere@example.com",
		RestaurantID: "rest-other",
		Role:         domain.RoleServer,
	})
	svc := NewTeamService(users, newStubIdentityProvider(), zerolog.Nop())

	if _, err := svc.Invite(context.Background(), managerPrincipal(), "elsewhere@example.com", domain.RoleHost); err != nil {
		t.Fatalf("cross-restaurant invite should succeed, got %v", err)
	}
}

func TestTeamService_Remove_Self(t *testing.T) {
	svc := NewTeamService(newStubUserRepo(), newStubIdentityProvider(), zerolog.Nop())

	err := svc.Remove(context.Background(), managerPrincipal(), "manager-1")
	if !errors.Is(err, domain.ErrRemoveSelf) {
		t.Fatalf("expected ErrRemoveSelf, got %v", err)
	}
}

func TestTeamService_Remove_Member(t *testing.T) {
	users := newStubUserRepo()
	member, _ := users.Create(context.Background(), &domain.User{
		Email:        "member@example.com",
		RestaurantID: "rest-1",
	})
	svc := NewTeamService(users, newStubIdentityProvider(), zerolog.Nop())

	if err := svc.Remove(context.Background(), managerPrincipal(), member.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := users.FindByID(context.Background(), member.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("member still present after removal")
	}
}

func TestTeamService_Remove_OutsideRestaurant(t *testing.T) {
	users := newStubUserRepo()
	outsider, _ := users.Create(context.Background(), &domain.User{
		Email:        "outsider@example.com",
		RestaurantID: "rest-other",
	})
	svc := NewTeamService(users, newStubIdentityProvider(), zerolog.Nop())

	if err := svc.Remove(context.Background(), managerPrincipal(), outsider.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for cross-restaurant removal, got %v", err)
	}
}

func TestTeamService_List(t *testing.T) {
	users := newStubUserRepo()
	now := time.Now().UTC()
	_, _ = users.Create(context.Background(), &domain.User{
		Email:        "a@example.com",
		FirstName:    "Ana",
		RestaurantID: "rest-1",
		Role:         domain.RoleServer,
		IsActive:     true,
		CreatedAt:    now,
	})
	_, _ = users.Create(context.Background(), &domain.User{
		Email:        "b@example.com",
		RestaurantID: "rest-other",
	})
	svc := NewTeamService(users, newStubIdentityProvider(), zerolog.Nop())

	members, err := svc.List(context.Background(), "rest-1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	if members[0].Email != "a@example.com" || members[0].FirstName != "Ana" {
		t.Fatalf("unexpected member: %+v", members[0])
	}
}
