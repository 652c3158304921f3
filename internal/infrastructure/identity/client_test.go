package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

func TestClient_CreateInvitation(t *testing.T) {
	var gotAuth string
	var gotPayload invitationPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/invitations" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		gotPayload.ID = "inv-42"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(gotPayload)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_123", "https://app.example.com")
	created, err := c.CreateInvitation(context.Background(), &domain.Invitation{
		EmailAddress: "new@example.com",
		Role:         domain.RoleServer,
		RestaurantID: "rest-1",
		InvitedBy:    "manager-1",
	})
	if err != nil {
		t.Fatalf("CreateInvitation returned error: %v", err)
	}

	if gotAuth != "Bearer sk_test_123" {
		t.Fatalf("unexpected authorization header: %q", gotAuth)
	}
	if gotPayload.PublicMetadata.Role != "SERVER" || gotPayload.PublicMetadata.RestaurantID != "rest-1" {
		t.Fatalf("metadata not sent: %+v", gotPayload.PublicMetadata)
	}
	if !strings.HasPrefix(gotPayload.RedirectURL, "https://app.example.com/sign-up?invitation=") {
		t.Fatalf("unexpected redirect url: %q", gotPayload.RedirectURL)
	}
	if created.ID != "inv-42" {
		t.Fatalf("unexpected invitation id: %q", created.ID)
	}
}

func TestClient_GetInvitation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/invitations/inv-42" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(invitationPayload{
			ID:           "inv-42",
			EmailAddress: "new@example.com",
			PublicMetadata: invitationMetadata{
				Role:         "HOST",
				RestaurantID: "rest-1",
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_123", "https://app.example.com")

	inv, err := c.GetInvitation(context.Background(), "inv-42")
	if err != nil {
		t.Fatalf("GetInvitation returned error: %v", err)
	}
	if inv.Role != domain.RoleHost || inv.RestaurantID != "rest-1" {
		t.Fatalf("unexpected invitation: %+v", inv)
	}

	if _, err := c.GetInvitation(context.Background(), "missing"); !errors.Is(err, domain.ErrInvitationNotFound) {
		t.Fatalf("expected ErrInvitationNotFound, got %v", err)
	}
}
