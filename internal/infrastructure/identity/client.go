// Package identity integrates with the external identity provider: session
// token verification over JWKS and the invitation REST API. It also hosts the
// legacy HS256 verifier so the whole credential surface lives in one place.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// Client calls the identity provider's backend REST API using the secret key.
type Client struct {
	baseURL     string
	secretKey   string
	frontendURL string
	http        *http.Client
}

// NewClient builds a provider API client. frontendURL is used to construct the
// sign-up redirect embedded in invitations.
func NewClient(baseURL, secretKey, frontendURL string) *Client {
	return &Client{
		baseURL:     trimSlash(baseURL),
		secretKey:   secretKey,
		frontendURL: trimSlash(frontendURL),
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

type invitationMetadata struct {
	Role         string `json:"role"`
	RestaurantID string `json:"restaurantId"`
	InvitedBy    string `json:"invitedBy,omitempty"`
}

type invitationPayload struct {
	ID             string             `json:"id"`
	EmailAddress   string             `json:"email_address"`
	PublicMetadata invitationMetadata `json:"public_metadata"`
	RedirectURL    string             `json:"redirect_url,omitempty"`
}

func (c *Client) CreateInvitation(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	payload := invitationPayload{
		EmailAddress: inv.EmailAddress,
		PublicMetadata: invitationMetadata{
			Role:         string(inv.Role),
			RestaurantID: inv.RestaurantID,
			InvitedBy:    inv.InvitedBy,
		},
		RedirectURL: fmt.Sprintf("%s/sign-up?invitation=%s", c.frontendURL, url.QueryEscape(inv.EmailAddress)),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/invitations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: create invitation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("identity: create invitation: unexpected status %d", resp.StatusCode)
	}

	var created invitationPayload
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("identity: decode invitation: %w", err)
	}
	return fromPayload(created), nil
}

func (c *Client) GetInvitation(ctx context.Context, id string) (*domain.Invitation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/invitations/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: get invitation: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrInvitationNotFound
	default:
		return nil, fmt.Errorf("identity: get invitation: unexpected status %d", resp.StatusCode)
	}

	var payload invitationPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("identity: decode invitation: %w", err)
	}
	return fromPayload(payload), nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
}

func fromPayload(p invitationPayload) *domain.Invitation {
	return &domain.Invitation{
		ID:           p.ID,
		EmailAddress: p.EmailAddress,
		Role:         domain.Role(p.PublicMetadata.Role),
		RestaurantID: p.PublicMetadata.RestaurantID,
		InvitedBy:    p.PublicMetadata.InvitedBy,
	}
}
