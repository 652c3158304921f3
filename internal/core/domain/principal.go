package domain

import "errors"

var ErrMissingCredential = errors.New("access token required")
var ErrInvalidCredential = errors.New("invalid token")
var ErrInsufficientPermissions = errors.New("insufficient permissions")
var ErrRestaurantAccessRequired = errors.New("restaurant access required")
var ErrResolution = errors.New("failed to resolve user")

// ClaimsSource identifies which verifier produced a set of claims.
type ClaimsSource string

const (
	SourceProvider ClaimsSource = "provider"
	SourceLegacy   ClaimsSource = "legacy"
)

// Claims is the normalized payload of a verified bearer credential. Provider
// tokens identify the user by email; legacy tokens carry the user id directly.
type Claims struct {
	Source ClaimsSource
	UserID string
	Email  string
	Role   Role
}

// Principal is the authenticated identity attached to a request. It lives for
// the duration of the request and is never persisted.
type Principal struct {
	UserID           string       `json:"userId"`
	Email            string       `json:"email"`
	Role             Role         `json:"role"`
	RestaurantID     string       `json:"restaurantId,omitempty"`
	Restaurant       *Restaurant  `json:"restaurant,omitempty"`
	OwnedRestaurants []Restaurant `json:"ownedRestaurants,omitempty"`
}

// HasRestaurant reports whether the principal carries a restaurant affiliation.
func (p *Principal) HasRestaurant() bool {
	return p != nil && p.RestaurantID != ""
}
