package domain

import "errors"

var ErrInvitationNotFound = errors.New("invitation not found")

// Invitation mirrors the identity provider's invitation object. Role and
// RestaurantID travel in the provider's public metadata and are applied to the
// local user record on acceptance.
type Invitation struct {
	ID           string `json:"id"`
	EmailAddress string `json:"emailAddress"`
	Role         Role   `json:"role"`
	RestaurantID string `json:"restaurantId"`
	InvitedBy    string `json:"invitedBy,omitempty"`
}
