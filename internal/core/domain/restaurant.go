package domain

import (
	"errors"
	"time"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// Restaurant is the tenant every data-access route is scoped to.
type Restaurant struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	OwnerID   string    `json:"ownerId" bson:"owner_id"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
