package domain

import (
	"errors"
	"time"
)

// Role is the closed set of staff roles. Anything unresolvable collapses to
// RoleEmployee.
type Role string

const (
	RoleManager  Role = "MANAGER"
	RoleChef     Role = "CHEF"
	RoleServer   Role = "SERVER"
	RoleHost     Role = "HOST"
	RoleEmployee Role = "EMPLOYEE"
)

// DefaultRole is assigned when a token or user record carries no usable role.
const DefaultRole = RoleEmployee

// Valid reports whether r is one of the five known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleChef, RoleServer, RoleHost, RoleEmployee:
		return true
	}
	return false
}

// NormalizeRole returns r when valid, DefaultRole otherwise.
func NormalizeRole(r Role) Role {
	if r.Valid() {
		return r
	}
	return DefaultRole
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrRemoveSelf = errors.New("cannot remove yourself from the team")
var ErrAlreadyMember = errors.New("user is already a member of this restaurant")

// User is a persisted staff account. PasswordHash is only meaningful on the
// legacy authentication path; provider-managed accounts store a placeholder.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	FirstName    string    `json:"firstName" bson:"first_name"`
	LastName     string    `json:"lastName" bson:"last_name"`
	Role         Role      `json:"role" bson:"role"`
	RestaurantID string    `json:"restaurantId,omitempty" bson:"restaurant_id,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	IsActive     bool      `json:"isActive" bson:"is_active"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

// TeamMember is the projection of User exposed on team listings.
type TeamMember struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
