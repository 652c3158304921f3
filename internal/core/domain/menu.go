package domain

import (
	"errors"
	"time"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// Nutrition holds per-item nutritional facts.
type Nutrition struct {
	Calories int `json:"calories" bson:"calories"`
	Protein  int `json:"protein" bson:"protein"`
	Carbs    int `json:"carbs" bson:"carbs"`
	Fat      int `json:"fat" bson:"fat"`
}

// MenuItem is a sellable dish or drink. Price is stored as a float at the
// persistence boundary; all arithmetic on it goes through decimals.
type MenuItem struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64    `json:"price" bson:"price"`
	Category    string     `json:"category" bson:"category"`
	IsAvailable bool       `json:"isAvailable" bson:"is_available"`
	ImageURL    string     `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	Allergens   []string   `json:"allergens,omitempty" bson:"allergens,omitempty"`
	Nutrition   *Nutrition `json:"nutrition,omitempty" bson:"nutrition,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updated_at"`
}
