package domain

import "time"

// Campaign is a promotional discount window.
type Campaign struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	StartDate      time.Time `json:"startDate" bson:"start_date"`
	EndDate        time.Time `json:"endDate" bson:"end_date"`
	DiscountType   string    `json:"discountType" bson:"discount_type"`
	DiscountValue  float64   `json:"discountValue" bson:"discount_value"`
	MinimumOrder   float64   `json:"minimumOrder,omitempty" bson:"minimum_order,omitempty"`
	TargetAudience string    `json:"targetAudience,omitempty" bson:"target_audience,omitempty"`
	RestaurantID   string    `json:"restaurantId,omitempty" bson:"restaurant_id,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
}
