package domain

import "time"

// ShiftUser is the slim user projection embedded in shift listings.
type ShiftUser struct {
	ID        string `json:"id" bson:"id"`
	FirstName string `json:"firstName" bson:"first_name"`
	LastName  string `json:"lastName" bson:"last_name"`
}

// Shift is a scheduled work period for one staff member.
type Shift struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	StartTime    time.Time  `json:"startTime" bson:"start_time"`
	EndTime      time.Time  `json:"endTime" bson:"end_time"`
	Notes        string     `json:"notes,omitempty" bson:"notes,omitempty"`
	UserID       string     `json:"userId" bson:"user_id"`
	User         *ShiftUser `json:"user,omitempty" bson:"user,omitempty"`
	RestaurantID string     `json:"restaurantId,omitempty" bson:"restaurant_id,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"created_at"`
}
