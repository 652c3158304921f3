package domain

import "time"

// Reservation is a booked table slot.
type Reservation struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	CustomerName    string    `json:"customerName" bson:"customer_name"`
	CustomerPhone   string    `json:"customerPhone,omitempty" bson:"customer_phone,omitempty"`
	CustomerEmail   string    `json:"customerEmail,omitempty" bson:"customer_email,omitempty"`
	PartySize       int       `json:"partySize" bson:"party_size"`
	ReservationTime time.Time `json:"reservationTime" bson:"reservation_time"`
	SpecialRequests string    `json:"specialRequests,omitempty" bson:"special_requests,omitempty"`
	UserID          string    `json:"userId" bson:"user_id"`
	RestaurantID    string    `json:"restaurantId,omitempty" bson:"restaurant_id,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
}
