package domain

import "time"

// AnalyticsSnapshot is a daily rollup of restaurant performance.
type AnalyticsSnapshot struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Date          time.Time `json:"date" bson:"date"`
	Revenue       float64   `json:"revenue" bson:"revenue"`
	OrderCount    int       `json:"orderCount" bson:"order_count"`
	CustomerCount int       `json:"customerCount" bson:"customer_count"`
	AvgOrderValue float64   `json:"avgOrderValue" bson:"avg_order_value"`
	UserID        string    `json:"userId" bson:"user_id"`
	RestaurantID  string    `json:"restaurantId,omitempty" bson:"restaurant_id,omitempty"`
}
