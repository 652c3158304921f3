package ports

import (
	"context"
	"time"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// CampaignRepository defines persistence operations for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	// List returns campaigns for a restaurant, newest first.
	List(ctx context.Context, restaurantID string) ([]*domain.Campaign, error)
}

// CreateCampaignInput carries the fields accepted by POST /campaigns.
type CreateCampaignInput struct {
	Name           string
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	DiscountType   string
	DiscountValue  float64
	MinimumOrder   float64
	TargetAudience string
	RestaurantID   string
}

// CampaignService implements campaign listing and creation.
type CampaignService interface {
	List(ctx context.Context, restaurantID string) ([]*domain.Campaign, error)
	Create(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
}

// AnalyticsRepository reads the daily snapshot rollups.
type AnalyticsRepository interface {
	// FindRecentByUser returns up to limit snapshots, newest first.
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.AnalyticsSnapshot, error)
}

// AnalyticsService exposes the manager dashboard data.
type AnalyticsService interface {
	Recent(ctx context.Context, userID string) ([]*domain.AnalyticsSnapshot, error)
}
