package service

import (
	"context"
	"time"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// analyticsWindow is the number of daily snapshots exposed to the dashboard.
const analyticsWindow = 30

// CampaignService implements campaign listing and creation.
type CampaignService struct {
	campaigns ports.CampaignRepository
}

func NewCampaignService(campaigns ports.CampaignRepository) *CampaignService {
	return &CampaignService{campaigns: campaigns}
}

func (s *CampaignService) List(ctx context.Context, restaurantID string) ([]*domain.Campaign, error) {
	return s.campaigns.List(ctx, restaurantID)
}

func (s *CampaignService) Create(ctx context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error) {
	return s.campaigns.Create(ctx, &domain.Campaign{
		Name:           in.Name,
		Description:    in.Description,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		DiscountType:   in.DiscountType,
		DiscountValue:  in.DiscountValue,
		MinimumOrder:   in.MinimumOrder,
		TargetAudience: in.TargetAudience,
		RestaurantID:   in.RestaurantID,
		CreatedAt:      time.Now().UTC(),
	})
}

// AnalyticsService exposes the last month of daily snapshots.
type AnalyticsService struct {
	snapshots ports.AnalyticsRepository
}

func NewAnalyticsService(snapshots ports.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{snapshots: snapshots}
}

func (s *AnalyticsService) Recent(ctx context.Context, userID string) ([]*domain.AnalyticsSnapshot, error) {
	return s.snapshots.FindRecentByUser(ctx, userID, analyticsWindow)
}
