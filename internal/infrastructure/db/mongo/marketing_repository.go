package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

const (
	collectionCampaigns = "campaigns"
	collectionAnalytics = "analytics_snapshots"
)

type CampaignRepository struct {
	col *mongo.Collection
}

func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{col: db.Collection(collectionCampaigns)}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if campaign.ID == "" {
		campaign.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// List returns a restaurant's campaigns, newest first.
func (r *CampaignRepository) List(ctx context.Context, restaurantID string) ([]*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"restaurant_id": restaurantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	campaigns := make([]*domain.Campaign, 0)
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

type AnalyticsRepository struct {
	col *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{col: db.Collection(collectionAnalytics)}
}

// FindRecentByUser returns up to limit snapshots, newest first.
func (r *AnalyticsRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.AnalyticsSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	snapshots := make([]*domain.AnalyticsSnapshot, 0)
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}
