package ports

import (
	"context"
	"time"
)

// WebhookEventInput is a normalized delivery-platform event. ExternalID is the
// platform's order identifier and is the sharding key for the dispatcher.
type WebhookEventInput struct {
	Provider      string
	ExternalID    string
	EventType     string
	CustomerName  string
	CustomerPhone string
	Items         []OrderItemInput
	Timestamp     time.Time
}

// WebhookService processes delivery-platform events off the request path.
type WebhookService interface {
	Process(ctx context.Context, in WebhookEventInput) error
}
