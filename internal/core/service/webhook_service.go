package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/api/metrics"
	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis). Delivery platforms
// redeliver webhooks, so each (provider, external id, event) is processed once.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, provider, externalID, eventType string, ts time.Time) (bool, error)
	Mark(ctx context.Context, provider, externalID, eventType string, ts time.Time) error
}

type webhookService struct {
	orders ports.OrderService
	repo   ports.OrderRepository
	dedup  DedupChecker
	log    zerolog.Logger
}

// NewWebhookService returns a WebhookService that records delivery-platform
// orders.
func NewWebhookService(orders ports.OrderService, repo ports.OrderRepository, dedup DedupChecker, log zerolog.Logger) ports.WebhookService {
	return &webhookService{orders: orders, repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and records a single delivery-platform event.
func (s *webhookService) Process(ctx context.Context, in ports.WebhookEventInput) error {
	start := time.Now()

	isDup, err := s.dedup.IsDuplicate(ctx, in.Provider, in.ExternalID, in.EventType, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("external_id", in.ExternalID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("external_id", in.ExternalID).Str("provider", in.Provider).Msg("duplicate webhook skipped")
		metrics.WebhookEventsTotal.WithLabelValues(in.Provider, "duplicate").Inc()
		return nil
	}

	if markErr := s.dedup.Mark(ctx, in.Provider, in.ExternalID, in.EventType, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("external_id", in.ExternalID).Msg("failed to set dedup key")
	}

	// The same external order may arrive through more than one event type.
	existing, err := s.repo.FindByExternalID(ctx, in.ExternalID)
	if err != nil && !errors.Is(err, domain.ErrOrderNotFound) {
		metrics.WebhookEventsTotal.WithLabelValues(in.Provider, "error").Inc()
		return fmt.Errorf("webhook lookup: %w", err)
	}
	if existing != nil {
		s.log.Debug().Str("external_id", in.ExternalID).Msg("order already recorded")
		metrics.WebhookEventsTotal.WithLabelValues(in.Provider, "duplicate").Inc()
		return nil
	}

	order, err := s.orders.Create(ctx, ports.CreateOrderInput{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Source:        in.Provider,
		Items:         in.Items,
		ExternalID:    in.ExternalID,
	})
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues(in.Provider, "error").Inc()
		return fmt.Errorf("webhook order: %w", err)
	}

	metrics.WebhookEventsTotal.WithLabelValues(in.Provider, "processed").Inc()
	metrics.WebhookProcessingDuration.WithLabelValues(in.Provider).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("provider", in.Provider).
		Str("external_id", in.ExternalID).
		Str("order_number", order.OrderNumber).
		Msg("webhook order recorded")

	return nil
}
