package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/api/metrics"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes delivery-platform events to a fixed set of workers using
// consistent hashing on the external order id, so events for the same order
// are processed in arrival order.
type Dispatcher struct {
	workers []chan ports.WebhookEventInput
	service ports.WebhookService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.WebhookService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.WebhookEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.WebhookEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its external order id.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.WebhookEventInput) {
	idx := d.shardIndex(event.ExternalID)
	d.workers[idx] <- event
	metrics.WebhookQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an external order id deterministically to a worker index.
func (d *Dispatcher) shardIndex(externalID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(externalID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.WebhookEventInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("external_id", event.ExternalID).
					Int("worker_id", id).
					Msg("webhook processing failed")
			}
			metrics.WebhookQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
