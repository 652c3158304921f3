package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.WebhookEventInput
	done   chan struct{}
}

func newRecordingService(expected int) *recordingService {
	return &recordingService{done: make(chan struct{}, expected)}
}

func (s *recordingService) Process(_ context.Context, in ports.WebhookEventInput) error {
	s.mu.Lock()
	s.events = append(s.events, in)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *recordingService) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_ProcessesEnqueuedEvents(t *testing.T) {
	svc := newRecordingService(2)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.WebhookEventInput{Provider: "UberEats", ExternalID: "a-1"})
	d.Enqueue(ports.WebhookEventInput{Provider: "DoorDash", ExternalID: "b-2"})
	svc.wait(t, 2)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.events) != 2 {
		t.Fatalf("expected 2 processed events, got %d", len(svc.events))
	}
}

func TestDispatcher_SameOrderSameWorker(t *testing.T) {
	d := NewDispatcher(4, newRecordingService(0), zerolog.Nop())

	first := d.shardIndex("order-xyz")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("order-xyz"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
