// Package notifier delivers login-change notifications. A Sink attempts
// delivery per record independently: one failed record never blocks the
// rest of the batch, and delivery failures are logged, never propagated
// back into the tracking engine.
package notifier

import (
	"context"

	"github.com/mcwatch/mcwatch/internal/domain"
)

// Sink receives one non-empty batch of notifications per poll cycle
//
//go:generate mockgen -source=notifier.go -destination=../mocks/sink.go -package=mocks -mock_names=Sink=MockSink
type Sink interface {
	Deliver(ctx context.Context, batch []domain.Notification)
}

// Hub fans a batch out to every configured sink.
type Hub struct {
	sinks []Sink
}

// NewHub creates a Hub with the given sinks.
func NewHub(sinks ...Sink) *Hub {
	return &Hub{sinks: sinks}
}

// Deliver hands the batch to each sink in turn. Sinks isolate their own
// per-record failures.
func (h *Hub) Deliver(ctx context.Context, batch []domain.Notification) {
	for _, s := range h.sinks {
		s.Deliver(ctx, batch)
	}
}
