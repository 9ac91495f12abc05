package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/mcwatch/mcwatch/internal/adapter"
	"github.com/mcwatch/mcwatch/internal/domain"
	"github.com/mcwatch/mcwatch/internal/logger"
)

// NATSConfig holds the configuration for the NATS JetStream sink
type NATSConfig struct {
	URL            string
	StreamName     string
	ConnectionName string
	MaxReconnects  int
	ReconnectWait  time.Duration
}

// NATSSink publishes one JetStream event per notification so downstream
// consumers (dashboards, archival) can react to login changes.
type NATSSink struct {
	nc         *nats.Conn
	js         nats.JetStreamContext
	streamName string
	json       adapter.JSON
}

// NewNATSSink connects to NATS and ensures the login event stream exists.
func NewNATSSink(cfg NATSConfig, jsonAdapter adapter.JSON) (*NATSSink, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	// Idempotent: AddStream is a no-op when the stream already exists with
	// the same configuration.
	if _, err := js.AddStream(&nats.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{"logins.>"},
	}); err != nil && err != nats.ErrStreamNameAlreadyInUse {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return &NATSSink{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// Deliver publishes every notification in the batch, independently per record.
func (s *NATSSink) Deliver(ctx context.Context, batch []domain.Notification) {
	for _, note := range batch {
		data, err := s.json.Marshal(note)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to marshal notification: %w", err),
				zap.String("event_id", note.EventID))
			continue
		}

		subject := fmt.Sprintf("logins.%s", note.UUID)
		if _, err := s.js.Publish(subject, data, nats.Context(ctx)); err != nil {
			logger.WarnCtx(ctx, "failed to publish login event",
				zap.Error(err),
				zap.String("subject", subject),
				zap.String("event_id", note.EventID),
			)
		}
	}
}

// Close closes the NATS connection
func (s *NATSSink) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}
