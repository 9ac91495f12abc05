package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/mcwatch/mcwatch/internal/adapter"
	"github.com/mcwatch/mcwatch/internal/domain"
	"github.com/mcwatch/mcwatch/internal/logger"
)

// messagePayload is the Discord create-message request body. Mentions are
// restricted to users so a notification can never ping roles or @everyone.
type messagePayload struct {
	Content         string          `json:"content"`
	AllowedMentions allowedMentions `json:"allowed_mentions"`
}

type allowedMentions struct {
	Parse []string `json:"parse"`
}

// DiscordSink posts one channel message per notification via the Discord
// REST API. Rate-limit (429) responses are retried with jittered backoff;
// any other failure is logged and the record is skipped.
type DiscordSink struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	apiURL     string
	botToken   string
	userAgent  string
}

// NewDiscordSink creates a Discord notification sink
func NewDiscordSink(httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, apiURL string, botToken string, userAgent string) *DiscordSink {
	return &DiscordSink{
		httpClient: httpClient,
		json:       jsonAdapter,
		apiURL:     apiURL,
		botToken:   botToken,
		userAgent:  userAgent,
	}
}

// Deliver posts every notification in the batch, independently per record.
func (s *DiscordSink) Deliver(ctx context.Context, batch []domain.Notification) {
	for _, note := range batch {
		if err := s.send(ctx, note); err != nil {
			logger.WarnCtx(ctx, "failed to deliver Discord notification",
				zap.Error(err),
				zap.String("event_id", note.EventID),
				zap.Int64("channel_id", note.ChannelID),
				zap.String("uuid", string(note.UUID)),
			)
		}
	}
}

func (s *DiscordSink) send(ctx context.Context, note domain.Notification) error {
	payload := messagePayload{
		Content:         formatContent(note),
		AllowedMentions: allowedMentions{Parse: []string{"users"}},
	}
	body, err := s.json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %w", err)
	}

	reqURL := fmt.Sprintf("%s/channels/%d/messages", s.apiURL, note.ChannelID)
	headers := map[string]string{
		"Authorization": "Bot " + s.botToken,
		"Content-Type":  "application/json",
		"User-Agent":    s.userAgent,
	}

	operation := func() error {
		resp, err := s.httpClient.Post(ctx, reqURL, headers, body)
		if err != nil {
			return backoff.Permanent(err)
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("rate limited (429), retrying")
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("Discord API returned status %d: %s", resp.StatusCode, string(resp.Body)))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	b.RandomizationFactor = 0.5

	return backoff.Retry(operation, backoff.WithContext(b, ctx))
}

// formatContent renders the mention and Discord's relative timestamp markup
// (<t:unix:R>, e.g. "3 minutes ago").
func formatContent(note domain.Notification) string {
	return fmt.Sprintf("<@%d> %s logged into Hypixel (last login updated <t:%d:R>).",
		note.UserID, note.Name, note.LastLoginMS/1000)
}
