// Package hypixel implements the Hypixel player API client used to observe
// a player's last login timestamp.
package hypixel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mcwatch/mcwatch/internal/adapter"
	"github.com/mcwatch/mcwatch/internal/domain"
	"github.com/mcwatch/mcwatch/internal/logger"

	"go.uber.org/zap"
)

const PROVIDER_NAME = "hypixel"

// playerResponse represents the Hypixel player endpoint response
type playerResponse struct {
	Success bool   `json:"success"`
	Cause   string `json:"cause,omitempty"`
	Player  *struct {
		LastLogin *int64 `json:"lastLogin"`
	} `json:"player"`
}

// keyResponse represents the Hypixel key endpoint response
type keyResponse struct {
	Success bool `json:"success"`
	Record  *struct {
		Owner string `json:"owner"`
	} `json:"record"`
}

// Client defines the interface for Hypixel client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/hypixel_client.go -package=mocks -mock_names=Client=MockHypixelClient
type Client interface {
	// LastLogin fetches the player's last login timestamp in epoch
	// milliseconds. ok is false when the player is unknown or has no
	// login history; an error covers transport and API failures.
	LastLogin(ctx context.Context, uuid domain.PlayerUUID) (lastLoginMS int64, ok bool, err error)

	// KeyInfo is a best-effort connectivity and key-validity check for
	// diagnostics. It never returns an error; the message carries the
	// failure cause.
	KeyInfo(ctx context.Context) (valid bool, message string)
}

// HypixelClient implements the Hypixel API client
type HypixelClient struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	apiURL     string
	apiKey     string
	userAgent  string
}

// NewClient creates a new Hypixel client
func NewClient(httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, apiURL string, apiKey string, userAgent string) (Client, error) {
	if apiKey == "" {
		return nil, domain.ErrNoAPIKey
	}
	return &HypixelClient{
		httpClient: httpClient,
		json:       jsonAdapter,
		apiURL:     apiURL,
		apiKey:     apiKey,
		userAgent:  userAgent,
	}, nil
}

func (c *HypixelClient) headers(withKey bool) map[string]string {
	h := map[string]string{
		"User-Agent": c.userAgent,
		"Accept":     "application/json",
	}
	if withKey {
		h["API-Key"] = c.apiKey
	}
	return h
}

// LastLogin fetches the player's last login timestamp. The key is sent in
// the API-Key header first; a 403 is retried once with query-parameter key
// transport before giving up.
func (c *HypixelClient) LastLogin(ctx context.Context, uuid domain.PlayerUUID) (int64, bool, error) {
	reqURL := fmt.Sprintf("%s/player?uuid=%s", c.apiURL, uuid)

	resp, err := c.httpClient.Get(ctx, reqURL, c.headers(true))
	if err != nil {
		return 0, false, fmt.Errorf("failed to call Hypixel API: %w", err)
	}

	if resp.StatusCode == http.StatusForbidden {
		logger.Warn("Hypixel API rejected header key transport, retrying with query key",
			zap.String("uuid", string(uuid)))
		altURL := fmt.Sprintf("%s&key=%s", reqURL, c.apiKey)
		resp, err = c.httpClient.Get(ctx, altURL, c.headers(false))
		if err != nil {
			return 0, false, fmt.Errorf("failed to call Hypixel API via query key: %w", err)
		}
	}

	if resp.StatusCode != http.StatusOK {
		return 0, false, fmt.Errorf("Hypixel API returned status %d", resp.StatusCode)
	}

	var player playerResponse
	if err := c.json.Unmarshal(resp.Body, &player); err != nil {
		return 0, false, fmt.Errorf("failed to unmarshal Hypixel response: %w", err)
	}
	if !player.Success {
		return 0, false, fmt.Errorf("Hypixel API error: %s", player.Cause)
	}
	if player.Player == nil || player.Player.LastLogin == nil {
		return 0, false, nil
	}
	return *player.Player.LastLogin, true, nil
}

// KeyInfo checks the configured key against the key endpoint.
func (c *HypixelClient) KeyInfo(ctx context.Context) (bool, string) {
	reqURL := fmt.Sprintf("%s/key", c.apiURL)

	resp, err := c.httpClient.Get(ctx, reqURL, c.headers(true))
	if err != nil {
		return false, fmt.Sprintf("Key check request failed: %v", err)
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return false, "Forbidden by Hypixel API. The API key is invalid/disabled, or the IP is blocked."
	case resp.StatusCode != http.StatusOK:
		return false, fmt.Sprintf("Unexpected status %d", resp.StatusCode)
	}

	var key keyResponse
	if err := c.json.Unmarshal(resp.Body, &key); err != nil {
		return false, fmt.Sprintf("Key check returned malformed payload: %v", err)
	}
	if !key.Success {
		return false, "Key check failed."
	}

	owner := "unknown"
	if key.Record != nil && key.Record.Owner != "" {
		owner = key.Record.Owner
	}
	return true, fmt.Sprintf("Key is valid. Owner: %s", owner)
}
