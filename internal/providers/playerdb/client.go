// Package playerdb implements the fallback in-game-name resolver against
// playerdb.co, used when the Mojang API is unavailable.
package playerdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mcwatch/mcwatch/internal/adapter"
	"github.com/mcwatch/mcwatch/internal/domain"
)

const PROVIDER_NAME = "playerdb"

// playerResponse represents the playerdb.co lookup response
type playerResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Player struct {
			ID string `json:"id"`
		} `json:"player"`
	} `json:"data"`
}

// Client defines the interface for playerdb client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/playerdb_client.go -package=mocks -mock_names=Client=MockPlayerDBClient
type Client interface {
	// UUIDForName resolves an in-game name to its canonical player UUID.
	UUIDForName(ctx context.Context, name string) (domain.PlayerUUID, bool, error)

	// Name returns the provider name for logging
	Name() string
}

// PlayerDBClient implements the playerdb.co API client
type PlayerDBClient struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	apiURL     string
	userAgent  string
}

// NewClient creates a new playerdb client
func NewClient(httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, apiURL string, userAgent string) Client {
	return &PlayerDBClient{
		httpClient: httpClient,
		json:       jsonAdapter,
		apiURL:     apiURL,
		userAgent:  userAgent,
	}
}

// Name returns the provider name for logging
func (c *PlayerDBClient) Name() string {
	return PROVIDER_NAME
}

// UUIDForName resolves an in-game name via GET /api/player/minecraft/{name}
func (c *PlayerDBClient) UUIDForName(ctx context.Context, name string) (domain.PlayerUUID, bool, error) {
	reqURL := fmt.Sprintf("%s/api/player/minecraft/%s", c.apiURL, url.PathEscape(name))
	headers := map[string]string{
		"User-Agent": c.userAgent,
		"Accept":     "application/json",
	}

	resp, err := c.httpClient.Get(ctx, reqURL, headers)
	if err != nil {
		return "", false, fmt.Errorf("failed to call playerdb API: %w", err)
	}

	// playerdb reports unknown names with a non-200 status and success=false
	if resp.StatusCode != http.StatusOK {
		return "", false, nil
	}

	var player playerResponse
	if err := c.json.Unmarshal(resp.Body, &player); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal playerdb response: %w", err)
	}
	if !player.Success || player.Data.Player.ID == "" {
		return "", false, nil
	}

	uuid, err := domain.ParsePlayerUUID(player.Data.Player.ID)
	if err != nil {
		return "", false, fmt.Errorf("playerdb returned malformed player id: %w", err)
	}
	return uuid, true, nil
}
