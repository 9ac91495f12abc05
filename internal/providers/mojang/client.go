// Package mojang implements the primary in-game-name resolver against the
// Mojang profile API.
package mojang

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mcwatch/mcwatch/internal/adapter"
	"github.com/mcwatch/mcwatch/internal/domain"
)

const PROVIDER_NAME = "mojang"

// profileResponse represents the Mojang profile lookup response
type profileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client defines the interface for Mojang client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/mojang_client.go -package=mocks -mock_names=Client=MockMojangClient
type Client interface {
	// UUIDForName resolves an in-game name to its canonical player UUID.
	// A name Mojang does not know returns found=false with a nil error.
	UUIDForName(ctx context.Context, name string) (domain.PlayerUUID, bool, error)

	// Name returns the provider name for logging
	Name() string
}

// MojangClient implements the Mojang profile API client
type MojangClient struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	apiURL     string
	userAgent  string
}

// NewClient creates a new Mojang client
func NewClient(httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, apiURL string, userAgent string) Client {
	return &MojangClient{
		httpClient: httpClient,
		json:       jsonAdapter,
		apiURL:     apiURL,
		userAgent:  userAgent,
	}
}

// Name returns the provider name for logging
func (c *MojangClient) Name() string {
	return PROVIDER_NAME
}

// UUIDForName resolves an in-game name via GET /users/profiles/minecraft/{name}
func (c *MojangClient) UUIDForName(ctx context.Context, name string) (domain.PlayerUUID, bool, error) {
	reqURL := fmt.Sprintf("%s/users/profiles/minecraft/%s", c.apiURL, url.PathEscape(name))
	headers := map[string]string{
		"User-Agent": c.userAgent,
		"Accept":     "application/json",
	}

	resp, err := c.httpClient.Get(ctx, reqURL, headers)
	if err != nil {
		return "", false, fmt.Errorf("failed to call Mojang API: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var profile profileResponse
		if err := c.json.Unmarshal(resp.Body, &profile); err != nil {
			return "", false, fmt.Errorf("failed to unmarshal Mojang response: %w", err)
		}
		uuid, err := domain.ParsePlayerUUID(profile.ID)
		if err != nil {
			return "", false, fmt.Errorf("Mojang returned malformed profile id: %w", err)
		}
		return uuid, true, nil
	case http.StatusNoContent, http.StatusNotFound:
		// Authoritatively unknown name
		return "", false, nil
	default:
		return "", false, fmt.Errorf("Mojang API returned status %d", resp.StatusCode)
	}
}
