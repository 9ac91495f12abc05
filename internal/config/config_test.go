package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTrackerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *TrackerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
poll:
  interval: "45s"
  http_timeout: "5s"
  concurrency: 4
hypixel:
  api_url: "https://api.hypixel.net/v2"
  api_key: "test-key"
storage:
  path: "data/test-tracking.json"
discord:
  bot_token: "test-token"
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_LOGINS"
  max_reconnects: 5
  reconnect_wait: "5s"
server:
  port: 9000
`,
			expectError: false,
			validate: func(t *testing.T, cfg *TrackerConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, 45*time.Second, cfg.Poll.Interval)
				assert.Equal(t, 5*time.Second, cfg.Poll.HTTPTimeout)
				assert.Equal(t, 4, cfg.Poll.Concurrency)
				assert.Equal(t, "test-key", cfg.Hypixel.APIKey)
				assert.Equal(t, "data/test-tracking.json", cfg.Storage.Path)
				assert.Equal(t, "test-token", cfg.Discord.BotToken)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_LOGINS", cfg.NATS.StreamName)
				assert.Equal(t, 5, cfg.NATS.MaxReconnects)
				assert.Equal(t, 5*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, 9000, cfg.Server.Port)
			},
		},
		{
			name: "config with defaults",
			configFile: `
hypixel:
  api_key: "test-key"
discord:
  bot_token: "test-token"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *TrackerConfig) {
				assert.Equal(t, 30*time.Second, cfg.Poll.Interval)
				assert.Equal(t, 10, cfg.Poll.Concurrency)
				assert.Equal(t, "mcwatch/1.0", cfg.HTTP.UserAgent)
				assert.Equal(t, "https://api.hypixel.net/v2", cfg.Hypixel.APIURL)
				assert.Equal(t, "https://api.mojang.com", cfg.Mojang.APIURL)
				assert.Equal(t, "https://playerdb.co", cfg.PlayerDB.APIURL)
				assert.Equal(t, "data/tracking.json", cfg.Storage.Path)
				assert.Equal(t, "https://discord.com/api/v10", cfg.Discord.APIURL)
				assert.Equal(t, "PLAYER_LOGINS", cfg.NATS.StreamName)
				assert.Equal(t, 8089, cfg.Server.Port)
			},
		},
		{
			name: "poll interval clamped to floor",
			configFile: `
poll:
  interval: "1s"
hypixel:
  api_key: "test-key"
discord:
  bot_token: "test-token"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *TrackerConfig) {
				assert.Equal(t, MinPollInterval, cfg.Poll.Interval)
			},
		},
		{
			name: "missing hypixel api key",
			configFile: `
discord:
  bot_token: "test-token"
`,
			expectError: true,
		},
		{
			name: "no notification sink configured",
			configFile: `
hypixel:
  api_key: "test-key"
`,
			expectError: true,
		},
		{
			name: "nats sink alone is enough",
			configFile: `
hypixel:
  api_key: "test-key"
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *TrackerConfig) {
				assert.Empty(t, cfg.Discord.BotToken)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				poll:
				  interval: [broken
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadTrackerConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadTrackerConfig_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
hypixel:
  api_key: "file-key"
discord:
  bot_token: "test-token"
`), 0600))

	t.Setenv("MCWATCH_HYPIXEL_API_KEY", "env-key")
	t.Setenv("MCWATCH_STORAGE_PATH", "/tmp/override.json")

	cfg, err := LoadTrackerConfig(configFile, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Hypixel.APIKey)
	assert.Equal(t, "/tmp/override.json", cfg.Storage.Path)
}

func TestLoadTrackerConfig_MissingFileUsesEnv(t *testing.T) {
	tmpDir := t.TempDir()

	t.Setenv("MCWATCH_HYPIXEL_API_KEY", "env-key")
	t.Setenv("MCWATCH_DISCORD_BOT_TOKEN", "env-token")

	cfg, err := LoadTrackerConfig(filepath.Join(tmpDir, "nonexistent.yaml"), tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Hypixel.APIKey)
	assert.Equal(t, "env-token", cfg.Discord.BotToken)
}
