package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MinPollInterval bounds the upstream request rate regardless of what the
// operator configures.
const MinPollInterval = 10 * time.Second

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// PollConfig holds poll loop configuration
type PollConfig struct {
	Interval    time.Duration `mapstructure:"interval"`     // clamped to MinPollInterval on load
	HTTPTimeout time.Duration `mapstructure:"http_timeout"` // per upstream call
	Concurrency int           `mapstructure:"concurrency"`  // simultaneous upstream fetches
}

// HypixelConfig holds Hypixel API configuration
type HypixelConfig struct {
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`
}

// MojangConfig holds Mojang API configuration (primary name resolver)
type MojangConfig struct {
	APIURL string `mapstructure:"api_url"`
}

// PlayerDBConfig holds playerdb.co configuration (fallback name resolver)
type PlayerDBConfig struct {
	APIURL string `mapstructure:"api_url"`
}

// HTTPConfig holds outbound HTTP identity configuration
type HTTPConfig struct {
	UserAgent string `mapstructure:"user_agent"`
}

// StorageConfig holds tracking file configuration
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// DiscordConfig holds the Discord notification sink configuration.
// The sink is enabled when BotToken is set.
type DiscordConfig struct {
	APIURL   string `mapstructure:"api_url"`
	BotToken string `mapstructure:"bot_token"`
}

// NATSConfig holds the NATS JetStream notification sink configuration.
// The sink is enabled when URL is set.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
}

// ServerConfig holds admin HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// TrackerConfig holds configuration for the tracker service
type TrackerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Poll       PollConfig     `mapstructure:"poll"`
	HTTP       HTTPConfig     `mapstructure:"http"`
	Hypixel    HypixelConfig  `mapstructure:"hypixel"`
	Mojang     MojangConfig   `mapstructure:"mojang"`
	PlayerDB   PlayerDBConfig `mapstructure:"playerdb"`
	Storage    StorageConfig  `mapstructure:"storage"`
	Discord    DiscordConfig  `mapstructure:"discord"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Server     ServerConfig   `mapstructure:"server"`
}

// LoadTrackerConfig loads configuration for the tracker service
func LoadTrackerConfig(configFile string, envPath string) (*TrackerConfig, error) {
	v := configureViper("tracker", configFile, envPath)

	// Set defaults
	v.SetDefault("poll.interval", "30s")
	v.SetDefault("poll.http_timeout", "10s")
	v.SetDefault("poll.concurrency", 10)
	v.SetDefault("http.user_agent", "mcwatch/1.0")
	v.SetDefault("hypixel.api_url", "https://api.hypixel.net/v2")
	v.SetDefault("mojang.api_url", "https://api.mojang.com")
	v.SetDefault("playerdb.api_url", "https://playerdb.co")
	v.SetDefault("storage.path", "data/tracking.json")
	v.SetDefault("discord.api_url", "https://discord.com/api/v10")
	v.SetDefault("nats.stream_name", "PLAYER_LOGINS")
	v.SetDefault("nats.connection_name", "mcwatch-tracker")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8089)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 60)

	// Config file is optional: every key has a default or an env binding
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config TrackerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Poll.Interval < MinPollInterval {
		config.Poll.Interval = MinPollInterval
	}
	if config.Poll.Concurrency <= 0 {
		config.Poll.Concurrency = 10
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks for startup-fatal omissions. A missing credential must
// stop the process before it serves requests or starts polling.
func (c *TrackerConfig) Validate() error {
	if c.Hypixel.APIKey == "" {
		return errors.New("hypixel.api_key is required")
	}
	if c.Discord.BotToken == "" && c.NATS.URL == "" {
		return errors.New("no notification sink configured: set discord.bot_token or nats.url")
	}
	return nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("MCWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Poll
		"poll.interval",
		"poll.http_timeout",
		"poll.concurrency",
		// HTTP
		"http.user_agent",
		// Hypixel
		"hypixel.api_url",
		"hypixel.api_key",
		// Mojang
		"mojang.api_url",
		// PlayerDB
		"playerdb.api_url",
		// Storage
		"storage.path",
		// Discord
		"discord.api_url",
		"discord.bot_token",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.connection_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
