package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mcwatch/mcwatch/internal/adapter"
	"github.com/mcwatch/mcwatch/internal/api"
	"github.com/mcwatch/mcwatch/internal/config"
	"github.com/mcwatch/mcwatch/internal/logger"
	"github.com/mcwatch/mcwatch/internal/notifier"
	"github.com/mcwatch/mcwatch/internal/providers/hypixel"
	"github.com/mcwatch/mcwatch/internal/providers/mojang"
	"github.com/mcwatch/mcwatch/internal/providers/playerdb"
	"github.com/mcwatch/mcwatch/internal/resolver"
	"github.com/mcwatch/mcwatch/internal/store"
	"github.com/mcwatch/mcwatch/internal/tracker"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration. A missing Hypixel key or sink credential fails
	// here, before anything starts serving or polling.
	config.ChdirRepoRoot()
	cfg, err := config.LoadTrackerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with optional sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "tracker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting login tracker")

	// Shared adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Poll.HTTPTimeout)

	// Load the tracking store before anything can call engine operations
	trackingStore, err := store.NewFileStore(cfg.Storage.Path, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to open tracking store", zap.Error(err), zap.String("path", cfg.Storage.Path))
	}
	logger.InfoCtx(ctx, "Tracking store loaded", zap.String("path", cfg.Storage.Path))

	// Name resolution: Mojang first, playerdb as fallback
	nameResolver := resolver.NewChain(
		mojang.NewClient(httpClient, jsonAdapter, cfg.Mojang.APIURL, cfg.HTTP.UserAgent),
		playerdb.NewClient(httpClient, jsonAdapter, cfg.PlayerDB.APIURL, cfg.HTTP.UserAgent),
	)

	hypixelClient, err := hypixel.NewClient(httpClient, jsonAdapter, cfg.Hypixel.APIURL, cfg.Hypixel.APIKey, cfg.HTTP.UserAgent)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Hypixel client", zap.Error(err))
	}

	// Notification sinks
	var sinks []notifier.Sink
	if cfg.Discord.BotToken != "" {
		sinks = append(sinks, notifier.NewDiscordSink(httpClient, jsonAdapter, cfg.Discord.APIURL, cfg.Discord.BotToken, cfg.HTTP.UserAgent))
		logger.InfoCtx(ctx, "Discord sink enabled")
	}
	if cfg.NATS.URL != "" {
		natsSink, err := notifier.NewNATSSink(notifier.NATSConfig{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConnectionName: cfg.NATS.ConnectionName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
		}, jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect NATS sink", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer natsSink.Close()
		sinks = append(sinks, natsSink)
		logger.InfoCtx(ctx, "NATS sink enabled", zap.String("stream", cfg.NATS.StreamName))
	}

	// Tracking engine
	engine := tracker.NewEngine(tracker.Config{
		PollInterval:     cfg.Poll.Interval,
		FetchConcurrency: cfg.Poll.Concurrency,
	}, trackingStore, nameResolver, hypixelClient, notifier.NewHub(sinks...), clock)

	// Admin API server
	server := api.New(api.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, trackingStore, hypixelClient)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errChan <- err
		}
	}()

	engine.Start(ctx)
	logger.InfoCtx(ctx, "Tracking engine started",
		zap.Duration("poll_interval", cfg.Poll.Interval),
		zap.Int("fetch_concurrency", cfg.Poll.Concurrency),
	)

	// Wait for interrupt signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := engine.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Tracker stopped")
}
