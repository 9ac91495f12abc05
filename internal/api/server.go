// Package api serves the admin surface: health, Hypixel key diagnostics,
// and a read-only view of the tracked accounts.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mcwatch/mcwatch/internal/logger"
	"github.com/mcwatch/mcwatch/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	keyChecker KeyChecker
	httpServer *http.Server
}

// New creates a new admin API server
func New(cfg Config, st store.Store, keyChecker KeyChecker) *Server {
	return &Server{
		config:     cfg,
		store:      st,
		keyChecker: keyChecker,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(Recovery())
	router.Use(Logger())
	router.Use(SetupCORS())

	SetupRoutes(router, NewHandler(s.store, s.keyChecker))

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting admin API server", zap.String("address", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down admin API server")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
