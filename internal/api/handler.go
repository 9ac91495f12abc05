package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcwatch/mcwatch/internal/logger"
	"github.com/mcwatch/mcwatch/internal/store"
)

// KeyChecker is the diagnostic view of the Hypixel client
//
//go:generate mockgen -source=handler.go -destination=../mocks/key_checker.go -package=mocks -mock_names=KeyChecker=MockKeyChecker
type KeyChecker interface {
	KeyInfo(ctx context.Context) (valid bool, message string)
}

// accountView is the admin representation of one tracked account
type accountView struct {
	UUID         string `json:"uuid"`
	Name         string `json:"name"`
	LastLoginMS  *int64 `json:"last_login_ms"`
	WatcherCount int    `json:"watcher_count"`
}

// Handler defines the admin REST handlers
type Handler interface {
	// HealthCheck returns the health status of the service
	// GET /health
	HealthCheck(c *gin.Context)

	// KeyInfo checks Hypixel API key validity and connectivity
	// GET /api/v1/key
	KeyInfo(c *gin.Context)

	// Accounts lists the tracked account snapshot
	// GET /api/v1/accounts
	Accounts(c *gin.Context)
}

type handler struct {
	store      store.Store
	keyChecker KeyChecker
}

// NewHandler creates an admin REST handler
func NewHandler(st store.Store, keyChecker KeyChecker) Handler {
	return &handler{
		store:      st,
		keyChecker: keyChecker,
	}
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) KeyInfo(c *gin.Context) {
	valid, message := h.keyChecker.KeyInfo(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"valid":   valid,
		"message": message,
	})
}

func (h *handler) Accounts(c *gin.Context) {
	accounts, err := h.store.Accounts(c.Request.Context())
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read tracking data"})
		return
	}

	views := make([]accountView, 0, len(accounts))
	for uuid, acct := range accounts {
		views = append(views, accountView{
			UUID:         string(uuid),
			Name:         acct.Name,
			LastLoginMS:  acct.LastLoginMS,
			WatcherCount: len(acct.Watchers),
		})
	}
	c.JSON(http.StatusOK, gin.H{"accounts": views})
}

// SetupRoutes configures the admin REST routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/key", handler.KeyInfo)
		v1.GET("/accounts", handler.Accounts)
	}
}
