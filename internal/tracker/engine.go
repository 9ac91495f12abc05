// Package tracker orchestrates tracking subscriptions and runs the login
// poll loop: enumerate tracked accounts, fetch current last-login values
// under bounded concurrency, diff against stored values, and fan a batch of
// notifications out to the sink once per cycle.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/mcwatch/mcwatch/internal/adapter"
	"github.com/mcwatch/mcwatch/internal/domain"
	"github.com/mcwatch/mcwatch/internal/logger"
	"github.com/mcwatch/mcwatch/internal/notifier"
	"github.com/mcwatch/mcwatch/internal/resolver"
	"github.com/mcwatch/mcwatch/internal/store"
)

const (
	// DefaultFetchConcurrency caps simultaneous Hypixel calls per cycle.
	DefaultFetchConcurrency = 10

	// DefaultStartupDelay gives surrounding startup (sink transport, admin
	// server) time to settle before the first cycle.
	DefaultStartupDelay = 3 * time.Second
)

// StatusFetcher is the engine's view of the Hypixel client
//
//go:generate mockgen -source=engine.go -destination=../mocks/status_fetcher.go -package=mocks -mock_names=StatusFetcher=MockStatusFetcher
type StatusFetcher interface {
	LastLogin(ctx context.Context, uuid domain.PlayerUUID) (lastLoginMS int64, ok bool, err error)
}

// Config holds engine configuration
type Config struct {
	PollInterval     time.Duration
	FetchConcurrency int
	StartupDelay     time.Duration
}

// Engine drives subscription operations and the background poll loop. All
// dependencies are injected; the engine holds no ambient state.
type Engine struct {
	cfg      Config
	store    store.Store
	resolver resolver.Resolver
	fetcher  StatusFetcher
	sink     notifier.Sink
	clock    adapter.Clock

	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewEngine creates a tracking engine
func NewEngine(cfg Config, st store.Store, res resolver.Resolver, fetcher StatusFetcher, sink notifier.Sink, clock adapter.Clock) *Engine {
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = DefaultFetchConcurrency
	}
	if cfg.StartupDelay <= 0 {
		cfg.StartupDelay = DefaultStartupDelay
	}
	return &Engine{
		cfg:      cfg,
		store:    st,
		resolver: res,
		fetcher:  fetcher,
		sink:     sink,
		clock:    clock,
	}
}

// Start launches the poll loop. Calling Start while the loop is already
// running is a no-op.
func (e *Engine) Start(ctx context.Context) {
	if !e.running.CompareAndSwap(false, true) {
		return
	}
	e.stopChan = make(chan struct{})
	e.stoppedCh = make(chan struct{})
	go e.run(ctx)
}

// Stop signals the loop to exit after the current cycle's dispatch completes
// and waits for it to terminate. In-flight fetches are drained, not aborted.
func (e *Engine) Stop(ctx context.Context) error {
	if !e.running.CompareAndSwap(true, false) {
		return nil
	}
	close(e.stopChan)
	select {
	case <-e.stoppedCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.stoppedCh)

	if !e.sleep(ctx, e.cfg.StartupDelay) {
		return
	}

	logger.InfoCtx(ctx, "login poll loop started",
		zap.Duration("interval", e.cfg.PollInterval),
		zap.Int("fetch_concurrency", e.cfg.FetchConcurrency),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopChan:
			return
		default:
		}

		e.runCycle(ctx)

		if !e.sleep(ctx, e.cfg.PollInterval) {
			return
		}
	}
}

// sleep waits for the given duration but can be interrupted by context
// cancellation or a stop request. Returns false when interrupted.
func (e *Engine) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-e.clock.After(d):
		return true
	case <-ctx.Done():
		return false
	case <-e.stopChan:
		return false
	}
}

// runCycle executes one poll iteration: snapshot, bounded-concurrency fetch,
// diff, and a single batched hand-off to the sink.
func (e *Engine) runCycle(ctx context.Context) {
	accounts, err := e.store.Accounts(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to snapshot tracked accounts: %w", err))
		return
	}
	if len(accounts) == 0 {
		return
	}

	pool := pond.NewPool(e.cfg.FetchConcurrency, pond.WithContext(ctx))

	var mu sync.Mutex
	var batch []domain.Notification
	for uuid := range accounts {
		pool.Submit(func() {
			notes := e.pollAccount(ctx, uuid)
			if len(notes) == 0 {
				return
			}
			mu.Lock()
			batch = append(batch, notes...)
			mu.Unlock()
		})
	}
	pool.StopAndWait()

	if len(batch) > 0 {
		logger.InfoCtx(ctx, "dispatching login notifications", zap.Int("count", len(batch)))
		e.sink.Deliver(ctx, batch)
	}
}

// pollAccount fetches one account's current last login and returns the
// notifications its change produced, if any. A failed fetch is no
// observation this cycle: no state change, no notification, and no effect
// on other accounts.
func (e *Engine) pollAccount(ctx context.Context, uuid domain.PlayerUUID) []domain.Notification {
	latest, ok, err := e.fetcher.LastLogin(ctx, uuid)
	if err != nil {
		logger.WarnCtx(ctx, "last login fetch failed, no observation this cycle",
			zap.String("uuid", string(uuid)), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	previous, err := e.store.LastLogin(ctx, uuid)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("uuid", string(uuid)))
		return nil
	}

	if previous == nil {
		// First observation seeds the baseline and is not a change. This
		// also covers a seed that raced with startup.
		if err := e.store.SetLastLogin(ctx, uuid, &latest); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to seed last login: %w", err),
				zap.String("uuid", string(uuid)))
		}
		return nil
	}
	if *previous == latest {
		return nil
	}

	if err := e.store.SetLastLogin(ctx, uuid, &latest); err != nil {
		// The in-memory value is committed; only the durable copy is stale.
		logger.ErrorCtx(ctx, fmt.Errorf("failed to persist last login: %w", err),
			zap.String("uuid", string(uuid)))
	}

	// Re-snapshot to notify the watcher set as it stands now, not as it
	// stood when the cycle began.
	accounts, err := e.store.Accounts(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("uuid", string(uuid)))
		return nil
	}
	acct, ok := accounts[uuid]
	if !ok {
		return nil
	}

	notes := make([]domain.Notification, 0, len(acct.Watchers))
	for _, w := range acct.Watchers {
		notes = append(notes, domain.Notification{
			EventID:     ulid.MustNewDefault(e.clock.Now()).String(),
			GuildID:     w.GuildID,
			ChannelID:   w.ChannelID,
			UserID:      w.UserID,
			Name:        acct.Name,
			UUID:        uuid,
			LastLoginMS: latest,
		})
	}
	return notes
}
