package tracker

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/mcwatch/mcwatch/internal/domain"
	"github.com/mcwatch/mcwatch/internal/logger"
)

// Track resolves the in-game name and registers the watcher. A newly
// created account is baselined from a one-off fetch so the first poll
// cycle does not report the seeding read as a change.
func (e *Engine) Track(ctx context.Context, name string, w domain.Watcher) (bool, string) {
	uuid, found := e.resolver.Resolve(ctx, name)
	if !found {
		return false, "Minecraft IGN not found."
	}

	added, count, err := e.store.AddWatcher(ctx, uuid, name, w)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to add watcher: %w", err),
			zap.String("uuid", string(uuid)), zap.String("name", name))
		return false, "Failed to save the tracking subscription."
	}
	if !added {
		return true, fmt.Sprintf("Already tracking %s.", name)
	}

	previous, err := e.store.LastLogin(ctx, uuid)
	if err == nil && previous == nil {
		if latest, ok, err := e.fetcher.LastLogin(ctx, uuid); err == nil && ok {
			if err := e.store.SetLastLogin(ctx, uuid, &latest); err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to seed last login: %w", err),
					zap.String("uuid", string(uuid)))
			}
		}
	}

	return true, fmt.Sprintf("Tracking %s (watchers: %d).", name, count)
}

// Untrack removes the watcher's subscription on the named account. The name
// is looked up in the store's index first to avoid a network call; when the
// index has no entry (for example, it was overwritten by a later subscriber
// under a newer name) the name is resolved live. A live resolve can map a
// stale name to a different account than the one originally tracked, in
// which case no watcher is found and removal reports failure.
func (e *Engine) Untrack(ctx context.Context, name string, w domain.Watcher) (bool, string) {
	uuid, found, err := e.store.UUIDByName(ctx, name)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("name", name))
	}
	if !found {
		uuid, found = e.resolver.Resolve(ctx, name)
		if !found {
			return false, "IGN not found in tracking."
		}
	}

	removed, err := e.store.RemoveWatcher(ctx, uuid, w)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to remove watcher: %w", err),
			zap.String("uuid", string(uuid)), zap.String("name", name))
		return false, "Failed to update tracking data."
	}
	if !removed {
		return false, fmt.Sprintf("You were not tracking %s in this channel.", name)
	}
	return true, fmt.Sprintf("Stopped tracking %s.", name)
}

// UntrackAll removes every subscription held by the watcher tuple and
// returns how many were removed.
func (e *Engine) UntrackAll(ctx context.Context, w domain.Watcher) (int, error) {
	return e.store.RemoveAllForWatcher(ctx, w)
}

// List returns the in-game names the watcher tuple currently tracks,
// deduplicated by account and sorted alphabetically.
func (e *Engine) List(ctx context.Context, w domain.Watcher) ([]string, error) {
	accounts, err := e.store.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	for uuid, acct := range accounts {
		for _, existing := range acct.Watchers {
			if existing == w {
				name := acct.Name
				if name == "" {
					name = string(uuid)
				}
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names, nil
}
