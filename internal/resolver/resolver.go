// Package resolver maps in-game names to canonical player UUIDs by trying
// a chain of providers in order. Provider failures are logged here and
// collapse into a plain not-found outcome: the engine never distinguishes
// an unreachable provider from an authoritatively unknown name.
package resolver

import (
	"context"

	"go.uber.org/zap"

	"github.com/mcwatch/mcwatch/internal/domain"
	"github.com/mcwatch/mcwatch/internal/logger"
)

// Provider is one upstream capable of resolving a name
type Provider interface {
	UUIDForName(ctx context.Context, name string) (domain.PlayerUUID, bool, error)
	Name() string
}

// Resolver resolves an in-game name to a player UUID
//
//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks -mock_names=Resolver=MockResolver,Provider=MockResolverProvider
type Resolver interface {
	Resolve(ctx context.Context, name string) (domain.PlayerUUID, bool)
}

type chainResolver struct {
	providers []Provider
}

// NewChain creates a resolver that tries providers in order and returns the
// first successful resolution.
func NewChain(providers ...Provider) Resolver {
	return &chainResolver{providers: providers}
}

func (r *chainResolver) Resolve(ctx context.Context, name string) (domain.PlayerUUID, bool) {
	for _, p := range r.providers {
		uuid, found, err := p.UUIDForName(ctx, name)
		if err != nil {
			logger.WarnCtx(ctx, "name resolution failed, trying next provider",
				zap.String("provider", p.Name()),
				zap.String("name", name),
				zap.Error(err),
			)
			continue
		}
		if found {
			return uuid, true
		}
	}
	return "", false
}
