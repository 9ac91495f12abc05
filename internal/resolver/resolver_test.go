package resolver_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mcwatch/mcwatch/internal/domain"
	"github.com/mcwatch/mcwatch/internal/logger"
	"github.com/mcwatch/mcwatch/internal/mocks"
	"github.com/mcwatch/mcwatch/internal/resolver"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const testUUID = domain.PlayerUUID("3b0c9d4e8f1a4b6c9d2e5f8a1b4c7d0e")

func TestChainResolver_PrimaryWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	primary := mocks.NewMockResolverProvider(ctrl)
	fallback := mocks.NewMockResolverProvider(ctrl)

	primary.EXPECT().UUIDForName(ctx, "Alice").Return(testUUID, true, nil)
	// fallback is never consulted

	uuid, found := resolver.NewChain(primary, fallback).Resolve(ctx, "Alice")
	assert.True(t, found)
	assert.Equal(t, testUUID, uuid)
}

func TestChainResolver_ErrorFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	primary := mocks.NewMockResolverProvider(ctrl)
	fallback := mocks.NewMockResolverProvider(ctrl)

	primary.EXPECT().UUIDForName(ctx, "Alice").Return(domain.PlayerUUID(""), false, errors.New("mojang is down"))
	primary.EXPECT().Name().Return("mojang")
	fallback.EXPECT().UUIDForName(ctx, "Alice").Return(testUUID, true, nil)

	uuid, found := resolver.NewChain(primary, fallback).Resolve(ctx, "Alice")
	assert.True(t, found)
	assert.Equal(t, testUUID, uuid)
}

func TestChainResolver_NotFoundFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	primary := mocks.NewMockResolverProvider(ctrl)
	fallback := mocks.NewMockResolverProvider(ctrl)

	// An authoritative not-found still consults the fallback; a freshly
	// renamed account can lag behind on one upstream.
	primary.EXPECT().UUIDForName(ctx, "Alice").Return(domain.PlayerUUID(""), false, nil)
	fallback.EXPECT().UUIDForName(ctx, "Alice").Return(testUUID, true, nil)

	uuid, found := resolver.NewChain(primary, fallback).Resolve(ctx, "Alice")
	assert.True(t, found)
	assert.Equal(t, testUUID, uuid)
}

func TestChainResolver_AllProvidersFailCollapsesToNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	primary := mocks.NewMockResolverProvider(ctrl)
	fallback := mocks.NewMockResolverProvider(ctrl)

	primary.EXPECT().UUIDForName(ctx, "Ghost").Return(domain.PlayerUUID(""), false, errors.New("timeout"))
	primary.EXPECT().Name().Return("mojang")
	fallback.EXPECT().UUIDForName(ctx, "Ghost").Return(domain.PlayerUUID(""), false, errors.New("timeout"))
	fallback.EXPECT().Name().Return("playerdb")

	uuid, found := resolver.NewChain(primary, fallback).Resolve(ctx, "Ghost")
	assert.False(t, found)
	assert.Empty(t, uuid)
}

func TestChainResolver_NoProviders(t *testing.T) {
	_, found := resolver.NewChain().Resolve(context.Background(), "Alice")
	assert.False(t, found)
}
