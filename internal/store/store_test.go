package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcwatch/mcwatch/internal/adapter"
	"github.com/mcwatch/mcwatch/internal/domain"
	"github.com/mcwatch/mcwatch/internal/logger"
	"github.com/mcwatch/mcwatch/internal/store"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const (
	aliceUUID = domain.PlayerUUID("3b0c9d4e8f1a4b6c9d2e5f8a1b4c7d0e")
	bobUUID   = domain.PlayerUUID("7f2e1d0c9b8a7f6e5d4c3b2a19081726")
)

var (
	watcherOne = domain.Watcher{GuildID: 100, ChannelID: 200, UserID: 300}
	watcherTwo = domain.Watcher{GuildID: 100, ChannelID: 200, UserID: 301}
)

func newTestStore(t *testing.T) (store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracking.json")
	s, err := store.NewFileStore(path, adapter.NewJSON())
	require.NoError(t, err)
	return s, path
}

func TestFileStore_AddWatcher_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	added, count, err := s.AddWatcher(ctx, aliceUUID, "Alice", watcherOne)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, count)

	// Same tuple again: no change, same count
	added, count, err = s.AddWatcher(ctx, aliceUUID, "Alice", watcherOne)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, count)

	added, count, err = s.AddWatcher(ctx, aliceUUID, "Alice", watcherTwo)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 2, count)
}

func TestFileStore_AddWatcher_RefreshesNameCasing(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, _, err := s.AddWatcher(ctx, aliceUUID, "alice", watcherOne)
	require.NoError(t, err)
	_, _, err = s.AddWatcher(ctx, aliceUUID, "Alice", watcherTwo)
	require.NoError(t, err)

	accounts, err := s.Accounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", accounts[aliceUUID].Name)

	// The index is case-insensitive on lookup
	uuid, found, err := s.UUIDByName(ctx, "ALICE")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, aliceUUID, uuid)
}

func TestFileStore_RemoveWatcher_LastWatcherDeletesAccount(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, _, err := s.AddWatcher(ctx, aliceUUID, "Alice", watcherOne)
	require.NoError(t, err)
	_, _, err = s.AddWatcher(ctx, aliceUUID, "Alice", watcherTwo)
	require.NoError(t, err)

	removed, err := s.RemoveWatcher(ctx, aliceUUID, watcherOne)
	require.NoError(t, err)
	assert.True(t, removed)

	// Account survives while a watcher remains
	accounts, err := s.Accounts(ctx)
	require.NoError(t, err)
	assert.Contains(t, accounts, aliceUUID)

	removed, err = s.RemoveWatcher(ctx, aliceUUID, watcherTwo)
	require.NoError(t, err)
	assert.True(t, removed)

	accounts, err = s.Accounts(ctx)
	require.NoError(t, err)
	assert.NotContains(t, accounts, aliceUUID)

	// Name index entries pointing at the deleted account are gone too
	_, found, err := s.UUIDByName(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_RemoveWatcher_UnknownTuple(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	removed, err := s.RemoveWatcher(ctx, aliceUUID, watcherOne)
	require.NoError(t, err)
	assert.False(t, removed)

	_, _, err = s.AddWatcher(ctx, aliceUUID, "Alice", watcherOne)
	require.NoError(t, err)

	removed, err = s.RemoveWatcher(ctx, aliceUUID, watcherTwo)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFileStore_RemoveAllForWatcher(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, _, err := s.AddWatcher(ctx, aliceUUID, "Alice", watcherOne)
	require.NoError(t, err)
	_, _, err = s.AddWatcher(ctx, bobUUID, "Bob", watcherOne)
	require.NoError(t, err)
	_, _, err = s.AddWatcher(ctx, bobUUID, "Bob", watcherTwo)
	require.NoError(t, err)

	removed, err := s.RemoveAllForWatcher(ctx, watcherOne)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	accounts, err := s.Accounts(ctx)
	require.NoError(t, err)
	// Alice lost its only watcher and is gone; Bob keeps watcherTwo
	assert.NotContains(t, accounts, aliceUUID)
	require.Contains(t, accounts, bobUUID)
	assert.Equal(t, []domain.Watcher{watcherTwo}, accounts[bobUUID].Watchers)

	removed, err = s.RemoveAllForWatcher(ctx, watcherOne)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestFileStore_LastLogin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// Unknown account reads as unset
	got, err := s.LastLogin(ctx, aliceUUID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Unknown account writes are a silent no-op
	ts := int64(1700000000000)
	require.NoError(t, s.SetLastLogin(ctx, aliceUUID, &ts))
	got, err = s.LastLogin(ctx, aliceUUID)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, _, err = s.AddWatcher(ctx, aliceUUID, "Alice", watcherOne)
	require.NoError(t, err)

	got, err = s.LastLogin(ctx, aliceUUID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.SetLastLogin(ctx, aliceUUID, &ts))
	got, err = s.LastLogin(ctx, aliceUUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ts, *got)
}

func TestFileStore_NameIndexRebind(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// "Alice" first points at one account, then the name is reused by
	// another. Last subscribe wins the mapping.
	_, _, err := s.AddWatcher(ctx, aliceUUID, "Alice", watcherOne)
	require.NoError(t, err)
	_, _, err = s.AddWatcher(ctx, bobUUID, "Alice", watcherTwo)
	require.NoError(t, err)

	uuid, found, err := s.UUIDByName(ctx, "Alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, bobUUID, uuid)
}

func TestFileStore_PersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking.json")
	ctx := context.Background()

	s, err := store.NewFileStore(path, adapter.NewJSON())
	require.NoError(t, err)

	_, _, err = s.AddWatcher(ctx, aliceUUID, "Alice", watcherOne)
	require.NoError(t, err)
	_, _, err = s.AddWatcher(ctx, aliceUUID, "Alice", watcherTwo)
	require.NoError(t, err)
	ts := int64(1700000000000)
	require.NoError(t, s.SetLastLogin(ctx, aliceUUID, &ts))

	// A fresh store over the same file sees identical state, watcher
	// order included.
	reopened, err := store.NewFileStore(path, adapter.NewJSON())
	require.NoError(t, err)

	accounts, err := reopened.Accounts(ctx)
	require.NoError(t, err)
	require.Contains(t, accounts, aliceUUID)
	acct := accounts[aliceUUID]
	assert.Equal(t, "Alice", acct.Name)
	require.NotNil(t, acct.LastLoginMS)
	assert.Equal(t, ts, *acct.LastLoginMS)
	assert.Equal(t, []domain.Watcher{watcherOne, watcherTwo}, acct.Watchers)

	uuid, found, err := reopened.UUIDByName(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, aliceUUID, uuid)
}

func TestFileStore_CorruptFileRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := store.NewFileStore(path, adapter.NewJSON())
	require.NoError(t, err)

	accounts, err := s.Accounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestFileStore_UnknownVersionRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"accounts":{},"name_index":{}}`), 0o600))

	s, err := store.NewFileStore(path, adapter.NewJSON())
	require.NoError(t, err)

	accounts, err := s.Accounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestFileStore_AccountsSnapshotIsDefensive(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, _, err := s.AddWatcher(ctx, aliceUUID, "Alice", watcherOne)
	require.NoError(t, err)

	snapshot, err := s.Accounts(ctx)
	require.NoError(t, err)
	snapshot[aliceUUID].Watchers[0] = watcherTwo
	delete(snapshot, aliceUUID)

	fresh, err := s.Accounts(ctx)
	require.NoError(t, err)
	require.Contains(t, fresh, aliceUUID)
	assert.Equal(t, []domain.Watcher{watcherOne}, fresh[aliceUUID].Watchers)
}
