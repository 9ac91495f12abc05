// Package store persists tracking subscriptions. The full dataset lives in
// one JSON document that is rewritten to a temporary file and atomically
// renamed over the canonical path on every mutation, so readers never see a
// partial write even across a crash. All operations are serialized through
// one mutex; the store assumes single-process ownership of its file.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mcwatch/mcwatch/internal/adapter"
	"github.com/mcwatch/mcwatch/internal/domain"
	"github.com/mcwatch/mcwatch/internal/logger"
	"github.com/mcwatch/mcwatch/internal/store/schema"
)

// Store defines the persistent tracking state operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// AddWatcher registers a watcher on an account, creating the account if
	// absent. The account's name (and its index entry) is refreshed with the
	// supplied casing even when the watcher tuple already exists. Returns
	// whether the watcher was newly added and the resulting watcher count.
	AddWatcher(ctx context.Context, uuid domain.PlayerUUID, name string, w domain.Watcher) (added bool, count int, err error)

	// RemoveWatcher removes the exact watcher tuple. When the last watcher
	// goes, the account and every name-index entry pointing at it are
	// deleted together. Returns false if the account or tuple is unknown.
	RemoveWatcher(ctx context.Context, uuid domain.PlayerUUID, w domain.Watcher) (removed bool, err error)

	// RemoveAllForWatcher removes every subscription held by the watcher
	// tuple across all accounts and returns how many were removed.
	RemoveAllForWatcher(ctx context.Context, w domain.Watcher) (int, error)

	// SetLastLogin records the observed login timestamp. Unknown accounts
	// are a silent no-op.
	SetLastLogin(ctx context.Context, uuid domain.PlayerUUID, lastLoginMS *int64) error

	// LastLogin returns the stored timestamp, nil when unset or unknown.
	LastLogin(ctx context.Context, uuid domain.PlayerUUID) (*int64, error)

	// Accounts returns a defensive snapshot of every tracked account.
	Accounts(ctx context.Context) (map[domain.PlayerUUID]domain.TrackedAccount, error)

	// UUIDByName resolves a case-insensitive name-index lookup.
	UUIDByName(ctx context.Context, name string) (domain.PlayerUUID, bool, error)
}

// fileStore implements Store on top of a single JSON tracking file
type fileStore struct {
	path string
	json adapter.JSON

	mu  sync.Mutex
	doc schema.Document
}

// NewFileStore loads the tracking file at path, creating it when absent.
// A corrupt or unreadable file is logged and replaced by an empty dataset
// rather than failing startup.
func NewFileStore(path string, jsonAdapter adapter.JSON) (Store, error) {
	s := &fileStore{
		path: path,
		json: jsonAdapter,
		doc:  schema.NewDocument(),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	data, err := os.ReadFile(path) //nolint:gosec,G304
	switch {
	case os.IsNotExist(err):
		if err := s.saveLocked(); err != nil {
			return nil, err
		}
	case err != nil:
		logger.Warn("failed to read tracking file, starting with empty dataset",
			zap.Error(err), zap.String("path", path))
	default:
		var doc schema.Document
		if err := jsonAdapter.Unmarshal(data, &doc); err != nil || doc.Version != schema.DocumentVersion {
			logger.Warn("tracking file is corrupt or has an unknown version, starting with empty dataset",
				zap.Error(err), zap.String("path", path), zap.Int("version", doc.Version))
		} else {
			if doc.Accounts == nil {
				doc.Accounts = make(map[string]schema.Account)
			}
			if doc.NameIndex == nil {
				doc.NameIndex = make(map[string]string)
			}
			s.doc = doc
		}
	}

	return s, nil
}

// saveLocked writes the full dataset to a temporary file and renames it over
// the canonical path. Caller must hold the mutex.
func (s *fileStore) saveLocked() error {
	data, err := s.json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tracking data: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write tracking file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace tracking file: %w", err)
	}

	return nil
}

func (s *fileStore) AddWatcher(_ context.Context, uuid domain.PlayerUUID, name string, w domain.Watcher) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Last subscribe wins the name mapping, even when the name previously
	// pointed at a different account.
	s.doc.NameIndex[strings.ToLower(name)] = string(uuid)

	acct, ok := s.doc.Accounts[string(uuid)]
	if !ok {
		acct = schema.Account{Name: name}
	} else {
		// Keep the latest supplied casing
		acct.Name = name
	}

	added := true
	for _, existing := range acct.Watchers {
		if existing == w {
			added = false
			break
		}
	}
	if added {
		acct.Watchers = append(acct.Watchers, w)
	}
	s.doc.Accounts[string(uuid)] = acct

	if err := s.saveLocked(); err != nil {
		return false, 0, err
	}
	return added, len(acct.Watchers), nil
}

func (s *fileStore) RemoveWatcher(_ context.Context, uuid domain.PlayerUUID, w domain.Watcher) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.doc.Accounts[string(uuid)]
	if !ok {
		return false, nil
	}

	kept := acct.Watchers[:0:0]
	for _, existing := range acct.Watchers {
		if existing != w {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(acct.Watchers) {
		return false, nil
	}

	if len(kept) == 0 {
		s.deleteAccountLocked(uuid)
	} else {
		acct.Watchers = kept
		s.doc.Accounts[string(uuid)] = acct
	}

	if err := s.saveLocked(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *fileStore) RemoveAllForWatcher(_ context.Context, w domain.Watcher) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalRemoved := 0
	var emptied []domain.PlayerUUID
	for uuid, acct := range s.doc.Accounts {
		kept := acct.Watchers[:0:0]
		for _, existing := range acct.Watchers {
			if existing != w {
				kept = append(kept, existing)
			}
		}
		removedHere := len(acct.Watchers) - len(kept)
		if removedHere == 0 {
			continue
		}
		totalRemoved += removedHere
		if len(kept) == 0 {
			emptied = append(emptied, domain.PlayerUUID(uuid))
		} else {
			acct.Watchers = kept
			s.doc.Accounts[uuid] = acct
		}
	}

	for _, uuid := range emptied {
		s.deleteAccountLocked(uuid)
	}

	if totalRemoved == 0 {
		return 0, nil
	}
	if err := s.saveLocked(); err != nil {
		return 0, err
	}
	return totalRemoved, nil
}

// deleteAccountLocked removes an account together with every name-index
// entry that points at it. Caller must hold the mutex.
func (s *fileStore) deleteAccountLocked(uuid domain.PlayerUUID) {
	delete(s.doc.Accounts, string(uuid))
	for name, mapped := range s.doc.NameIndex {
		if mapped == string(uuid) {
			delete(s.doc.NameIndex, name)
		}
	}
}

func (s *fileStore) SetLastLogin(_ context.Context, uuid domain.PlayerUUID, lastLoginMS *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.doc.Accounts[string(uuid)]
	if !ok {
		return nil
	}

	if lastLoginMS != nil {
		v := *lastLoginMS
		acct.LastLoginMS = &v
	} else {
		acct.LastLoginMS = nil
	}
	s.doc.Accounts[string(uuid)] = acct

	return s.saveLocked()
}

func (s *fileStore) LastLogin(_ context.Context, uuid domain.PlayerUUID) (*int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.doc.Accounts[string(uuid)]
	if !ok || acct.LastLoginMS == nil {
		return nil, nil
	}
	v := *acct.LastLoginMS
	return &v, nil
}

func (s *fileStore) Accounts(_ context.Context) (map[domain.PlayerUUID]domain.TrackedAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[domain.PlayerUUID]domain.TrackedAccount, len(s.doc.Accounts))
	for uuid, acct := range s.doc.Accounts {
		out := domain.TrackedAccount{
			Name:     acct.Name,
			Watchers: append([]domain.Watcher(nil), acct.Watchers...),
		}
		if acct.LastLoginMS != nil {
			v := *acct.LastLoginMS
			out.LastLoginMS = &v
		}
		snapshot[domain.PlayerUUID(uuid)] = out
	}
	return snapshot, nil
}

func (s *fileStore) UUIDByName(_ context.Context, name string) (domain.PlayerUUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uuid, ok := s.doc.NameIndex[strings.ToLower(name)]
	if !ok {
		return "", false, nil
	}
	return domain.PlayerUUID(uuid), true, nil
}
