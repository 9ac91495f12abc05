// Package schema defines the versioned on-disk layout of the tracking file.
package schema

import "github.com/mcwatch/mcwatch/internal/domain"

// DocumentVersion is the current tracking file schema version. Bump it when
// the layout changes so load-time parsing can evolve without breaking.
const DocumentVersion = 1

// Document is the full persisted dataset: the account map plus the
// lower-cased name index. The whole document is rewritten on every mutation.
type Document struct {
	Version   int                `json:"version"`
	Accounts  map[string]Account `json:"accounts"`
	NameIndex map[string]string  `json:"name_index"`
}

// Account is one tracked account record.
type Account struct {
	Name        string           `json:"name"`
	LastLoginMS *int64           `json:"last_login_ms"`
	Watchers    []domain.Watcher `json:"watchers"`
}

// NewDocument returns an empty dataset at the current schema version.
func NewDocument() Document {
	return Document{
		Version:   DocumentVersion,
		Accounts:  make(map[string]Account),
		NameIndex: make(map[string]string),
	}
}
