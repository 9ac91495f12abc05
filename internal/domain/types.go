package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PlayerUUID is the canonical Minecraft account identifier: 32 lowercase
// hex characters, no dashes. In-game names are mutable; the UUID is not.
type PlayerUUID string

// ParsePlayerUUID canonicalizes a Mojang UUID string. Both the dashed
// (36 char) and bare (32 hex) forms are accepted.
func ParsePlayerUUID(s string) (PlayerUUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid player UUID %q: %w", s, err)
	}
	return PlayerUUID(strings.ReplaceAll(u.String(), "-", "")), nil
}

// Watcher identifies one tracking subscription: the Discord channel the
// notification is delivered to and the user who asked for it.
type Watcher struct {
	GuildID   int64 `json:"guild_id"`
	ChannelID int64 `json:"channel_id"`
	UserID    int64 `json:"user_id"`
}

// TrackedAccount is a watched Minecraft account. An account exists only
// while it has at least one watcher.
type TrackedAccount struct {
	// Name is the last-known in-game name, overwritten with the casing
	// supplied on the most recent track request.
	Name string

	// LastLoginMS is the last observed Hypixel login timestamp in epoch
	// milliseconds. Nil means the account has not been baselined yet.
	LastLoginMS *int64

	// Watchers in subscription order.
	Watchers []Watcher
}

// Notification tells one watcher that an account's last login changed.
type Notification struct {
	EventID     string     `json:"event_id"`
	GuildID     int64      `json:"guild_id"`
	ChannelID   int64      `json:"channel_id"`
	UserID      int64      `json:"user_id"`
	Name        string     `json:"name"`
	UUID        PlayerUUID `json:"uuid"`
	LastLoginMS int64      `json:"last_login_ms"`
}
