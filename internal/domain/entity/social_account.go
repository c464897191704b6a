package entity

import (
	"time"

	"github.com/google/uuid"
)

// SocialAccount represents one linked external account on a social platform.
// A user typically holds one per platform, occasionally several.
// Uniqueness is enforced on (Platform, ExternalAccountID): re-linking the
// same external account updates the existing record instead of duplicating it.
type SocialAccount struct {
	ID                uuid.UUID  // The unique ID for this linked-account record itself.
	UserID            uuid.UUID  // Links this external account to the application user who owns it.
	Platform          Platform   // Which social platform the account lives on.
	ExternalAccountID string     // The platform-native account identifier (channel id, open_id, ...).
	Username          string     // Display handle, refreshed on every successful sync.
	ProfileURL        string     // Link to the public profile, refreshed on every successful sync.
	FollowerCount     int64      // Denormalized follower/subscriber count for dashboards.
	AccessToken       string     // Short-lived bearer credential. Never logged.
	RefreshToken      string     // Optional long-lived credential; empty means the account cannot be silently refreshed.
	TokenExpiry       *time.Time // When AccessToken expires; nil means the provider issues non-expiring tokens.
	LastSync          time.Time  // Timestamp of the last successful token validation or data pull.
	CreatedAt         time.Time  // Timestamp of when the account was first linked.
}

// TokenExpired reports whether the stored access token is known to be stale.
// A nil expiry means the token is assumed non-expiring.
func (a *SocialAccount) TokenExpired(now time.Time) bool {
	return a.TokenExpiry != nil && a.TokenExpiry.Before(now)
}

// Refreshable reports whether a silent refresh can even be attempted.
func (a *SocialAccount) Refreshable() bool {
	return a.RefreshToken != ""
}
