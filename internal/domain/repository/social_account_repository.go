// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSocialAccountNotFound is returned when no linked account matches a lookup.
var ErrSocialAccountNotFound = errors.New("social account not found")

// SocialAccountRepository defines the standard operations for linked-account persistence.
// Freshness matters more than latency here: every operation hits the store
// directly, there is no caching layer in front of it.
type SocialAccountRepository interface {
	// Upsert inserts the record or, when (platform, externalAccountId) already
	// exists, overwrites tokens, expiry and display metadata in a single atomic
	// statement. LastSync is bumped on every call.
	Upsert(ctx context.Context, account *entity.SocialAccount) error

	// FindByUserAndPlatform returns the user's linked account on a platform.
	// When several accounts exist for the same platform, the most recently
	// synced one is returned; callers that need a specific account use
	// FindByUserPlatformAccount.
	FindByUserAndPlatform(ctx context.Context, userID uuid.UUID, platform entity.Platform) (*entity.SocialAccount, error)

	// FindByUserPlatformAccount returns one specific linked account.
	FindByUserPlatformAccount(ctx context.Context, userID uuid.UUID, platform entity.Platform, externalAccountID string) (*entity.SocialAccount, error)

	// ListByUserID returns every linked account the user has, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SocialAccount, error)

	// Delete removes all of the user's linked accounts on a platform.
	// Deleting an absent record is not an error.
	Delete(ctx context.Context, userID uuid.UUID, platform entity.Platform) error
}
