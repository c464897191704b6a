package service

import (
	"context"
	"time"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// FlowState is the transient state of one in-progress authorization flow:
// the CSRF state value, the PKCE verifier where the platform uses one, and
// the application user the flow was started for. It lives in a short-lived
// side channel and is consumed exactly once at callback time.
type FlowState struct {
	UserID       uuid.UUID
	Platform     entity.Platform
	State        string
	PKCEVerifier string // empty for providers without PKCE
	ReturnTo     string // where the browser goes after the flow finishes
	CreatedAt    time.Time
}

// FlowStore is the consume-once TTL side channel for pending flows.
// The linking core depends only on Put/Take, not on any particular transport;
// the flow key itself travels in an HttpOnly cookie.
type FlowStore interface {
	// Put stores the flow state under key for at most ttl.
	Put(ctx context.Context, key string, state FlowState, ttl time.Duration) error

	// Take returns and removes the flow state for key. A second Take for the
	// same key, or a Take after expiry, reports ok=false. Removal happens
	// regardless of whether the caller's flow later succeeds.
	Take(ctx context.Context, key string) (state *FlowState, ok bool)
}
