package service

import (
	"context"

	"cliphub/internal/domain/entity"
)

// TokenGrant is the normalized result of a code exchange or a refresh.
// Providers differ in what they return: some omit the refresh token on
// refresh (YouTube), some rotate it every time (TikTok). The orchestrator
// owns the retention rules; adapters report exactly what the provider sent.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string // empty when the provider did not send one
	ExpiresIn    int64  // seconds; 0 means the provider issues non-expiring tokens
}

// AccountInfo is the normalized profile shape every adapter produces from
// its provider-specific field names.
type AccountInfo struct {
	ExternalAccountID string
	Username          string
	ProfileURL        string
	FollowerCount     int64

	// PageAccessToken, when set, replaces the user token as the stored
	// credential. Instagram content is only reachable through a Facebook Page
	// access token, so its adapter surfaces the page token here.
	PageAccessToken string
}

// PKCEPair holds one flow's RFC 7636 verifier/challenge pair.
// The challenge goes into the authorization URL, the verifier into the
// token exchange. Providers that don't support PKCE ignore both.
type PKCEPair struct {
	Verifier  string
	Challenge string
}

// ProviderAdapter is the common OAuth contract one platform implements.
// Adapters never retry: authorization codes are single-use, and the decision
// to re-run a failed flow belongs to the user, not this layer.
type ProviderAdapter interface {
	// Platform returns the platform this adapter speaks for.
	Platform() entity.Platform

	// UsesPKCE reports whether authorization requests must carry a PKCE challenge.
	UsesPKCE() bool

	// AuthorizationURL builds the provider consent-page URL for one flow.
	// pkce is nil for providers that don't use it.
	AuthorizationURL(state string, pkce *PKCEPair) string

	// ExchangeCode trades a single-use authorization code for tokens.
	ExchangeCode(ctx context.Context, code, pkceVerifier string) (*TokenGrant, error)

	// FetchAccountInfo loads the linked account's profile with a Bearer token.
	FetchAccountInfo(ctx context.Context, accessToken string) (*AccountInfo, error)

	// Refresh obtains a new access token from a refresh token. A failure here
	// means the refresh token itself is dead and the user must reconnect.
	Refresh(ctx context.Context, refreshToken string) (*TokenGrant, error)

	// Revoke invalidates a token at the provider, best-effort. Platforms
	// without a revoke endpoint return nil without a network call.
	Revoke(ctx context.Context, token string) error
}
