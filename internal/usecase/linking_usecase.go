package usecase

import (
	"context"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// BeginLinkResult carries everything the delivery layer needs to send the
// browser to the provider's consent screen.
type BeginLinkResult struct {
	// FlowKey identifies the pending flow; it travels back in an HttpOnly cookie.
	FlowKey string
	// AuthorizationURL is where the browser is redirected.
	AuthorizationURL string
}

// CallbackInput is the provider's answer as it arrives on the callback URL.
type CallbackInput struct {
	Code             string
	State            string
	ErrorCode        string // provider's error= query param, empty on success
	ErrorDescription string
}

// LinkingUsecase drives the account linking flows end to end.
type LinkingUsecase interface {
	// BeginLink starts an authorization flow for the user on platform and
	// returns the consent URL plus the flow key for the callback cookie.
	BeginLink(ctx context.Context, userID uuid.UUID, platform entity.Platform, returnTo string) (*BeginLinkResult, error)

	// CompleteLink finishes the flow identified by flowKey with the provider's
	// callback values and returns the stored account record. The flow state is
	// consumed no matter how the call ends.
	CompleteLink(ctx context.Context, flowKey string, cb CallbackInput) (*entity.SocialAccount, error)

	// Disconnect revokes the platform tokens best-effort and removes the
	// user's linked accounts on platform. Revoke failures are logged and
	// swallowed; the local delete always runs.
	Disconnect(ctx context.Context, userID uuid.UUID, platform entity.Platform) error

	// LinkedAccounts lists the user's linked accounts, newest first.
	LinkedAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.SocialAccount, error)
}
