package impl

import (
	"context"
	"log/slog"
	"time"

	"cliphub/config"
	deliverycontext "cliphub/internal/delivery/context"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	"cliphub/internal/domain/service"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// linkingService implements the LinkingUsecase interface.
type linkingService struct {
	cfg         *config.Config
	accountRepo repository.SocialAccountRepository
	registry    *service.ProviderRegistry
	flowStore   service.FlowStore
	logger      *slog.Logger
	now         func() time.Time
}

// NewLinkingService is the constructor for linkingService.
func NewLinkingService(
	cfg *config.Config,
	accountRepo repository.SocialAccountRepository,
	registry *service.ProviderRegistry,
	flowStore service.FlowStore,
	logger *slog.Logger,
) usecase.LinkingUsecase {
	return &linkingService{
		cfg:         cfg,
		accountRepo: accountRepo,
		registry:    registry,
		flowStore:   flowStore,
		logger:      logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *linkingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLink starts an authorization flow and parks its state in the flow store.
func (srv *linkingService) BeginLink(ctx context.Context, userID uuid.UUID, platform entity.Platform, returnTo string) (*usecase.BeginLinkResult, error) {
	adapter, err := srv.registry.Adapter(platform)
	if err != nil {
		return nil, domainerrors.ErrProviderNotConfigured.WrapMessage(platform.String() + " is not available for linking")
	}

	state, err := service.GenerateState()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate state")
	}

	var pkce *service.PKCEPair
	if adapter.UsesPKCE() {
		pkce, err = service.GeneratePKCE()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate pkce pair")
		}
	}

	flowKey, err := service.GenerateState()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate flow key")
	}

	flow := service.FlowState{
		UserID:    userID,
		Platform:  platform,
		State:     state,
		ReturnTo:  returnTo,
		CreatedAt: srv.now(),
	}
	if pkce != nil {
		flow.PKCEVerifier = pkce.Verifier
	}

	if err := srv.flowStore.Put(ctx, flowKey, flow, srv.cfg.OAuth.FlowTTL); err != nil {
		return nil, errors.Wrap(err, "failed to store flow state")
	}

	srv.log(ctx).Info("Started linking flow",
		slog.Any("user_id", userID),
		slog.String("platform", platform.String()),
	)

	return &usecase.BeginLinkResult{
		FlowKey:          flowKey,
		AuthorizationURL: adapter.AuthorizationURL(state, pkce),
	}, nil
}

// CompleteLink validates the callback against the pending flow and, only
// after every provider call has succeeded, writes the linked account.
// The flow state is consumed up front so a replayed callback always misses.
func (srv *linkingService) CompleteLink(ctx context.Context, flowKey string, cb usecase.CallbackInput) (*entity.SocialAccount, error) {
	flow, ok := srv.flowStore.Take(ctx, flowKey)

	if cb.ErrorCode != "" {
		return nil, domainerrors.ErrProviderRejected.WrapMessage("provider returned " + cb.ErrorCode + ": " + cb.ErrorDescription)
	}
	if !ok {
		return nil, domainerrors.ErrFlowValidation.WrapMessage("no pending flow for this callback")
	}
	if flow.State != cb.State {
		// Abort before any network call, nothing has been written.
		return nil, domainerrors.ErrStateMismatch.WrapMessage("callback state does not match the pending flow")
	}
	if cb.Code == "" {
		return nil, domainerrors.ErrFlowValidation.WrapMessage("callback carries no authorization code")
	}

	adapter, err := srv.registry.Adapter(flow.Platform)
	if err != nil {
		return nil, domainerrors.ErrProviderNotConfigured.WrapMessage(flow.Platform.String() + " is not available for linking")
	}
	if adapter.UsesPKCE() && flow.PKCEVerifier == "" {
		// An exchange without the verifier would be rejected anyway; abort
		// before the code is burned on a doomed call.
		return nil, domainerrors.ErrFlowValidation.WrapMessage("pending flow is missing its pkce verifier")
	}

	grant, err := adapter.ExchangeCode(ctx, cb.Code, flow.PKCEVerifier)
	if err != nil {
		return nil, err
	}

	info, err := adapter.FetchAccountInfo(ctx, grant.AccessToken)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	account := &entity.SocialAccount{
		UserID:            flow.UserID,
		Platform:          flow.Platform,
		ExternalAccountID: info.ExternalAccountID,
		Username:          info.Username,
		ProfileURL:        info.ProfileURL,
		FollowerCount:     info.FollowerCount,
		AccessToken:       grant.AccessToken,
		RefreshToken:      grant.RefreshToken,
		LastSync:          now,
		CreatedAt:         now,
	}
	if info.PageAccessToken != "" {
		// Instagram content APIs only accept the page token.
		account.AccessToken = info.PageAccessToken
	}
	if grant.ExpiresIn > 0 {
		expiry := now.Add(time.Duration(grant.ExpiresIn) * time.Second)
		account.TokenExpiry = &expiry
	}

	if err := srv.accountRepo.Upsert(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to store linked account")
	}

	srv.log(ctx).Info("Linked social account",
		slog.Any("user_id", flow.UserID),
		slog.String("platform", flow.Platform.String()),
		slog.String("external_account_id", info.ExternalAccountID),
	)

	return account, nil
}

// Disconnect revokes tokens best-effort and removes the linked accounts.
func (srv *linkingService) Disconnect(ctx context.Context, userID uuid.UUID, platform entity.Platform) error {
	account, err := srv.accountRepo.FindByUserAndPlatform(ctx, userID, platform)
	if err != nil {
		if errors.Is(err, repository.ErrSocialAccountNotFound) {
			// Already gone, disconnecting twice is fine.
			return nil
		}

		return errors.Wrap(err, "failed to load linked account")
	}

	if adapter, err := srv.registry.Adapter(platform); err == nil {
		if err := adapter.Revoke(ctx, account.AccessToken); err != nil {
			// The provider may be down or the token already dead. The user
			// asked to disconnect; the local delete happens regardless.
			srv.log(ctx).Warn("Token revoke failed, removing account anyway",
				slog.Any("user_id", userID),
				slog.String("platform", platform.String()),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.accountRepo.Delete(ctx, userID, platform); err != nil {
		return errors.Wrap(err, "failed to delete linked account")
	}

	srv.log(ctx).Info("Disconnected social account",
		slog.Any("user_id", userID),
		slog.String("platform", platform.String()),
	)

	return nil
}

// LinkedAccounts lists the user's linked accounts, newest first.
func (srv *linkingService) LinkedAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.SocialAccount, error) {
	accounts, err := srv.accountRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list linked accounts")
	}

	return accounts, nil
}
