// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cliphub/internal/delivery/context"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	"cliphub/internal/domain/service"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tokenService implements the TokenUsecase interface. It owns the token
// lifecycle state machine: a stored token is either valid, expired but
// refreshable, or expired for good. Refresh is attempted at most once per
// call and racing refreshes resolve last-write-wins through the upsert.
type tokenService struct {
	accountRepo repository.SocialAccountRepository
	registry    *service.ProviderRegistry
	logger      *slog.Logger
	now         func() time.Time
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(
	accountRepo repository.SocialAccountRepository,
	registry *service.ProviderRegistry,
	logger *slog.Logger,
) usecase.TokenUsecase {
	return &tokenService{
		accountRepo: accountRepo,
		registry:    registry,
		logger:      logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ValidAccessToken returns a token that is valid at the time of the call.
func (srv *tokenService) ValidAccessToken(ctx context.Context, userID uuid.UUID, platform entity.Platform) (string, error) {
	account, err := srv.accountRepo.FindByUserAndPlatform(ctx, userID, platform)
	if err != nil {
		if errors.Is(err, repository.ErrSocialAccountNotFound) {
			return "", domainerrors.ErrAccountNotLinked.WrapMessage("no " + platform.String() + " account linked")
		}

		return "", errors.Wrap(err, "failed to load linked account")
	}

	now := srv.now()
	if !account.TokenExpired(now) {
		return account.AccessToken, nil
	}

	if !account.Refreshable() {
		return "", domainerrors.ErrReconnectRequired.WrapMessage(platform.String() + " token expired and no refresh token is on file")
	}

	adapter, err := srv.registry.Adapter(platform)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve provider adapter")
	}

	srv.log(ctx).Info("Refreshing expired access token",
		slog.Any("user_id", userID),
		slog.String("platform", platform.String()),
	)

	grant, err := adapter.Refresh(ctx, account.RefreshToken)
	if err != nil {
		// One attempt only. A rejected refresh token will not start working
		// on a retry; the user has to reconnect.
		srv.log(ctx).Warn("Token refresh rejected by provider",
			slog.Any("user_id", userID),
			slog.String("platform", platform.String()),
		)

		return "", domainerrors.ErrReconnectRequired.WrapMessage(platform.String() + " refresh failed: " + err.Error())
	}

	account.AccessToken = grant.AccessToken
	if grant.RefreshToken != "" {
		// TikTok rotates both tokens; the old refresh token is already dead.
		account.RefreshToken = grant.RefreshToken
	}
	if grant.ExpiresIn > 0 {
		expiry := now.Add(time.Duration(grant.ExpiresIn) * time.Second)
		account.TokenExpiry = &expiry
	} else {
		account.TokenExpiry = nil
	}
	account.LastSync = now

	if err := srv.accountRepo.Upsert(ctx, account); err != nil {
		return "", errors.Wrap(err, "failed to persist refreshed tokens")
	}

	return account.AccessToken, nil
}
