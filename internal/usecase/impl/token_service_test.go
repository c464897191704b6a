package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	"cliphub/internal/domain/service"
	mockRepo "cliphub/internal/mocks/repository"
	mockService "cliphub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tokenServiceFixtures holds all test dependencies for token service tests.
type tokenServiceFixtures struct {
	service     *tokenService
	accountRepo *mockRepo.MockSocialAccountRepository
	adapter     *mockService.MockProviderAdapter
	now         time.Time
}

func createTestTokenService(t *testing.T, platform entity.Platform) tokenServiceFixtures {
	accountRepo := mockRepo.NewMockSocialAccountRepository(t)
	adapter := mockService.NewMockProviderAdapter(t)
	adapter.EXPECT().Platform().Return(platform).Maybe()

	registry := service.NewProviderRegistry(adapter)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewTokenService(accountRepo, registry, logger).(*tokenService)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return tokenServiceFixtures{
		service:     svc,
		accountRepo: accountRepo,
		adapter:     adapter,
		now:         now,
	}
}

func TestTokenService_ValidAccessToken_NotLinked(t *testing.T) {
	fx := createTestTokenService(t, entity.PlatformYouTube)

	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.EXPECT().
		FindByUserAndPlatform(ctx, userID, entity.PlatformYouTube).
		Return(nil, repository.ErrSocialAccountNotFound)

	token, err := fx.service.ValidAccessToken(ctx, userID, entity.PlatformYouTube)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotLinked))
	assert.Empty(t, token)
}

func TestTokenService_ValidAccessToken_StillValid(t *testing.T) {
	fx := createTestTokenService(t, entity.PlatformYouTube)

	ctx := context.Background()
	userID := uuid.New()
	expiry := fx.now.Add(time.Hour)

	fx.accountRepo.EXPECT().
		FindByUserAndPlatform(ctx, userID, entity.PlatformYouTube).
		Return(&entity.SocialAccount{
			UserID:       userID,
			Platform:     entity.PlatformYouTube,
			AccessToken:  "AT1",
			RefreshToken: "RT1",
			TokenExpiry:  &expiry,
		}, nil)

	token, err := fx.service.ValidAccessToken(ctx, userID, entity.PlatformYouTube)
	require.NoError(t, err)
	assert.Equal(t, "AT1", token)
	// No refresh, no write: the adapter and repo mocks would fail the test on
	// any unexpected call.
}

func TestTokenService_ValidAccessToken_NonExpiringToken(t *testing.T) {
	fx := createTestTokenService(t, entity.PlatformInstagram)

	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.EXPECT().
		FindByUserAndPlatform(ctx, userID, entity.PlatformInstagram).
		Return(&entity.SocialAccount{
			UserID:      userID,
			Platform:    entity.PlatformInstagram,
			AccessToken: "PAGE_TOKEN",
			TokenExpiry: nil,
		}, nil)

	token, err := fx.service.ValidAccessToken(ctx, userID, entity.PlatformInstagram)
	require.NoError(t, err)
	assert.Equal(t, "PAGE_TOKEN", token)
}

func TestTokenService_ValidAccessToken_ExpiredWithoutRefreshToken(t *testing.T) {
	fx := createTestTokenService(t, entity.PlatformInstagram)

	ctx := context.Background()
	userID := uuid.New()
	expiry := fx.now.Add(-time.Hour)

	fx.accountRepo.EXPECT().
		FindByUserAndPlatform(ctx, userID, entity.PlatformInstagram).
		Return(&entity.SocialAccount{
			UserID:      userID,
			Platform:    entity.PlatformInstagram,
			AccessToken: "AT1",
			TokenExpiry: &expiry,
		}, nil)

	token, err := fx.service.ValidAccessToken(ctx, userID, entity.PlatformInstagram)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReconnectRequired))
	assert.Empty(t, token)
}

func TestTokenService_ValidAccessToken_RefreshRetainsStoredRefreshToken(t *testing.T) {
	fx := createTestTokenService(t, entity.PlatformYouTube)

	ctx := context.Background()
	userID := uuid.New()
	expiry := fx.now.Add(-time.Minute)

	fx.accountRepo.EXPECT().
		FindByUserAndPlatform(ctx, userID, entity.PlatformYouTube).
		Return(&entity.SocialAccount{
			UserID:       userID,
			Platform:     entity.PlatformYouTube,
			AccessToken:  "AT1",
			RefreshToken: "RT1",
			TokenExpiry:  &expiry,
		}, nil)

	// Google omits the refresh token from refresh responses.
	fx.adapter.EXPECT().
		Refresh(ctx, "RT1").
		Return(&service.TokenGrant{AccessToken: "AT2", ExpiresIn: 3600}, nil).
		Once()

	fx.accountRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.SocialAccount")).
		Run(func(ctx context.Context, account *entity.SocialAccount) {
			assert.Equal(t, "AT2", account.AccessToken)
			assert.Equal(t, "RT1", account.RefreshToken)
			require.NotNil(t, account.TokenExpiry)
			assert.Equal(t, fx.now.Add(3600*time.Second), *account.TokenExpiry)
			assert.Equal(t, fx.now, account.LastSync)
		}).
		Return(nil)

	token, err := fx.service.ValidAccessToken(ctx, userID, entity.PlatformYouTube)
	require.NoError(t, err)
	assert.Equal(t, "AT2", token)
}

func TestTokenService_ValidAccessToken_RefreshRotatesBothTokens(t *testing.T) {
	fx := createTestTokenService(t, entity.PlatformTikTok)

	ctx := context.Background()
	userID := uuid.New()
	expiry := fx.now.Add(-time.Minute)

	fx.accountRepo.EXPECT().
		FindByUserAndPlatform(ctx, userID, entity.PlatformTikTok).
		Return(&entity.SocialAccount{
			UserID:       userID,
			Platform:     entity.PlatformTikTok,
			AccessToken:  "AT1",
			RefreshToken: "RT1",
			TokenExpiry:  &expiry,
		}, nil)

	fx.adapter.EXPECT().
		Refresh(ctx, "RT1").
		Return(&service.TokenGrant{AccessToken: "AT2", RefreshToken: "RT2", ExpiresIn: 86400}, nil).
		Once()

	fx.accountRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.SocialAccount")).
		Run(func(ctx context.Context, account *entity.SocialAccount) {
			assert.Equal(t, "AT2", account.AccessToken)
			assert.Equal(t, "RT2", account.RefreshToken)
		}).
		Return(nil)

	token, err := fx.service.ValidAccessToken(ctx, userID, entity.PlatformTikTok)
	require.NoError(t, err)
	assert.Equal(t, "AT2", token)
}

func TestTokenService_ValidAccessToken_RefreshRejected(t *testing.T) {
	fx := createTestTokenService(t, entity.PlatformTwitter)

	ctx := context.Background()
	userID := uuid.New()
	expiry := fx.now.Add(-time.Minute)

	fx.accountRepo.EXPECT().
		FindByUserAndPlatform(ctx, userID, entity.PlatformTwitter).
		Return(&entity.SocialAccount{
			UserID:       userID,
			Platform:     entity.PlatformTwitter,
			AccessToken:  "AT1",
			RefreshToken: "RT1",
			TokenExpiry:  &expiry,
		}, nil)

	// Exactly one attempt, no retry, nothing written.
	fx.adapter.EXPECT().
		Refresh(ctx, "RT1").
		Return(nil, domainerrors.ErrRefresh.WrapMessage("twitter token refresh failed: invalid_grant")).
		Once()

	token, err := fx.service.ValidAccessToken(ctx, userID, entity.PlatformTwitter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReconnectRequired))
	assert.Empty(t, token)
}
