package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cliphub/config"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	"cliphub/internal/domain/service"
	mockRepo "cliphub/internal/mocks/repository"
	mockService "cliphub/internal/mocks/service"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// linkingServiceFixtures holds all test dependencies for linking service tests.
type linkingServiceFixtures struct {
	service     *linkingService
	accountRepo *mockRepo.MockSocialAccountRepository
	adapter     *mockService.MockProviderAdapter
	flowStore   *mockService.MockFlowStore
	now         time.Time
}

func createTestLinkingService(t *testing.T, platform entity.Platform) linkingServiceFixtures {
	accountRepo := mockRepo.NewMockSocialAccountRepository(t)
	adapter := mockService.NewMockProviderAdapter(t)
	adapter.EXPECT().Platform().Return(platform).Maybe()

	flowStore := mockService.NewMockFlowStore(t)
	registry := service.NewProviderRegistry(adapter)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{OAuth: config.OAuthConfig{FlowTTL: 10 * time.Minute}}

	svc := NewLinkingService(cfg, accountRepo, registry, flowStore, logger).(*linkingService)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return linkingServiceFixtures{
		service:     svc,
		accountRepo: accountRepo,
		adapter:     adapter,
		flowStore:   flowStore,
		now:         now,
	}
}

func TestLinkingService_BeginLink_WithPKCE(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformYouTube)

	ctx := context.Background()
	userID := uuid.New()

	fx.adapter.EXPECT().UsesPKCE().Return(true)
	fx.adapter.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string"), mock.AnythingOfType("*service.PKCEPair")).
		Return("https://accounts.example.com/authorize?state=s")

	var stored service.FlowState
	fx.flowStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("service.FlowState"), 10*time.Minute).
		Run(func(ctx context.Context, key string, state service.FlowState, ttl time.Duration) {
			stored = state
		}).
		Return(nil)

	result, err := fx.service.BeginLink(ctx, userID, entity.PlatformYouTube, "/dashboard")
	require.NoError(t, err)
	assert.NotEmpty(t, result.FlowKey)
	assert.Equal(t, "https://accounts.example.com/authorize?state=s", result.AuthorizationURL)

	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, entity.PlatformYouTube, stored.Platform)
	assert.NotEmpty(t, stored.State)
	assert.NotEmpty(t, stored.PKCEVerifier)
	assert.Equal(t, "/dashboard", stored.ReturnTo)
}

func TestLinkingService_BeginLink_WithoutPKCE(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformTikTok)

	ctx := context.Background()
	userID := uuid.New()

	fx.adapter.EXPECT().UsesPKCE().Return(false)
	fx.adapter.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string"), (*service.PKCEPair)(nil)).
		Return("https://www.tiktok.com/v2/auth/authorize/?state=s")

	var stored service.FlowState
	fx.flowStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("service.FlowState"), 10*time.Minute).
		Run(func(ctx context.Context, key string, state service.FlowState, ttl time.Duration) {
			stored = state
		}).
		Return(nil)

	_, err := fx.service.BeginLink(ctx, userID, entity.PlatformTikTok, "/")
	require.NoError(t, err)
	assert.Empty(t, stored.PKCEVerifier)
}

func TestLinkingService_BeginLink_UnconfiguredPlatform(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformYouTube)

	_, err := fx.service.BeginLink(context.Background(), uuid.New(), entity.PlatformTwitter, "/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderNotConfigured))
}

func TestLinkingService_CompleteLink_Success(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformYouTube)

	ctx := context.Background()
	userID := uuid.New()
	flow := &service.FlowState{
		UserID:       userID,
		Platform:     entity.PlatformYouTube,
		State:        "state-xyz",
		PKCEVerifier: "verifier-1",
		ReturnTo:     "/dashboard",
		CreatedAt:    fx.now.Add(-time.Minute),
	}

	fx.flowStore.EXPECT().Take(ctx, "flow-key-1").Return(flow, true)
	fx.adapter.EXPECT().UsesPKCE().Return(true)

	fx.adapter.EXPECT().
		ExchangeCode(ctx, "abc123", "verifier-1").
		Return(&service.TokenGrant{AccessToken: "AT1", RefreshToken: "RT1", ExpiresIn: 3600}, nil).
		Once()

	fx.adapter.EXPECT().
		FetchAccountInfo(ctx, "AT1").
		Return(&service.AccountInfo{
			ExternalAccountID: "chan42",
			Username:          "Creator",
			ProfileURL:        "https://www.youtube.com/channel/chan42",
			FollowerCount:     1200,
		}, nil).
		Once()

	fx.accountRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.SocialAccount")).
		Run(func(ctx context.Context, account *entity.SocialAccount) {
			assert.Equal(t, userID, account.UserID)
			assert.Equal(t, entity.PlatformYouTube, account.Platform)
			assert.Equal(t, "chan42", account.ExternalAccountID)
			assert.Equal(t, "AT1", account.AccessToken)
			assert.Equal(t, "RT1", account.RefreshToken)
			require.NotNil(t, account.TokenExpiry)
			assert.Equal(t, fx.now.Add(3600*time.Second), *account.TokenExpiry)
		}).
		Return(nil)

	account, err := fx.service.CompleteLink(ctx, "flow-key-1", usecase.CallbackInput{
		Code:  "abc123",
		State: "state-xyz",
	})
	require.NoError(t, err)
	assert.Equal(t, "chan42", account.ExternalAccountID)
	assert.Equal(t, int64(1200), account.FollowerCount)
}

func TestLinkingService_CompleteLink_PageTokenBecomesCredential(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformInstagram)

	ctx := context.Background()
	flow := &service.FlowState{
		UserID:   uuid.New(),
		Platform: entity.PlatformInstagram,
		State:    "state-ig",
	}

	fx.flowStore.EXPECT().Take(ctx, "flow-key-ig").Return(flow, true)
	fx.adapter.EXPECT().UsesPKCE().Return(false)

	fx.adapter.EXPECT().
		ExchangeCode(ctx, "code-ig", "").
		Return(&service.TokenGrant{AccessToken: "USER_TOKEN", ExpiresIn: 5184000}, nil)

	fx.adapter.EXPECT().
		FetchAccountInfo(ctx, "USER_TOKEN").
		Return(&service.AccountInfo{
			ExternalAccountID: "ig9",
			Username:          "brand",
			ProfileURL:        "https://www.instagram.com/brand",
			PageAccessToken:   "PAGE_TOKEN",
		}, nil)

	fx.accountRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.SocialAccount")).
		Run(func(ctx context.Context, account *entity.SocialAccount) {
			assert.Equal(t, "PAGE_TOKEN", account.AccessToken)
			assert.Empty(t, account.RefreshToken)
		}).
		Return(nil)

	_, err := fx.service.CompleteLink(ctx, "flow-key-ig", usecase.CallbackInput{
		Code:  "code-ig",
		State: "state-ig",
	})
	require.NoError(t, err)
}

func TestLinkingService_CompleteLink_StateMismatch(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformYouTube)

	ctx := context.Background()
	flow := &service.FlowState{
		UserID:   uuid.New(),
		Platform: entity.PlatformYouTube,
		State:    "state-xyz",
	}

	fx.flowStore.EXPECT().Take(ctx, "flow-key-1").Return(flow, true)

	_, err := fx.service.CompleteLink(ctx, "flow-key-1", usecase.CallbackInput{
		Code:  "abc123",
		State: "state-forged",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStateMismatch))
	// The adapter and repo mocks verify no exchange and no write happened.
}

func TestLinkingService_CompleteLink_MissingPKCEVerifier(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformYouTube)

	ctx := context.Background()
	flow := &service.FlowState{
		UserID:   uuid.New(),
		Platform: entity.PlatformYouTube,
		State:    "state-xyz",
		// No PKCEVerifier even though the platform requires one.
	}

	fx.flowStore.EXPECT().Take(ctx, "flow-key-1").Return(flow, true)
	fx.adapter.EXPECT().UsesPKCE().Return(true)

	_, err := fx.service.CompleteLink(ctx, "flow-key-1", usecase.CallbackInput{
		Code:  "abc123",
		State: "state-xyz",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFlowValidation))
	// The adapter and repo mocks verify the code was never exchanged and
	// nothing was written.
}

func TestLinkingService_CompleteLink_ProviderDeclined(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformYouTube)

	ctx := context.Background()

	// The flow is consumed even when the provider reports an error.
	fx.flowStore.EXPECT().Take(ctx, "flow-key-1").Return(nil, false)

	_, err := fx.service.CompleteLink(ctx, "flow-key-1", usecase.CallbackInput{
		ErrorCode:        "access_denied",
		ErrorDescription: "user declined",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderRejected))
}

func TestLinkingService_CompleteLink_UnknownFlow(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformYouTube)

	ctx := context.Background()
	fx.flowStore.EXPECT().Take(ctx, "stale-key").Return(nil, false)

	_, err := fx.service.CompleteLink(ctx, "stale-key", usecase.CallbackInput{
		Code:  "abc123",
		State: "state-xyz",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFlowValidation))
}

func TestLinkingService_Disconnect_RevokeFailureStillDeletes(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformFacebook)

	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.EXPECT().
		FindByUserAndPlatform(ctx, userID, entity.PlatformFacebook).
		Return(&entity.SocialAccount{
			UserID:      userID,
			Platform:    entity.PlatformFacebook,
			AccessToken: "AT1",
		}, nil)

	fx.adapter.EXPECT().
		Revoke(ctx, "AT1").
		Return(domainerrors.ErrRevoke.WrapMessage("provider is down")).
		Once()

	fx.accountRepo.EXPECT().
		Delete(ctx, userID, entity.PlatformFacebook).
		Return(nil)

	err := fx.service.Disconnect(ctx, userID, entity.PlatformFacebook)
	require.NoError(t, err)
}

func TestLinkingService_Disconnect_NotLinked(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformYouTube)

	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.EXPECT().
		FindByUserAndPlatform(ctx, userID, entity.PlatformYouTube).
		Return(nil, repository.ErrSocialAccountNotFound)

	err := fx.service.Disconnect(ctx, userID, entity.PlatformYouTube)
	require.NoError(t, err)
}

func TestLinkingService_LinkedAccounts(t *testing.T) {
	fx := createTestLinkingService(t, entity.PlatformYouTube)

	ctx := context.Background()
	userID := uuid.New()
	accounts := []*entity.SocialAccount{
		{UserID: userID, Platform: entity.PlatformYouTube, ExternalAccountID: "chan42"},
		{UserID: userID, Platform: entity.PlatformTikTok, ExternalAccountID: "open7"},
	}

	fx.accountRepo.EXPECT().ListByUserID(ctx, userID).Return(accounts, nil)

	got, err := fx.service.LinkedAccounts(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
