package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	mockUsecase "cliphub/internal/mocks/usecase"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type connectHandlerFixtures struct {
	handler *ConnectHandler
	uc      *mockUsecase.MockLinkingUsecase
	echo    *echo.Echo
}

func createTestConnectHandler(t *testing.T) connectHandlerFixtures {
	uc := mockUsecase.NewMockLinkingUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return connectHandlerFixtures{
		handler: NewConnectHandler(uc, logger),
		uc:      uc,
		echo:    echo.New(),
	}
}

func TestConnectHandler_Connect_ReturnsOAuthURL(t *testing.T) {
	fx := createTestConnectHandler(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/connect/youtube?return_to=/dashboard", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("platform")
	c.SetParamValues("youtube")
	c.Set("userID", userID)

	fx.uc.EXPECT().
		BeginLink(mock.Anything, userID, entity.PlatformYouTube, "/dashboard").
		Return(&usecase.BeginLinkResult{
			FlowKey:          "flow-key-1",
			AuthorizationURL: "https://accounts.example.com/authorize",
		}, nil)

	require.NoError(t, fx.handler.Connect(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://accounts.example.com/authorize")

	cookies := rec.Result().Cookies()
	var flowCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == flowCookieName {
			flowCookie = cookie
		}
	}
	require.NotNil(t, flowCookie, "flow cookie must be set")
	assert.Equal(t, "flow-key-1", flowCookie.Value)
	assert.True(t, flowCookie.HttpOnly)
}

func TestConnectHandler_Connect_RedirectMode(t *testing.T) {
	fx := createTestConnectHandler(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/connect/youtube?redirect=true", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("platform")
	c.SetParamValues("youtube")
	c.Set("userID", userID)

	fx.uc.EXPECT().
		BeginLink(mock.Anything, userID, entity.PlatformYouTube, "/").
		Return(&usecase.BeginLinkResult{
			FlowKey:          "flow-key-1",
			AuthorizationURL: "https://accounts.example.com/authorize",
		}, nil)

	require.NoError(t, fx.handler.Connect(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://accounts.example.com/authorize", rec.Header().Get(echo.HeaderLocation))
}

func TestConnectHandler_Connect_UnknownPlatform(t *testing.T) {
	fx := createTestConnectHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/connect/myspace", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("platform")
	c.SetParamValues("myspace")
	c.Set("userID", uuid.New())

	require.NoError(t, fx.handler.Connect(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_PLATFORM")
}

func TestConnectHandler_Callback_Success(t *testing.T) {
	fx := createTestConnectHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/connect/youtube/callback?code=abc123&state=state-xyz", nil)
	req.AddCookie(&http.Cookie{Name: flowCookieName, Value: "flow-key-1"})
	req.AddCookie(&http.Cookie{Name: returnCookieName, Value: "/dashboard"})
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("platform")
	c.SetParamValues("youtube")

	fx.uc.EXPECT().
		CompleteLink(mock.Anything, "flow-key-1", usecase.CallbackInput{
			Code:  "abc123",
			State: "state-xyz",
		}).
		Return(&entity.SocialAccount{
			Platform:          entity.PlatformYouTube,
			ExternalAccountID: "chan42",
		}, nil)

	require.NoError(t, fx.handler.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard?linked=youtube", rec.Header().Get(echo.HeaderLocation))

	// The flow cookie is gone regardless of outcome.
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == flowCookieName {
			assert.Equal(t, -1, cookie.MaxAge)
		}
	}
}

func TestConnectHandler_Callback_StateMismatchRedirectsWithError(t *testing.T) {
	fx := createTestConnectHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/connect/youtube/callback?code=abc123&state=forged", nil)
	req.AddCookie(&http.Cookie{Name: flowCookieName, Value: "flow-key-1"})
	req.AddCookie(&http.Cookie{Name: returnCookieName, Value: "/dashboard"})
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("platform")
	c.SetParamValues("youtube")

	fx.uc.EXPECT().
		CompleteLink(mock.Anything, "flow-key-1", mock.AnythingOfType("usecase.CallbackInput")).
		Return(nil, domainerrors.ErrStateMismatch.WrapMessage("callback state does not match"))

	require.NoError(t, fx.handler.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard?link_error=STATE_MISMATCH", rec.Header().Get(echo.HeaderLocation))
}

func TestConnectHandler_Disconnect(t *testing.T) {
	fx := createTestConnectHandler(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/connect/facebook", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("platform")
	c.SetParamValues("facebook")
	c.Set("userID", userID)

	fx.uc.EXPECT().
		Disconnect(mock.Anything, userID, entity.PlatformFacebook).
		Return(nil)

	require.NoError(t, fx.handler.Disconnect(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConnectHandler_List_NeverExposesTokens(t *testing.T) {
	fx := createTestConnectHandler(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/connect", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.Set("userID", userID)

	fx.uc.EXPECT().
		LinkedAccounts(mock.Anything, userID).
		Return([]*entity.SocialAccount{
			{
				Platform:          entity.PlatformYouTube,
				ExternalAccountID: "chan42",
				Username:          "Creator",
				AccessToken:       "SECRET_AT",
				RefreshToken:      "SECRET_RT",
			},
		}, nil)

	require.NoError(t, fx.handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chan42")
	assert.NotContains(t, rec.Body.String(), "SECRET_AT")
	assert.NotContains(t, rec.Body.String(), "SECRET_RT")
}
