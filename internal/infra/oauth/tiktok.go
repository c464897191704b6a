package oauth

import (
	"context"
	"net/http"
	"net/url"

	"cliphub/config"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	tiktokAuthURL     = "https://www.tiktok.com/v2/auth/authorize/"
	tiktokTokenURL    = "https://open.tiktokapis.com/v2/oauth/token/"
	tiktokRevokeURL   = "https://open.tiktokapis.com/v2/oauth/revoke/"
	tiktokUserInfoURL = "https://open.tiktokapis.com/v2/user/info/"

	defaultTikTokScopes = "user.info.basic,user.info.stats"
)

// TikTokAdapter links TikTok creator accounts. TikTok calls the client id a
// "client_key" and rotates BOTH tokens on every refresh; persisting only the
// access token would strand the account after the first refresh.
type TikTokAdapter struct {
	clientKey    string
	clientSecret string
	redirectURI  string
	scopes       string
	httpClient   *http.Client

	authURL     string
	tokenURL    string
	revokeURL   string
	userInfoURL string
}

// NewTikTokAdapter validates the platform credentials and builds the adapter.
func NewTikTokAdapter(cfg *config.Config, httpClient *http.Client) (*TikTokAdapter, error) {
	provider := cfg.OAuth.TikTok
	if err := provider.Validate(entity.PlatformTikTok.String()); err != nil {
		return nil, domainerrors.ErrProviderNotConfigured.WrapMessage(err.Error())
	}

	scopes := provider.Scopes
	if scopes == "" {
		scopes = defaultTikTokScopes
	}

	return &TikTokAdapter{
		clientKey:    provider.ClientID,
		clientSecret: provider.ClientSecret,
		redirectURI:  provider.RedirectURI,
		scopes:       scopes,
		httpClient:   httpClient,
		authURL:      tiktokAuthURL,
		tokenURL:     tiktokTokenURL,
		revokeURL:    tiktokRevokeURL,
		userInfoURL:  tiktokUserInfoURL,
	}, nil
}

// Platform returns the platform this adapter speaks for.
func (a *TikTokAdapter) Platform() entity.Platform {
	return entity.PlatformTikTok
}

// UsesPKCE reports that TikTok's web flow does not use PKCE.
func (a *TikTokAdapter) UsesPKCE() bool {
	return false
}

// AuthorizationURL builds the TikTok consent URL.
func (a *TikTokAdapter) AuthorizationURL(state string, _ *service.PKCEPair) string {
	params := url.Values{}
	params.Set("client_key", a.clientKey)
	params.Set("redirect_uri", a.redirectURI)
	params.Set("scope", a.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return a.authURL + "?" + params.Encode()
}

// ExchangeCode trades the single-use authorization code for tokens.
func (a *TikTokAdapter) ExchangeCode(ctx context.Context, code, _ string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("client_key", a.clientKey)
	form.Set("client_secret", a.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", a.redirectURI)

	payload, err := a.postToken(ctx, form)
	if err != nil {
		return nil, domainerrors.ErrTokenExchange.WrapMessage("tiktok code exchange failed: " + err.Error())
	}

	return payload, nil
}

// FetchAccountInfo loads the creator profile.
func (a *TikTokAdapter) FetchAccountInfo(ctx context.Context, accessToken string) (*service.AccountInfo, error) {
	var payload struct {
		Data struct {
			User struct {
				OpenID          string `json:"open_id"`
				DisplayName     string `json:"display_name"`
				ProfileDeepLink string `json:"profile_deep_link"`
				FollowerCount   int64  `json:"follower_count"`
			} `json:"user"`
		} `json:"data"`
	}

	infoURL := a.userInfoURL + "?fields=open_id,display_name,profile_deep_link,follower_count"
	if err := getJSON(ctx, a.httpClient, infoURL, accessToken, &payload); err != nil {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("tiktok profile fetch failed: " + err.Error())
	}
	if payload.Data.User.OpenID == "" {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("tiktok profile response missing open_id")
	}

	return &service.AccountInfo{
		ExternalAccountID: payload.Data.User.OpenID,
		Username:          payload.Data.User.DisplayName,
		ProfileURL:        payload.Data.User.ProfileDeepLink,
		FollowerCount:     payload.Data.User.FollowerCount,
	}, nil
}

// Refresh rotates the token pair. Both returned tokens must be persisted;
// the old refresh token is dead the moment this call succeeds.
func (a *TikTokAdapter) Refresh(ctx context.Context, refreshToken string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("client_key", a.clientKey)
	form.Set("client_secret", a.clientSecret)
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	payload, err := a.postToken(ctx, form)
	if err != nil {
		return nil, domainerrors.ErrRefresh.WrapMessage("tiktok token refresh failed: " + err.Error())
	}

	return payload, nil
}

// Revoke invalidates the access token at TikTok.
func (a *TikTokAdapter) Revoke(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("client_key", a.clientKey)
	form.Set("client_secret", a.clientSecret)
	form.Set("token", token)

	if err := postForm(ctx, a.httpClient, a.revokeURL, form, nil, nil); err != nil {
		return domainerrors.ErrRevoke.WrapMessage("tiktok token revoke failed: " + err.Error())
	}

	return nil
}

func (a *TikTokAdapter) postToken(ctx context.Context, form url.Values) (*service.TokenGrant, error) {
	var payload struct {
		AccessToken      string `json:"access_token"`
		RefreshToken     string `json:"refresh_token"`
		ExpiresIn        int64  `json:"expires_in"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := postForm(ctx, a.httpClient, a.tokenURL, form, nil, &payload); err != nil {
		return nil, err
	}
	// TikTok reports some failures inside a 200 body.
	if payload.Error != "" {
		return nil, errors.Errorf("tiktok token endpoint error %s: %s", payload.Error, payload.ErrorDescription)
	}
	if payload.AccessToken == "" {
		return nil, errors.New("tiktok token response missing access_token")
	}

	return &service.TokenGrant{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		ExpiresIn:    payload.ExpiresIn,
	}, nil
}
