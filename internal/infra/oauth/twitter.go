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
	twitterAuthURL   = "https://twitter.com/i/oauth2/authorize"
	twitterTokenURL  = "https://api.twitter.com/2/oauth2/token"
	twitterRevokeURL = "https://api.twitter.com/2/oauth2/revoke"
	twitterMeURL     = "https://api.twitter.com/2/users/me"

	defaultTwitterScopes = "tweet.read users.read offline.access"
)

// TwitterAdapter links Twitter/X accounts. Twitter's OAuth2 endpoints
// authenticate the application with HTTP Basic auth (client_id:client_secret)
// on exchange, refresh AND revoke, not with body credentials.
type TwitterAdapter struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	httpClient   *http.Client

	authURL   string
	tokenURL  string
	revokeURL string
	meURL     string
}

// NewTwitterAdapter validates the platform credentials and builds the adapter.
func NewTwitterAdapter(cfg *config.Config, httpClient *http.Client) (*TwitterAdapter, error) {
	provider := cfg.OAuth.Twitter
	if err := provider.Validate(entity.PlatformTwitter.String()); err != nil {
		return nil, domainerrors.ErrProviderNotConfigured.WrapMessage(err.Error())
	}

	scopes := provider.Scopes
	if scopes == "" {
		scopes = defaultTwitterScopes
	}

	return &TwitterAdapter{
		clientID:     provider.ClientID,
		clientSecret: provider.ClientSecret,
		redirectURI:  provider.RedirectURI,
		scopes:       scopes,
		httpClient:   httpClient,
		authURL:      twitterAuthURL,
		tokenURL:     twitterTokenURL,
		revokeURL:    twitterRevokeURL,
		meURL:        twitterMeURL,
	}, nil
}

// Platform returns the platform this adapter speaks for.
func (a *TwitterAdapter) Platform() entity.Platform {
	return entity.PlatformTwitter
}

// UsesPKCE reports that Twitter requires PKCE on authorization requests.
func (a *TwitterAdapter) UsesPKCE() bool {
	return true
}

// AuthorizationURL builds the Twitter consent URL with the S256 challenge embedded.
func (a *TwitterAdapter) AuthorizationURL(state string, pkce *service.PKCEPair) string {
	params := url.Values{}
	params.Set("client_id", a.clientID)
	params.Set("redirect_uri", a.redirectURI)
	params.Set("scope", a.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)
	if pkce != nil {
		params.Set("code_challenge", pkce.Challenge)
		params.Set("code_challenge_method", "S256")
	}

	return a.authURL + "?" + params.Encode()
}

// ExchangeCode trades the single-use authorization code for tokens.
func (a *TwitterAdapter) ExchangeCode(ctx context.Context, code, pkceVerifier string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", a.redirectURI)
	form.Set("code_verifier", pkceVerifier)
	form.Set("client_id", a.clientID)

	grant, err := a.postToken(ctx, form)
	if err != nil {
		return nil, domainerrors.ErrTokenExchange.WrapMessage("twitter code exchange failed: " + err.Error())
	}

	return grant, nil
}

// FetchAccountInfo loads the authenticated user with follower metrics.
func (a *TwitterAdapter) FetchAccountInfo(ctx context.Context, accessToken string) (*service.AccountInfo, error) {
	var payload struct {
		Data struct {
			ID            string `json:"id"`
			Name          string `json:"name"`
			Username      string `json:"username"`
			PublicMetrics struct {
				FollowersCount int64 `json:"followers_count"`
			} `json:"public_metrics"`
		} `json:"data"`
	}

	meURL := a.meURL + "?user.fields=public_metrics"
	if err := getJSON(ctx, a.httpClient, meURL, accessToken, &payload); err != nil {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("twitter profile fetch failed: " + err.Error())
	}
	if payload.Data.ID == "" {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("twitter profile response missing id")
	}

	return &service.AccountInfo{
		ExternalAccountID: payload.Data.ID,
		Username:          payload.Data.Username,
		ProfileURL:        "https://twitter.com/" + payload.Data.Username,
		FollowerCount:     payload.Data.PublicMetrics.FollowersCount,
	}, nil
}

// Refresh obtains a fresh token pair using Basic authentication.
func (a *TwitterAdapter) Refresh(ctx context.Context, refreshToken string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", a.clientID)

	grant, err := a.postToken(ctx, form)
	if err != nil {
		return nil, domainerrors.ErrRefresh.WrapMessage("twitter token refresh failed: " + err.Error())
	}

	return grant, nil
}

// Revoke invalidates the token at Twitter using Basic authentication.
func (a *TwitterAdapter) Revoke(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("token", token)
	form.Set("token_type_hint", "access_token")

	header := basicAuthHeader(a.clientID, a.clientSecret)
	if err := postForm(ctx, a.httpClient, a.revokeURL, form, header, nil); err != nil {
		return domainerrors.ErrRevoke.WrapMessage("twitter token revoke failed: " + err.Error())
	}

	return nil
}

func (a *TwitterAdapter) postToken(ctx context.Context, form url.Values) (*service.TokenGrant, error) {
	var payload struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int64  `json:"expires_in"`
	}

	header := basicAuthHeader(a.clientID, a.clientSecret)
	if err := postForm(ctx, a.httpClient, a.tokenURL, form, header, &payload); err != nil {
		return nil, err
	}
	if payload.AccessToken == "" {
		return nil, errors.New("twitter token response missing access_token")
	}

	return &service.TokenGrant{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		ExpiresIn:    payload.ExpiresIn,
	}, nil
}
