package oauth

import (
	"context"
	"net/http"
	"net/url"

	"cliphub/config"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/service"
)

const defaultFacebookScopes = "public_profile,pages_show_list"

// FacebookAdapter links plain Facebook profiles (advertiser brand identities).
// It shares the Facebook-family quirks with the Instagram adapter: no PKCE,
// no refresh grant and no revoke endpoint.
type FacebookAdapter struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	httpClient   *http.Client

	authURL  string
	graphURL string
}

// NewFacebookAdapter validates the platform credentials and builds the adapter.
func NewFacebookAdapter(cfg *config.Config, httpClient *http.Client) (*FacebookAdapter, error) {
	provider := cfg.OAuth.Facebook
	if err := provider.Validate(entity.PlatformFacebook.String()); err != nil {
		return nil, domainerrors.ErrProviderNotConfigured.WrapMessage(err.Error())
	}

	scopes := provider.Scopes
	if scopes == "" {
		scopes = defaultFacebookScopes
	}

	return &FacebookAdapter{
		clientID:     provider.ClientID,
		clientSecret: provider.ClientSecret,
		redirectURI:  provider.RedirectURI,
		scopes:       scopes,
		httpClient:   httpClient,
		authURL:      facebookAuthURL,
		graphURL:     facebookGraphURL,
	}, nil
}

// Platform returns the platform this adapter speaks for.
func (a *FacebookAdapter) Platform() entity.Platform {
	return entity.PlatformFacebook
}

// UsesPKCE reports that Facebook login does not use PKCE.
func (a *FacebookAdapter) UsesPKCE() bool {
	return false
}

// AuthorizationURL builds the Facebook login dialog URL.
func (a *FacebookAdapter) AuthorizationURL(state string, _ *service.PKCEPair) string {
	params := url.Values{}
	params.Set("client_id", a.clientID)
	params.Set("redirect_uri", a.redirectURI)
	params.Set("scope", a.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return a.authURL + "?" + params.Encode()
}

// ExchangeCode trades the code for a long-lived user token.
func (a *FacebookAdapter) ExchangeCode(ctx context.Context, code, _ string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("client_id", a.clientID)
	form.Set("client_secret", a.clientSecret)
	form.Set("redirect_uri", a.redirectURI)
	form.Set("code", code)

	var shortLived struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := postForm(ctx, a.httpClient, a.graphURL+"/oauth/access_token", form, nil, &shortLived); err != nil {
		return nil, domainerrors.ErrTokenExchange.WrapMessage("facebook code exchange failed: " + err.Error())
	}
	if shortLived.AccessToken == "" {
		return nil, domainerrors.ErrTokenExchange.WrapMessage("facebook exchange response missing access_token")
	}

	exchangeForm := url.Values{}
	exchangeForm.Set("grant_type", "fb_exchange_token")
	exchangeForm.Set("client_id", a.clientID)
	exchangeForm.Set("client_secret", a.clientSecret)
	exchangeForm.Set("fb_exchange_token", shortLived.AccessToken)

	var longLived struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := postForm(ctx, a.httpClient, a.graphURL+"/oauth/access_token", exchangeForm, nil, &longLived); err != nil {
		return nil, domainerrors.ErrTokenExchange.WrapMessage("facebook long-lived token exchange failed: " + err.Error())
	}
	if longLived.AccessToken == "" {
		return nil, domainerrors.ErrTokenExchange.WrapMessage("facebook long-lived response missing access_token")
	}

	return &service.TokenGrant{
		AccessToken: longLived.AccessToken,
		ExpiresIn:   longLived.ExpiresIn,
	}, nil
}

// FetchAccountInfo loads the user's own profile.
func (a *FacebookAdapter) FetchAccountInfo(ctx context.Context, accessToken string) (*service.AccountInfo, error) {
	var me struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Link string `json:"link"`
	}
	meURL := a.graphURL + "/me?fields=id,name,link&access_token=" + url.QueryEscape(accessToken)
	if err := getJSON(ctx, a.httpClient, meURL, "", &me); err != nil {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("facebook profile fetch failed: " + err.Error())
	}
	if me.ID == "" {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("facebook profile response missing id")
	}

	profileURL := me.Link
	if profileURL == "" {
		profileURL = "https://www.facebook.com/" + me.ID
	}

	return &service.AccountInfo{
		ExternalAccountID: me.ID,
		Username:          me.Name,
		ProfileURL:        profileURL,
	}, nil
}

// Refresh always fails: the Facebook family has no refresh grant.
func (a *FacebookAdapter) Refresh(_ context.Context, _ string) (*service.TokenGrant, error) {
	return nil, domainerrors.ErrRefresh.WrapMessage("facebook tokens cannot be refreshed, reconnect required")
}

// Revoke is a no-op: the Facebook family exposes no token revoke endpoint.
func (a *FacebookAdapter) Revoke(_ context.Context, _ string) error {
	return nil
}
