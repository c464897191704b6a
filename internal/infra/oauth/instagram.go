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

const (
	facebookAuthURL  = "https://www.facebook.com/v19.0/dialog/oauth"
	facebookGraphURL = "https://graph.facebook.com/v19.0"

	defaultInstagramScopes = "pages_show_list,instagram_basic,business_management"
)

// InstagramAdapter links Instagram business accounts through Facebook login.
// Instagram content is only reachable through a four-hop chain: user token →
// Facebook Page → Page access token → Instagram business account id →
// Instagram user fields. The Page access token is the credential that gets
// stored. A missing Page or missing business account is a configuration
// problem on the user's side, not a transient API failure.
type InstagramAdapter struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	httpClient   *http.Client

	authURL  string
	graphURL string
}

// NewInstagramAdapter validates the platform credentials and builds the adapter.
func NewInstagramAdapter(cfg *config.Config, httpClient *http.Client) (*InstagramAdapter, error) {
	provider := cfg.OAuth.Instagram
	if err := provider.Validate(entity.PlatformInstagram.String()); err != nil {
		return nil, domainerrors.ErrProviderNotConfigured.WrapMessage(err.Error())
	}

	scopes := provider.Scopes
	if scopes == "" {
		scopes = defaultInstagramScopes
	}

	return &InstagramAdapter{
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
func (a *InstagramAdapter) Platform() entity.Platform {
	return entity.PlatformInstagram
}

// UsesPKCE reports that Facebook login does not use PKCE.
func (a *InstagramAdapter) UsesPKCE() bool {
	return false
}

// AuthorizationURL builds the Facebook login dialog URL.
func (a *InstagramAdapter) AuthorizationURL(state string, _ *service.PKCEPair) string {
	params := url.Values{}
	params.Set("client_id", a.clientID)
	params.Set("redirect_uri", a.redirectURI)
	params.Set("scope", a.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return a.authURL + "?" + params.Encode()
}

// ExchangeCode trades the code for a user token, then upgrades it to a
// long-lived one so the page chain stays usable for weeks, not hours.
func (a *InstagramAdapter) ExchangeCode(ctx context.Context, code, _ string) (*service.TokenGrant, error) {
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
		return nil, domainerrors.ErrTokenExchange.WrapMessage("instagram code exchange failed: " + err.Error())
	}
	if shortLived.AccessToken == "" {
		return nil, domainerrors.ErrTokenExchange.WrapMessage("instagram exchange response missing access_token")
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
		return nil, domainerrors.ErrTokenExchange.WrapMessage("instagram long-lived token exchange failed: " + err.Error())
	}
	if longLived.AccessToken == "" {
		return nil, domainerrors.ErrTokenExchange.WrapMessage("instagram long-lived response missing access_token")
	}

	// Facebook issues no refresh token; a stale token means reconnect.
	return &service.TokenGrant{
		AccessToken: longLived.AccessToken,
		ExpiresIn:   longLived.ExpiresIn,
	}, nil
}

// FetchAccountInfo walks the page chain and normalizes the Instagram profile.
func (a *InstagramAdapter) FetchAccountInfo(ctx context.Context, accessToken string) (*service.AccountInfo, error) {
	var pages struct {
		Data []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	pagesURL := a.graphURL + "/me/accounts?fields=id,name,access_token&access_token=" + url.QueryEscape(accessToken)
	if err := getJSON(ctx, a.httpClient, pagesURL, "", &pages); err != nil {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("instagram pages fetch failed: " + err.Error())
	}
	if len(pages.Data) == 0 {
		return nil, domainerrors.ErrChainIncomplete.WrapMessage("no facebook page linked to this account")
	}

	page := pages.Data[0]
	if page.AccessToken == "" {
		return nil, domainerrors.ErrChainIncomplete.WrapMessage("facebook page has no page access token")
	}

	var pageInfo struct {
		InstagramBusinessAccount *struct {
			ID string `json:"id"`
		} `json:"instagram_business_account"`
	}
	pageURL := a.graphURL + "/" + page.ID + "?fields=instagram_business_account&access_token=" + url.QueryEscape(page.AccessToken)
	if err := getJSON(ctx, a.httpClient, pageURL, "", &pageInfo); err != nil {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("instagram business account lookup failed: " + err.Error())
	}
	if pageInfo.InstagramBusinessAccount == nil || pageInfo.InstagramBusinessAccount.ID == "" {
		return nil, domainerrors.ErrChainIncomplete.WrapMessage("no instagram business account linked to page " + page.ID)
	}

	igUserID := pageInfo.InstagramBusinessAccount.ID

	var igUser struct {
		ID             string `json:"id"`
		Username       string `json:"username"`
		FollowersCount int64  `json:"followers_count"`
	}
	igURL := a.graphURL + "/" + igUserID + "?fields=id,username,followers_count&access_token=" + url.QueryEscape(page.AccessToken)
	if err := getJSON(ctx, a.httpClient, igURL, "", &igUser); err != nil {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("instagram profile fetch failed: " + err.Error())
	}

	return &service.AccountInfo{
		ExternalAccountID: igUserID,
		Username:          igUser.Username,
		ProfileURL:        "https://www.instagram.com/" + igUser.Username,
		FollowerCount:     igUser.FollowersCount,
		// Content APIs only accept the page token, so it becomes the stored credential.
		PageAccessToken: page.AccessToken,
	}, nil
}

// Refresh always fails: the Facebook family has no refresh grant. Long-lived
// tokens run out after ~60 days and the user has to reconnect.
func (a *InstagramAdapter) Refresh(_ context.Context, _ string) (*service.TokenGrant, error) {
	return nil, domainerrors.ErrRefresh.WrapMessage("instagram tokens cannot be refreshed, reconnect required")
}

// Revoke is a no-op: the Facebook family exposes no token revoke endpoint.
func (a *InstagramAdapter) Revoke(_ context.Context, _ string) error {
	return nil
}
