package oauth

import (
	"context"
	"net/http"
	"net/url"

	"cliphub/config"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	googleTokenURL  = "https://oauth2.googleapis.com/token"
	googleRevokeURL = "https://oauth2.googleapis.com/revoke"

	defaultYouTubeScopes = "https://www.googleapis.com/auth/youtube.readonly"
)

// YouTubeAdapter links YouTube channels through Google's OAuth endpoints.
// Google supports PKCE and, unlike TikTok, never returns a new refresh token
// on refresh; the stored one stays authoritative for the account's lifetime.
type YouTubeAdapter struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client

	tokenURL  string
	revokeURL string
}

// NewYouTubeAdapter validates the platform credentials and builds the adapter.
func NewYouTubeAdapter(cfg *config.Config, httpClient *http.Client) (*YouTubeAdapter, error) {
	provider := cfg.OAuth.YouTube
	if err := provider.Validate(entity.PlatformYouTube.String()); err != nil {
		return nil, domainerrors.ErrProviderNotConfigured.WrapMessage(err.Error())
	}

	scopes := provider.Scopes
	if scopes == "" {
		scopes = defaultYouTubeScopes
	}

	return &YouTubeAdapter{
		oauthConfig: &oauth2.Config{
			ClientID:     provider.ClientID,
			ClientSecret: provider.ClientSecret,
			RedirectURL:  provider.RedirectURI,
			Endpoint:     google.Endpoint,
			Scopes:       []string{scopes},
		},
		httpClient: httpClient,
		tokenURL:   googleTokenURL,
		revokeURL:  googleRevokeURL,
	}, nil
}

// Platform returns the platform this adapter speaks for.
func (a *YouTubeAdapter) Platform() entity.Platform {
	return entity.PlatformYouTube
}

// UsesPKCE reports that Google authorization requests carry a PKCE challenge.
func (a *YouTubeAdapter) UsesPKCE() bool {
	return true
}

// AuthorizationURL builds the Google consent URL with offline access (so a
// refresh token is issued) and the S256 challenge embedded.
func (a *YouTubeAdapter) AuthorizationURL(state string, pkce *service.PKCEPair) string {
	opts := []oauth2.AuthCodeOption{
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	}
	if pkce != nil {
		opts = append(opts,
			oauth2.SetAuthURLParam("code_challenge", pkce.Challenge),
			oauth2.SetAuthURLParam("code_challenge_method", "S256"),
		)
	}

	return a.oauthConfig.AuthCodeURL(state, opts...)
}

// ExchangeCode trades the single-use authorization code for tokens.
func (a *YouTubeAdapter) ExchangeCode(ctx context.Context, code, pkceVerifier string) (*service.TokenGrant, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)

	token, err := a.oauthConfig.Exchange(ctx, code,
		oauth2.SetAuthURLParam("code_verifier", pkceVerifier),
	)
	if err != nil {
		return nil, domainerrors.ErrTokenExchange.WrapMessage("youtube code exchange failed: " + err.Error())
	}

	return &service.TokenGrant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    token.ExpiresIn,
	}, nil
}

// FetchAccountInfo loads the user's own channel via the YouTube Data API.
func (a *YouTubeAdapter) FetchAccountInfo(ctx context.Context, accessToken string) (*service.AccountInfo, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})

	svc, err := youtube.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("youtube service init failed: " + err.Error())
	}

	resp, err := svc.Channels.List([]string{"id", "snippet", "statistics"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("youtube channel fetch failed: " + err.Error())
	}
	if len(resp.Items) == 0 {
		return nil, domainerrors.ErrProfileFetch.WrapMessage("no youtube channel on this google account")
	}

	channel := resp.Items[0]
	info := &service.AccountInfo{
		ExternalAccountID: channel.Id,
		ProfileURL:        "https://www.youtube.com/channel/" + channel.Id,
	}
	if channel.Snippet != nil {
		info.Username = channel.Snippet.Title
		if channel.Snippet.CustomUrl != "" {
			info.ProfileURL = "https://www.youtube.com/" + channel.Snippet.CustomUrl
		}
	}
	if channel.Statistics != nil {
		info.FollowerCount = int64(channel.Statistics.SubscriberCount)
	}

	return info, nil
}

// Refresh obtains a new access token. Google omits the refresh token from
// refresh responses; the grant reports exactly that and the orchestrator
// keeps the original.
func (a *YouTubeAdapter) Refresh(ctx context.Context, refreshToken string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("client_id", a.oauthConfig.ClientID)
	form.Set("client_secret", a.oauthConfig.ClientSecret)
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := postForm(ctx, a.httpClient, a.tokenURL, form, nil, &payload); err != nil {
		return nil, domainerrors.ErrRefresh.WrapMessage("youtube token refresh failed: " + err.Error())
	}
	if payload.AccessToken == "" {
		return nil, domainerrors.ErrRefresh.WrapMessage("youtube refresh response missing access_token")
	}

	return &service.TokenGrant{
		AccessToken: payload.AccessToken,
		ExpiresIn:   payload.ExpiresIn,
	}, nil
}

// Revoke invalidates the token at Google.
func (a *YouTubeAdapter) Revoke(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("token", token)

	if err := postForm(ctx, a.httpClient, a.revokeURL, form, nil, nil); err != nil {
		return domainerrors.ErrRevoke.WrapMessage("youtube token revoke failed: " + err.Error())
	}

	return nil
}
