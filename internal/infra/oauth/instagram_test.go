package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "cliphub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInstagramAdapter(t *testing.T) *InstagramAdapter {
	cfg := testConfig()
	adapter, err := NewInstagramAdapter(cfg, NewHTTPClient(cfg))
	require.NoError(t, err)

	return adapter
}

func TestInstagramExchangeCodeUpgradesToLongLived(t *testing.T) {
	adapter := newTestInstagramAdapter(t)

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, r.ParseForm())

		w.Header().Set("Content-Type", "application/json")
		if r.PostForm.Get("grant_type") == "fb_exchange_token" {
			assert.Equal(t, "SHORT_TOKEN", r.PostForm.Get("fb_exchange_token"))
			w.Write([]byte(`{"access_token":"LONG_TOKEN","expires_in":5184000}`))
			return
		}

		assert.Equal(t, "abc123", r.PostForm.Get("code"))
		w.Write([]byte(`{"access_token":"SHORT_TOKEN","expires_in":3600}`))
	}))
	defer server.Close()
	adapter.graphURL = server.URL

	grant, err := adapter.ExchangeCode(context.Background(), "abc123", "")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "LONG_TOKEN", grant.AccessToken)
	assert.Empty(t, grant.RefreshToken, "facebook issues no refresh token")
}

func TestInstagramFetchAccountInfoWalksPageChain(t *testing.T) {
	adapter := newTestInstagramAdapter(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasPrefix(r.URL.Path, "/me/accounts"):
			assert.Equal(t, "USER_TOKEN", r.URL.Query().Get("access_token"))
			w.Write([]byte(`{"data":[{"id":"page1","name":"Brand Page","access_token":"PAGE_TOKEN"}]}`))
		case r.URL.Path == "/page1":
			assert.Equal(t, "PAGE_TOKEN", r.URL.Query().Get("access_token"))
			w.Write([]byte(`{"instagram_business_account":{"id":"ig9"}}`))
		case r.URL.Path == "/ig9":
			assert.Equal(t, "PAGE_TOKEN", r.URL.Query().Get("access_token"))
			w.Write([]byte(`{"id":"ig9","username":"brand","followers_count":31000}`))
		default:
			t.Fatalf("unexpected request path %s", r.URL.Path)
		}
	}))
	defer server.Close()
	adapter.graphURL = server.URL

	info, err := adapter.FetchAccountInfo(context.Background(), "USER_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "ig9", info.ExternalAccountID)
	assert.Equal(t, "brand", info.Username)
	assert.Equal(t, "https://www.instagram.com/brand", info.ProfileURL)
	assert.Equal(t, int64(31000), info.FollowerCount)
	assert.Equal(t, "PAGE_TOKEN", info.PageAccessToken)
}

func TestInstagramFetchAccountInfoNoPages(t *testing.T) {
	adapter := newTestInstagramAdapter(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()
	adapter.graphURL = server.URL

	_, err := adapter.FetchAccountInfo(context.Background(), "USER_TOKEN")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChainIncomplete))
}

func TestInstagramFetchAccountInfoNoBusinessAccount(t *testing.T) {
	adapter := newTestInstagramAdapter(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if strings.HasPrefix(r.URL.Path, "/me/accounts") {
			w.Write([]byte(`{"data":[{"id":"page1","name":"Brand Page","access_token":"PAGE_TOKEN"}]}`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	adapter.graphURL = server.URL

	_, err := adapter.FetchAccountInfo(context.Background(), "USER_TOKEN")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChainIncomplete))
}

func TestInstagramRefreshAlwaysFails(t *testing.T) {
	adapter := newTestInstagramAdapter(t)

	_, err := adapter.Refresh(context.Background(), "anything")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefresh))
}

func TestInstagramRevokeIsNoOp(t *testing.T) {
	adapter := newTestInstagramAdapter(t)

	assert.NoError(t, adapter.Revoke(context.Background(), "anything"))
}
