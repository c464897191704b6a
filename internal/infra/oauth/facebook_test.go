package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "cliphub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFacebookAdapter(t *testing.T) *FacebookAdapter {
	cfg := testConfig()
	adapter, err := NewFacebookAdapter(cfg, NewHTTPClient(cfg))
	require.NoError(t, err)

	return adapter
}

func TestFacebookFetchAccountInfo(t *testing.T) {
	adapter := newTestFacebookAdapter(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "USER_TOKEN", r.URL.Query().Get("access_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"fb1","name":"Brand","link":"https://www.facebook.com/brand"}`))
	}))
	defer server.Close()
	adapter.graphURL = server.URL

	info, err := adapter.FetchAccountInfo(context.Background(), "USER_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "fb1", info.ExternalAccountID)
	assert.Equal(t, "Brand", info.Username)
	assert.Equal(t, "https://www.facebook.com/brand", info.ProfileURL)
}

func TestFacebookFamilySemantics(t *testing.T) {
	adapter := newTestFacebookAdapter(t)

	assert.False(t, adapter.UsesPKCE())

	_, err := adapter.Refresh(context.Background(), "anything")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefresh))

	assert.NoError(t, adapter.Revoke(context.Background(), "anything"))
}
