// Package oauth contains the provider adapters for external social platforms.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cliphub/config"

	"github.com/pkg/errors"
)

// Provider error bodies are small JSON payloads; anything larger is garbage.
const maxResponseBytes = 1 << 20

// NewHTTPClient builds the shared outbound client for provider APIs.
// Provider APIs have no SLA, so every call is bounded by the configured timeout.
func NewHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.OAuth.ProviderTimeout}
}

// postForm issues an application/x-www-form-urlencoded POST and decodes the
// JSON response into out. extraHeader carries provider quirks such as
// Twitter's Basic authentication. A timeout or non-2xx status is one error
// class to callers; response bodies are included in errors, token values are
// not (error bodies never contain them).
func postForm(ctx context.Context, client *http.Client, endpoint string, form url.Values, extraHeader http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for key, values := range extraHeader {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return doJSON(client, req, out)
}

// getJSON issues a GET with a Bearer token and decodes the JSON response into out.
func getJSON(ctx context.Context, client *http.Client, rawURL, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	return doJSON(client, req, out)
}

func doJSON(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

// basicAuthHeader builds the Authorization header some providers require on
// their token endpoints instead of body credentials.
func basicAuthHeader(clientID, clientSecret string) http.Header {
	header := http.Header{}
	req := &http.Request{Header: header}
	req.SetBasicAuth(clientID, clientSecret)

	return header
}
