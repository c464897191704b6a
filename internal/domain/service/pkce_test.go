package service

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateState(t *testing.T) {
	first, err := GenerateState()
	require.NoError(t, err)
	second, err := GenerateState()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	// URL-safe, no padding.
	_, err = base64.RawURLEncoding.DecodeString(first)
	require.NoError(t, err)
}

func TestGeneratePKCE(t *testing.T) {
	pair, err := GeneratePKCE()
	require.NoError(t, err)

	assert.NotEmpty(t, pair.Verifier)
	assert.NotEmpty(t, pair.Challenge)
	assert.NotEqual(t, pair.Verifier, pair.Challenge)

	// S256: challenge is the base64url SHA-256 of the verifier.
	digest := sha256.Sum256([]byte(pair.Verifier))
	assert.Equal(t, base64.RawURLEncoding.EncodeToString(digest[:]), pair.Challenge)

	other, err := GeneratePKCE()
	require.NoError(t, err)
	assert.NotEqual(t, pair.Verifier, other.Verifier)
}
