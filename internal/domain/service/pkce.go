package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"github.com/pkg/errors"
)

const entropyBytes = 32

// GenerateState returns a cryptographically random state parameter for CSRF
// protection. It is compared by exact byte equality at callback time and used
// exactly once.
func GenerateState() (string, error) {
	raw := make([]byte, entropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to read random state bytes")
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// GeneratePKCE returns a fresh RFC 7636 verifier/challenge pair.
// The challenge is the base64url-encoded SHA-256 of the verifier (S256).
func GeneratePKCE() (*PKCEPair, error) {
	raw := make([]byte, entropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.Wrap(err, "failed to read random verifier bytes")
	}

	verifier := base64.RawURLEncoding.EncodeToString(raw)
	digest := sha256.Sum256([]byte(verifier))

	return &PKCEPair{
		Verifier:  verifier,
		Challenge: base64.RawURLEncoding.EncodeToString(digest[:]),
	}, nil
}
