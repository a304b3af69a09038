// Package signature provides HMAC-SHA256 signing and verification for
// webhook payloads.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sign computes the HMAC-SHA256 of body with secret and returns the header
// value in the form "sha256=<hex>". Returns "" when no secret is configured,
// in which case the signature header must be omitted entirely.
func Sign(body []byte, secret string) string {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a received signature header against the expected signature
// for the body, in constant time.
func Verify(body []byte, secret, header string) bool {
	expected := Sign(body, secret)
	if expected == "" {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(header))
}
