package signature_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greytg/bridge/internal/pkg/signature"
)

func TestSignKnownVector(t *testing.T) {
	body := []byte(`{"tenant_id":"t1","event":"message"}`)
	secret := "topsecret"

	got := signature.Sign(body, secret)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, got)
}

func TestSignEmptySecretOmitsSignature(t *testing.T) {
	assert.Equal(t, "", signature.Sign([]byte("payload"), ""))
	assert.Equal(t, "", signature.Sign([]byte("payload"), "   "))
}

func TestVerifyRoundTrip(t *testing.T) {
	body := []byte(`{"message":{"chat_id":42}}`)
	secret := "roundtrip"

	header := signature.Sign(body, secret)
	assert.True(t, signature.Verify(body, secret, header))
}

func TestVerifyTamperedBody(t *testing.T) {
	body := []byte(`{"original":true}`)
	secret := "tamper"

	header := signature.Sign(body, secret)
	assert.False(t, signature.Verify([]byte(`{"original":false}`), secret, header))
}

func TestVerifyWrongSecret(t *testing.T) {
	body := []byte(`{"data":"value"}`)

	header := signature.Sign(body, "correct")
	assert.False(t, signature.Verify(body, "wrong", header))
}

func TestVerifyNoSecretNeverMatches(t *testing.T) {
	assert.False(t, signature.Verify([]byte("x"), "", "sha256="))
}
