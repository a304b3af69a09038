package sessioncrypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	box, err := NewBox(key)
	require.NoError(t, err)

	plaintext := []byte("opaque session state")
	ciphertext, err := box.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	got, err := box.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEncryptProducesFreshNonce(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	box, err := NewBox(key)
	require.NoError(t, err)

	a, err := box.Encrypt([]byte("same input"))
	require.NoError(t, err)
	b, err := box.Encrypt([]byte("same input"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDecryptWrongKey(t *testing.T) {
	keyA, err := GenerateKey()
	require.NoError(t, err)
	keyB, err := GenerateKey()
	require.NoError(t, err)

	boxA, err := NewBox(keyA)
	require.NoError(t, err)
	boxB, err := NewBox(keyB)
	require.NoError(t, err)

	ciphertext, err := boxA.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = boxB.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrDecryptFailed)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	box, err := NewBox(key)
	require.NoError(t, err)

	ciphertext, err := box.Encrypt([]byte("secret"))
	require.NoError(t, err)
	ciphertext[len(ciphertext)-1] ^= 0xFF

	_, err = box.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrDecryptFailed)
}

func TestDecryptTruncatedCiphertext(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	box, err := NewBox(key)
	require.NoError(t, err)

	_, err = box.Decrypt([]byte("short"))
	assert.ErrorIs(t, err, ErrDecryptFailed)
}

func TestNewBoxRejectsBadKeys(t *testing.T) {
	_, err := NewBox("not-base64!!")
	assert.Error(t, err)

	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	_, err = NewBox(short)
	assert.ErrorIs(t, err, ErrInvalidKey)
}
