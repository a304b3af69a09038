// Package sessioncrypto encrypts session blobs at rest using NaCl secretbox.
package sessioncrypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

var (
	// ErrInvalidKey indicates the configured key is not 32 bytes after
	// base64 decoding.
	ErrInvalidKey = errors.New("session encryption key must decode to 32 bytes")

	// ErrDecryptFailed indicates the ciphertext could not be opened, either
	// because it was tampered with or encrypted under a different key.
	ErrDecryptFailed = errors.New("session blob decryption failed")
)

// Box seals and opens session blobs with a single symmetric key.
type Box struct {
	key [keySize]byte
}

// NewBox creates a Box from a base64-encoded 32-byte key.
func NewBox(encodedKey string) (*Box, error) {
	raw, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("decoding session encryption key: %w", err)
	}
	if len(raw) != keySize {
		return nil, ErrInvalidKey
	}
	b := &Box{}
	copy(b.key[:], raw)
	return b, nil
}

// Encrypt seals plaintext under a random nonce. The nonce is prepended to
// the returned ciphertext.
func (b *Box) Encrypt(plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, &b.key), nil
}

// Decrypt opens a ciphertext produced by Encrypt.
func (b *Box) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < nonceSize {
		return nil, ErrDecryptFailed
	}
	var nonce [nonceSize]byte
	copy(nonce[:], ciphertext[:nonceSize])
	plaintext, ok := secretbox.Open(nil, ciphertext[nonceSize:], &nonce, &b.key)
	if !ok {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}

// GenerateKey returns a fresh random key, base64-encoded, suitable for the
// SESSION_ENC_KEY setting.
func GenerateKey() (string, error) {
	raw := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generating session encryption key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
