// Package cryptox encrypts small secrets (user API keys) for storage.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
	prefix    = "v1:"
)

var ErrMalformedCiphertext = errors.New("cryptox: malformed ciphertext")

// Box seals and opens values with a key derived from a process secret
type Box struct {
	key [keySize]byte
}

// NewBox derives the encryption key from secret with HKDF-SHA256
func NewBox(secret string) (*Box, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("cryptox: secret is required")
	}

	b := &Box{}
	kdf := hkdf.New(sha256.New, []byte(secret), []byte("careersync"), []byte("user-api-keys"))
	if _, err := io.ReadFull(kdf, b.key[:]); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return b, nil
}

// Seal encrypts plaintext. The empty string stays empty.
func (b *Box) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &b.key)
	return prefix + base64.RawStdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal. Values without the version prefix were
// stored before encryption was enabled and are returned unchanged.
func (b *Box) Open(value string) (string, error) {
	if value == "" || !strings.HasPrefix(value, prefix) {
		return value, nil
	}

	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimPrefix(value, prefix))
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrMalformedCiphertext
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", ErrMalformedCiphertext
	}
	return string(plain), nil
}
