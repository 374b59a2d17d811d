// Package settings stores service configuration as key/value rows.
// Credential keys are encrypted at rest and exposed to callers only in
// masked form.
package settings

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	keySize   = 32
	nonceSize = 12

	derivationSalt = "scoutarr-settings"
	derivationInfo = "settings-encryption-v1"
)

var (
	// ErrEmptySecret indicates the encryption secret is missing.
	ErrEmptySecret = errors.New("encryption secret cannot be empty")

	// ErrDecryptFailed indicates invalid or tampered ciphertext.
	ErrDecryptFailed = errors.New("decryption failed")
)

// Cipher encrypts setting values with AES-256-GCM. The key is derived
// from an application secret via HKDF-SHA256.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives an encryption key from secret and prepares the
// AEAD.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, keySize)
	kdf := hkdf.New(sha256.New, []byte(secret), []byte(derivationSalt), []byte(derivationInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext with a fresh random nonce. The nonce is
// prepended to the ciphertext and the whole blob base64-encoded.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Returns ErrDecryptFailed on tampered or
// malformed input.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	if len(sealed) < nonceSize {
		return "", ErrDecryptFailed
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptFailed
	}
	return string(plaintext), nil
}
