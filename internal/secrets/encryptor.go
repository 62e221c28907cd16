// Package secrets encrypts tenant hypervisor credentials at rest. Ciphertext
// is versioned and base64-encoded so it can live in a text column.
package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

// prefix tags ciphertext with the scheme version, so a future key or
// algorithm rotation can coexist with old rows.
const prefix = "v1:"

// Encryptor seals and opens short secrets with XChaCha20-Poly1305.
type Encryptor struct {
	aead cipher.AEAD
}

// NewEncryptor creates an encryptor from a 32-byte key.
func NewEncryptor(key []byte) (*Encryptor, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return &Encryptor{aead: aead}, nil
}

// NewEncryptorFromBase64 creates an encryptor from a base64-encoded key, the
// form the key takes in configuration.
func NewEncryptorFromBase64(encoded string) (*Encryptor, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	return NewEncryptor(key)
}

// Encrypt seals plaintext and returns versioned, base64-encoded ciphertext.
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return prefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens ciphertext produced by Encrypt.
func (e *Encryptor) Decrypt(ciphertext string) (string, error) {
	if !strings.HasPrefix(ciphertext, prefix) {
		return "", apperrors.Internal("SECRET_SCHEME_UNKNOWN", "unrecognized ciphertext scheme")
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(ciphertext, prefix))
	if err != nil {
		return "", apperrors.Internal("SECRET_CORRUPT", "ciphertext is not valid base64")
	}
	if len(raw) < e.aead.NonceSize() {
		return "", apperrors.Internal("SECRET_CORRUPT", "ciphertext too short")
	}
	nonce, sealed := raw[:e.aead.NonceSize()], raw[e.aead.NonceSize():]
	plain, err := e.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", apperrors.Internal("SECRET_CORRUPT", "ciphertext authentication failed")
	}
	return string(plain), nil
}
