// Package crypto seals API keys before they are written to config.toml.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
)

// Ensure Box implements the interface.
var _ driven.SecretBox = (*Box)(nil)

// sealedPrefix marks values produced by Box.Encrypt.
const sealedPrefix = "v1:"

// KeySize is the length of a box key in bytes.
const KeySize = chacha20poly1305.KeySize

// Box encrypts secrets with XChaCha20-Poly1305.
// Sealed values are "v1:" followed by base64(nonce || ciphertext).
type Box struct {
	key []byte
}

// NewBox creates a box from a raw 32-byte key.
func NewBox(key []byte) (*Box, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: crypt key must be %d bytes, got %d", domain.ErrInvalidInput, KeySize, len(key))
	}
	k := make([]byte, KeySize)
	copy(k, key)
	return &Box{key: k}, nil
}

// NewBoxFromSettings builds a box from crypt settings.
// A hex key wins over the key file. A missing key file is created.
func NewBoxFromSettings(s domain.CryptSettings) (*Box, error) {
	if s.Key != "" {
		key, err := hex.DecodeString(strings.TrimSpace(s.Key))
		if err != nil {
			return nil, fmt.Errorf("%w: crypt key is not valid hex", domain.ErrInvalidInput)
		}
		return NewBox(key)
	}
	if s.KeyFile == "" {
		return nil, fmt.Errorf("%w: neither crypt.key nor crypt.key_file is set", domain.ErrMissingConfig)
	}
	key, err := LoadOrCreateKeyFile(s.KeyFile)
	if err != nil {
		return nil, err
	}
	return NewBox(key)
}

// LoadOrCreateKeyFile reads a hex key from path, generating one if the file
// does not exist.
func LoadOrCreateKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		key, decErr := hex.DecodeString(strings.TrimSpace(string(data)))
		if decErr != nil {
			return nil, fmt.Errorf("%w: key file %s is not valid hex", domain.ErrInvalidInput, path)
		}
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create key dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(key)+"\n"), 0600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return key, nil
}

// Encrypt seals plaintext. Each call uses a fresh random nonce.
func (b *Box) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt.
func (b *Box) Decrypt(sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return "", fmt.Errorf("%w: unknown format", domain.ErrDecrypt)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDecrypt, err)
	}

	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return "", fmt.Errorf("%w: value too short", domain.ErrDecrypt)
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDecrypt, err)
	}
	return string(plaintext), nil
}
