// Package vault provides symmetric encryption for stored credentials:
// upstream platform passwords and LLM provider API keys. The token format
// is Fernet (version 0x80, AES-128-CBC + HMAC-SHA256), with the resulting
// token base64url-encoded once more for database storage.
package vault

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

const (
	keySize   = 32
	blockSize = aes.BlockSize
	// version byte || 8-byte timestamp || IV || at least one cipher block || HMAC
	minTokenSize = 1 + 8 + blockSize + blockSize + sha256.Size

	tokenVersion = 0x80
)

var (
	// ErrInvalidKey is returned when the configured key is not a valid
	// 32-byte base64url string.
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrInvalidToken is returned when decryption fails: wrong key,
	// truncated data, or a forged token.
	ErrInvalidToken = errors.New("invalid encryption token")
)

// Vault encrypts and decrypts string fields. Safe for concurrent use.
type Vault struct {
	signKey []byte
	encKey  []byte
}

// New creates a vault from a base64url-encoded 32-byte key. The first half
// of the key signs, the second half encrypts.
func New(key string) (*Vault, error) {
	raw, err := base64.URLEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) != keySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, keySize, len(raw))
	}
	return &Vault{signKey: raw[:16], encKey: raw[16:]}, nil
}

// NewFromEnv builds a vault from the key in the named environment variable,
// falling back to a key file. When neither exists a new key is generated
// and persisted to the key file with restricted permissions.
func NewFromEnv(envVar, keyFilePath string) (*Vault, error) {
	if key := os.Getenv(envVar); key != "" {
		v, err := New(key)
		if err == nil {
			return v, nil
		}
		slog.Warn("Ignoring invalid encryption key from environment", "var", envVar, "error", err)
	}

	if keyFilePath != "" {
		if data, err := os.ReadFile(keyFilePath); err == nil {
			v, err := New(string(bytes.TrimSpace(data)))
			if err != nil {
				return nil, fmt.Errorf("key file %s: %w", keyFilePath, err)
			}
			slog.Info("Encryption key loaded from file", "path", keyFilePath)
			return v, nil
		}
	}

	key := GenerateKey()
	if keyFilePath != "" {
		if err := os.WriteFile(keyFilePath, []byte(key), 0o600); err != nil {
			return nil, fmt.Errorf("failed to persist generated key: %w", err)
		}
		slog.Warn("Generated new encryption key; set the environment variable for production",
			"var", envVar, "path", keyFilePath)
	}
	return New(key)
}

// GenerateKey returns a fresh random key in the encoding New expects.
func GenerateKey() string {
	raw := make([]byte, keySize)
	if _, err := rand.Read(raw); err != nil {
		// crypto/rand.Read does not fail on supported platforms
		panic(fmt.Sprintf("vault: generating key: %v", err))
	}
	return base64.URLEncoding.EncodeToString(raw)
}

// Encrypt returns the encrypted form of plaintext suitable for database
// storage. The empty string encrypts to the empty string.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	token, err := v.seal([]byte(plaintext), time.Now())
	if err != nil {
		return "", err
	}
	inner := base64.URLEncoding.EncodeToString(token)
	return base64.URLEncoding.EncodeToString([]byte(inner)), nil
}

// Decrypt reverses Encrypt. The empty string decrypts to the empty string.
func (v *Vault) Decrypt(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}
	inner, err := base64.URLEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w: outer encoding: %v", ErrInvalidToken, err)
	}
	token, err := base64.URLEncoding.DecodeString(string(inner))
	if err != nil {
		return "", fmt.Errorf("%w: token encoding: %v", ErrInvalidToken, err)
	}
	plaintext, err := v.open(token)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func (v *Vault) seal(plaintext []byte, now time.Time) ([]byte, error) {
	iv := make([]byte, blockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	block, err := aes.NewCipher(v.encKey)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext)
	token := make([]byte, 0, 1+8+blockSize+len(padded)+sha256.Size)
	token = append(token, tokenVersion)
	token = binary.BigEndian.AppendUint64(token, uint64(now.Unix()))
	token = append(token, iv...)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	token = append(token, ciphertext...)

	mac := hmac.New(sha256.New, v.signKey)
	mac.Write(token)
	return mac.Sum(token), nil
}

func (v *Vault) open(token []byte) ([]byte, error) {
	if len(token) < minTokenSize || token[0] != tokenVersion {
		return nil, ErrInvalidToken
	}

	body, sig := token[:len(token)-sha256.Size], token[len(token)-sha256.Size:]
	mac := hmac.New(sha256.New, v.signKey)
	mac.Write(body)
	if subtle.ConstantTimeCompare(mac.Sum(nil), sig) != 1 {
		return nil, ErrInvalidToken
	}

	ciphertext := body[1+8+blockSize:]
	if len(ciphertext)%blockSize != 0 {
		return nil, ErrInvalidToken
	}

	block, err := aes.NewCipher(v.encKey)
	if err != nil {
		return nil, err
	}
	iv := body[1+8 : 1+8+blockSize]
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext)
}

func pkcs7Pad(data []byte) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrInvalidToken
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrInvalidToken
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidToken
		}
	}
	return data[:len(data)-n], nil
}
