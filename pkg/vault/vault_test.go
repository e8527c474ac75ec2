package vault

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	v, err := New(GenerateKey())
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
	}{
		{"simple", "hunter2"},
		{"api key", "sk-proj-abc123def456"},
		{"umlauts", "zürich-schüler-paßwort"},
		{"long", string(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := v.Encrypt(tt.plaintext)
			require.NoError(t, err)
			assert.NotEqual(t, tt.plaintext, encrypted)

			decrypted, err := v.Decrypt(encrypted)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, decrypted)
		})
	}
}

func TestEncryptEmptyString(t *testing.T) {
	v, err := New(GenerateKey())
	require.NoError(t, err)

	encrypted, err := v.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, encrypted)

	decrypted, err := v.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, decrypted)
}

func TestEncryptProducesFreshTokens(t *testing.T) {
	v, err := New(GenerateKey())
	require.NoError(t, err)

	a, err := v.Encrypt("same input")
	require.NoError(t, err)
	b, err := v.Encrypt("same input")
	require.NoError(t, err)

	// Random IV per token
	assert.NotEqual(t, a, b)
}

func TestDecryptWrongKey(t *testing.T) {
	v1, err := New(GenerateKey())
	require.NoError(t, err)
	v2, err := New(GenerateKey())
	require.NoError(t, err)

	encrypted, err := v1.Encrypt("secret")
	require.NoError(t, err)

	_, err = v2.Decrypt(encrypted)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecryptTamperedToken(t *testing.T) {
	v, err := New(GenerateKey())
	require.NoError(t, err)

	encrypted, err := v.Encrypt("secret")
	require.NoError(t, err)

	inner, err := base64.URLEncoding.DecodeString(encrypted)
	require.NoError(t, err)
	token, err := base64.URLEncoding.DecodeString(string(inner))
	require.NoError(t, err)

	// Flip a ciphertext bit
	token[len(token)/2] ^= 0x01
	tampered := base64.URLEncoding.EncodeToString([]byte(base64.URLEncoding.EncodeToString(token)))

	_, err = v.Decrypt(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecryptGarbage(t *testing.T) {
	v, err := New(GenerateKey())
	require.NoError(t, err)

	for _, input := range []string{"not base64 !!!", "YWJj", base64.URLEncoding.EncodeToString([]byte("YWJj"))} {
		_, err := v.Decrypt(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestNewRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not base64", "!!!"},
		{"too short", base64.URLEncoding.EncodeToString([]byte("short"))},
		{"too long", base64.URLEncoding.EncodeToString(make([]byte, 64))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestNewFromEnvPrefersEnvironment(t *testing.T) {
	key := GenerateKey()
	t.Setenv("TEST_VAULT_KEY", key)

	v, err := NewFromEnv("TEST_VAULT_KEY", "")
	require.NoError(t, err)

	encrypted, err := v.Encrypt("payload")
	require.NoError(t, err)

	// Same key must decrypt
	v2, err := New(key)
	require.NoError(t, err)
	decrypted, err := v2.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "payload", decrypted)
}

func TestNewFromEnvKeyFileFallback(t *testing.T) {
	t.Setenv("TEST_VAULT_KEY", "")
	keyFile := filepath.Join(t.TempDir(), "vault.key")
	key := GenerateKey()
	require.NoError(t, os.WriteFile(keyFile, []byte(key+"\n"), 0o600))

	v, err := NewFromEnv("TEST_VAULT_KEY", keyFile)
	require.NoError(t, err)

	encrypted, err := v.Encrypt("payload")
	require.NoError(t, err)
	ref, err := New(key)
	require.NoError(t, err)
	decrypted, err := ref.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "payload", decrypted)
}

func TestNewFromEnvGeneratesAndPersists(t *testing.T) {
	t.Setenv("TEST_VAULT_KEY", "")
	keyFile := filepath.Join(t.TempDir(), "vault.key")

	v, err := NewFromEnv("TEST_VAULT_KEY", keyFile)
	require.NoError(t, err)

	info, err := os.Stat(keyFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second load from the same file yields a compatible vault
	v2, err := NewFromEnv("TEST_VAULT_KEY", keyFile)
	require.NoError(t, err)

	encrypted, err := v.Encrypt("stable")
	require.NoError(t, err)
	decrypted, err := v2.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "stable", decrypted)
}
