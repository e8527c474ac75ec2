package upstream

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/ratelimit"
)

type fakeCredentialSource struct {
	mu       sync.Mutex
	password string
	usedIDs  []string
	err      error
}

func (f *fakeCredentialSource) Credentials(_ context.Context, loginID string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "schueler", f.password, nil
}

func (f *fakeCredentialSource) MarkUsed(_ context.Context, loginID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.usedIDs = append(f.usedIDs, loginID)
	return nil
}

func newTestRegistry(t *testing.T, baseURL string, creds CredentialSource) *Registry {
	cfg := config.DefaultUpstreamConfig()
	cfg.BaseURL = baseURL
	r := NewRegistry(cfg, ratelimit.New(0), creds)
	t.Cleanup(r.CloseAll)
	return r
}

func TestRegistrySessionReuse(t *testing.T) {
	p := newFakePlatform(t)
	creds := &fakeCredentialSource{password: "geheim"}
	r := newTestRegistry(t, p.server.URL, creds)

	first, err := r.Session(context.Background(), "login-1")
	require.NoError(t, err)
	second, err := r.Session(context.Background(), "login-1")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"login-1"}, creds.usedIDs)
	assert.Equal(t, 1, p.loginAttempts)
}

func TestRegistryLoginFailure(t *testing.T) {
	p := newFakePlatform(t)
	creds := &fakeCredentialSource{password: "falsch"}
	r := newTestRegistry(t, p.server.URL, creds)

	_, err := r.Session(context.Background(), "login-1")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, creds.usedIDs)
}

func TestRegistryCredentialError(t *testing.T) {
	p := newFakePlatform(t)
	creds := &fakeCredentialSource{err: fmt.Errorf("decryption failed")}
	r := newTestRegistry(t, p.server.URL, creds)

	_, err := r.Session(context.Background(), "login-1")
	require.Error(t, err)
	assert.ErrorContains(t, err, "login-1")
	assert.Equal(t, 0, p.loginAttempts)
}

func TestRegistryInvalidateForcesRelogin(t *testing.T) {
	p := newFakePlatform(t)
	creds := &fakeCredentialSource{password: "geheim"}
	r := newTestRegistry(t, p.server.URL, creds)

	_, err := r.Session(context.Background(), "login-1")
	require.NoError(t, err)

	r.Invalidate("login-1")
	assert.Equal(t, 0, r.Len())

	_, err = r.Session(context.Background(), "login-1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.loginAttempts)
}

func TestRegistryCloseIdle(t *testing.T) {
	p := newFakePlatform(t)
	creds := &fakeCredentialSource{password: "geheim"}

	cfg := config.DefaultUpstreamConfig()
	cfg.BaseURL = p.server.URL
	cfg.SessionIdleTimeout = time.Nanosecond
	r := NewRegistry(cfg, ratelimit.New(0), creds)
	t.Cleanup(r.CloseAll)

	_, err := r.Session(context.Background(), "login-1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 1, r.CloseIdle())
	assert.Equal(t, 0, r.Len())
}

func TestRegistryEvictsIdlestAtCapacity(t *testing.T) {
	p := newFakePlatform(t)
	creds := &fakeCredentialSource{password: "geheim"}

	cfg := config.DefaultUpstreamConfig()
	cfg.BaseURL = p.server.URL
	cfg.MaxSessions = 2
	r := NewRegistry(cfg, ratelimit.New(0), creds)
	t.Cleanup(r.CloseAll)

	_, err := r.Session(context.Background(), "login-1")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = r.Session(context.Background(), "login-2")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = r.Session(context.Background(), "login-3")
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())

	// login-1 was idlest; asking for it again logs in anew
	before := p.loginAttempts
	_, err = r.Session(context.Background(), "login-1")
	require.NoError(t, err)
	assert.Equal(t, before+1, p.loginAttempts)
}
