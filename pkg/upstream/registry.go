package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/ratelimit"
)

// CredentialSource supplies decrypted upstream credentials. Implemented by
// the login service over the vault; the plaintext never leaves the
// registry.
type CredentialSource interface {
	// Credentials returns the decrypted username and password for a login.
	Credentials(ctx context.Context, loginID string) (username, password string, err error)

	// MarkUsed records a successful authentication. Best-effort.
	MarkUsed(ctx context.Context, loginID string) error
}

// Registry holds the per-login authenticated sessions shared across stage
// workers within a scheduler tick. Sessions are created and authenticated
// lazily and closed on idleness, invalidation, or shutdown.
type Registry struct {
	cfg     *config.UpstreamConfig
	limiter *ratelimit.Limiter
	creds   CredentialSource

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates a session registry.
func NewRegistry(cfg *config.UpstreamConfig, limiter *ratelimit.Limiter, creds CredentialSource) *Registry {
	return &Registry{
		cfg:      cfg,
		limiter:  limiter,
		creds:    creds,
		sessions: make(map[string]*Session),
	}
}

// Session returns an authenticated session for the login, creating and
// logging one in if needed. Sessions previously marked unauthenticated are
// replaced.
func (r *Registry) Session(ctx context.Context, loginID string) (*Session, error) {
	r.mu.Lock()
	if session, ok := r.sessions[loginID]; ok && session.IsAuthenticated() {
		r.mu.Unlock()
		return session, nil
	}
	r.mu.Unlock()

	username, password, err := r.creds.Credentials(ctx, loginID)
	if err != nil {
		return nil, fmt.Errorf("loading credentials for login %s: %w", loginID, err)
	}

	session, err := NewSession(loginID, r.cfg, r.limiter)
	if err != nil {
		return nil, err
	}
	if err := session.Login(ctx, username, password); err != nil {
		session.Close()
		return nil, err
	}

	if err := r.creds.MarkUsed(ctx, loginID); err != nil {
		slog.Warn("Failed to record login use", "login_id", loginID, "error", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// A concurrent caller may have won the race; keep the existing session.
	if existing, ok := r.sessions[loginID]; ok && existing.IsAuthenticated() {
		session.Close()
		return existing, nil
	}
	if old, ok := r.sessions[loginID]; ok {
		old.Close()
	}

	if len(r.sessions) >= r.cfg.MaxSessions {
		r.evictIdlestLocked()
	}
	r.sessions[loginID] = session
	return session, nil
}

// Invalidate marks the login's session unauthenticated and closes it.
func (r *Registry) Invalidate(loginID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[loginID]; ok {
		session.Invalidate()
		session.Close()
		delete(r.sessions, loginID)
		slog.Info("Upstream session invalidated", "login_id", loginID)
	}
}

// CloseIdle closes sessions whose last activity is older than the
// configured idle window and returns how many were closed.
func (r *Registry) CloseIdle() int {
	cutoff := time.Now().Add(-r.cfg.SessionIdleTimeout)

	r.mu.Lock()
	defer r.mu.Unlock()

	closed := 0
	for loginID, session := range r.sessions {
		if session.LastActivity().Before(cutoff) {
			session.Close()
			delete(r.sessions, loginID)
			closed++
		}
	}
	if closed > 0 {
		slog.Info("Closed idle upstream sessions", "count", closed)
	}
	return closed
}

// CloseAll closes every session. Called on pipeline shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for loginID, session := range r.sessions {
		session.Close()
		delete(r.sessions, loginID)
	}
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// evictIdlestLocked drops the least recently used session. Caller holds mu.
func (r *Registry) evictIdlestLocked() {
	var victimID string
	var victimAt time.Time
	for loginID, session := range r.sessions {
		at := session.LastActivity()
		if victimID == "" || at.Before(victimAt) {
			victimID = loginID
			victimAt = at
		}
	}
	if victimID != "" {
		r.sessions[victimID].Close()
		delete(r.sessions, victimID)
		slog.Debug("Evicted idlest upstream session", "login_id", victimID)
	}
}
