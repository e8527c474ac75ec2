package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/pkg/vault"
)

// CreateLoginInput contains the plaintext credential data for a new
// upstream login. The plaintext is encrypted before it reaches the
// database and is not retained.
type CreateLoginInput struct {
	UserID   string
	Name     string
	Username string
	Password string
	IsAdmin  bool
}

// LoginService manages stored upstream credentials. It is the only
// component that decrypts them, and it implements the credential source
// the session registry authenticates with.
type LoginService struct {
	client *ent.Client
	vault  *vault.Vault
}

// NewLoginService creates a new LoginService.
func NewLoginService(client *ent.Client, v *vault.Vault) *LoginService {
	if client == nil {
		panic("NewLoginService: client must not be nil")
	}
	if v == nil {
		panic("NewLoginService: vault must not be nil")
	}
	return &LoginService{client: client, vault: v}
}

// CreateLogin encrypts and stores an upstream credential.
func (s *LoginService) CreateLogin(ctx context.Context, input CreateLoginInput) (*ent.UpstreamLogin, error) {
	if input.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if input.Username == "" {
		return nil, NewValidationError("username", "required")
	}
	if input.Password == "" {
		return nil, NewValidationError("password", "required")
	}

	usernameEnc, err := s.vault.Encrypt(input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt username: %w", err)
	}
	passwordEnc, err := s.vault.Encrypt(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt password: %w", err)
	}

	login, err := s.client.UpstreamLogin.Create().
		SetID(uuid.New().String()).
		SetUserID(input.UserID).
		SetName(input.Name).
		SetUsernameEncrypted(usernameEnc).
		SetPasswordEncrypted(passwordEnc).
		SetIsAdmin(input.IsAdmin).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create login: %w", err)
	}

	return login, nil
}

// GetLogin retrieves a login scoped to its owner.
func (s *LoginService) GetLogin(ctx context.Context, userID, loginID string) (*ent.UpstreamLogin, error) {
	login, err := s.client.UpstreamLogin.Query().
		Where(upstreamlogin.IDEQ(loginID), upstreamlogin.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get login: %w", err)
	}
	return login, nil
}

// ListLogins returns the user's logins, newest first.
func (s *LoginService) ListLogins(ctx context.Context, userID string) ([]*ent.UpstreamLogin, error) {
	logins, err := s.client.UpstreamLogin.Query().
		Where(upstreamlogin.UserIDEQ(userID)).
		Order(ent.Desc(upstreamlogin.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list logins: %w", err)
	}
	return logins, nil
}

// Deactivate marks a login inactive. Running processes that reference it
// fail their next authentication.
func (s *LoginService) Deactivate(ctx context.Context, userID, loginID string) error {
	n, err := s.client.UpstreamLogin.Update().
		Where(upstreamlogin.IDEQ(loginID), upstreamlogin.UserIDEQ(userID)).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate login: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Credentials decrypts the login's upstream username and password. Only
// active logins can authenticate.
func (s *LoginService) Credentials(ctx context.Context, loginID string) (string, string, error) {
	login, err := s.client.UpstreamLogin.Get(ctx, loginID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", "", ErrNotFound
		}
		return "", "", fmt.Errorf("failed to get login: %w", err)
	}
	if !login.IsActive {
		return "", "", fmt.Errorf("login %s: %w", loginID, ErrNotActive)
	}

	username, err := s.vault.Decrypt(login.UsernameEncrypted)
	if err != nil {
		return "", "", fmt.Errorf("failed to decrypt username for login %s: %w", loginID, err)
	}
	password, err := s.vault.Decrypt(login.PasswordEncrypted)
	if err != nil {
		return "", "", fmt.Errorf("failed to decrypt password for login %s: %w", loginID, err)
	}
	return username, password, nil
}

// MarkUsed bumps the login's last_used_at after a successful
// authentication.
func (s *LoginService) MarkUsed(ctx context.Context, loginID string) error {
	err := s.client.UpstreamLogin.UpdateOneID(loginID).
		SetLastUsedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark login used: %w", err)
	}
	return nil
}
