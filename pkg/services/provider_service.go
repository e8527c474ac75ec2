package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/pkg/llm"
	"github.com/yourmoment/yourmoment/pkg/vault"
)

// CreateLLMConfigInput contains the plaintext provider data for a new
// configuration entry.
type CreateLLMConfigInput struct {
	UserID      string
	Provider    string
	ModelName   string
	APIKey      string
	MaxTokens   int
	Temperature float64
}

// LLMConfigService manages provider configurations. API keys are
// vault-encrypted at rest and only decrypted into ready-to-use provider
// configs for the generation stage.
type LLMConfigService struct {
	client *ent.Client
	vault  *vault.Vault
}

// NewLLMConfigService creates a new LLMConfigService.
func NewLLMConfigService(client *ent.Client, v *vault.Vault) *LLMConfigService {
	if client == nil {
		panic("NewLLMConfigService: client must not be nil")
	}
	if v == nil {
		panic("NewLLMConfigService: vault must not be nil")
	}
	return &LLMConfigService{client: client, vault: v}
}

// CreateConfig encrypts and stores a provider configuration.
func (s *LLMConfigService) CreateConfig(ctx context.Context, input CreateLLMConfigInput) (*ent.LLMProviderConfig, error) {
	if input.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if input.Provider != llm.ProviderOpenAI && input.Provider != llm.ProviderMistral {
		return nil, NewValidationError("provider", fmt.Sprintf("must be '%s' or '%s'", llm.ProviderOpenAI, llm.ProviderMistral))
	}
	if input.ModelName == "" {
		return nil, NewValidationError("model_name", "required")
	}
	if input.APIKey == "" {
		return nil, NewValidationError("api_key", "required")
	}

	keyEnc, err := s.vault.Encrypt(input.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt API key: %w", err)
	}

	builder := s.client.LLMProviderConfig.Create().
		SetID(uuid.New().String()).
		SetUserID(input.UserID).
		SetProvider(llmproviderconfig.Provider(input.Provider)).
		SetModelName(input.ModelName).
		SetAPIKeyEncrypted(keyEnc)

	if input.MaxTokens > 0 {
		builder.SetMaxTokens(input.MaxTokens)
	}
	if input.Temperature > 0 {
		builder.SetTemperature(input.Temperature)
	}

	cfg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM config: %w", err)
	}
	return cfg, nil
}

// GetConfig retrieves a provider configuration scoped to its owner.
func (s *LLMConfigService) GetConfig(ctx context.Context, userID, configID string) (*ent.LLMProviderConfig, error) {
	cfg, err := s.client.LLMProviderConfig.Query().
		Where(llmproviderconfig.IDEQ(configID), llmproviderconfig.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get LLM config: %w", err)
	}
	return cfg, nil
}

// ListConfigs returns the user's provider configurations, newest first.
func (s *LLMConfigService) ListConfigs(ctx context.Context, userID string) ([]*ent.LLMProviderConfig, error) {
	configs, err := s.client.LLMProviderConfig.Query().
		Where(llmproviderconfig.UserIDEQ(userID)).
		Order(ent.Desc(llmproviderconfig.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list LLM configs: %w", err)
	}
	return configs, nil
}

// ProviderConfig decrypts a configuration into the form the generation
// client consumes.
func (s *LLMConfigService) ProviderConfig(ctx context.Context, configID string) (llm.ProviderConfig, error) {
	cfg, err := s.client.LLMProviderConfig.Get(ctx, configID)
	if err != nil {
		if ent.IsNotFound(err) {
			return llm.ProviderConfig{}, ErrNotFound
		}
		return llm.ProviderConfig{}, fmt.Errorf("failed to get LLM config: %w", err)
	}
	if !cfg.IsActive {
		return llm.ProviderConfig{}, fmt.Errorf("LLM config %s: %w", configID, ErrNotActive)
	}

	apiKey, err := s.vault.Decrypt(cfg.APIKeyEncrypted)
	if err != nil {
		return llm.ProviderConfig{}, fmt.Errorf("failed to decrypt API key for config %s: %w", configID, err)
	}

	return llm.ProviderConfig{
		Provider:    string(cfg.Provider),
		Model:       cfg.ModelName,
		APIKey:      apiKey,
		MaxTokens:   cfg.MaxTokens,
		Temperature: float32(cfg.Temperature),
	}, nil
}
