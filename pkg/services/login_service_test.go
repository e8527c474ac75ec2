package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCredentialsRoundTrip(t *testing.T) {
	client := newTestClient(t)
	v := newTestVault(t)
	svc := NewLoginService(client, v)
	ctx := context.Background()

	login, err := svc.CreateLogin(ctx, CreateLoginInput{
		UserID:   testUserID,
		Name:     "Klasse 4a",
		Username: "schueler",
		Password: "sehr-geheim",
	})
	require.NoError(t, err)

	// Plaintext never lands in the row
	assert.NotEqual(t, "schueler", login.UsernameEncrypted)
	assert.NotEqual(t, "sehr-geheim", login.PasswordEncrypted)

	username, password, err := svc.Credentials(ctx, login.ID)
	require.NoError(t, err)
	assert.Equal(t, "schueler", username)
	assert.Equal(t, "sehr-geheim", password)
}

func TestCredentialsRejectsInactiveLogin(t *testing.T) {
	client := newTestClient(t)
	v := newTestVault(t)
	svc := NewLoginService(client, v)
	ctx := context.Background()

	login, err := svc.CreateLogin(ctx, CreateLoginInput{
		UserID:   testUserID,
		Name:     "Klasse 4a",
		Username: "schueler",
		Password: "geheim",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(ctx, testUserID, login.ID))

	_, _, err = svc.Credentials(ctx, login.ID)
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestCredentialsWithWrongVaultKey(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	login, err := NewLoginService(client, newTestVault(t)).CreateLogin(ctx, CreateLoginInput{
		UserID:   testUserID,
		Name:     "Klasse 4a",
		Username: "schueler",
		Password: "geheim",
	})
	require.NoError(t, err)

	// A service with a different key cannot decrypt the stored credential
	otherKey := NewLoginService(client, newTestVault(t))
	_, _, err = otherKey.Credentials(ctx, login.ID)
	require.Error(t, err)
	assert.ErrorContains(t, err, "decrypt")
}

func TestMarkUsed(t *testing.T) {
	client := newTestClient(t)
	svc := NewLoginService(client, newTestVault(t))
	ctx := context.Background()

	login, err := svc.CreateLogin(ctx, CreateLoginInput{
		UserID:   testUserID,
		Name:     "Klasse 4a",
		Username: "schueler",
		Password: "geheim",
	})
	require.NoError(t, err)
	assert.Nil(t, login.LastUsedAt)

	require.NoError(t, svc.MarkUsed(ctx, login.ID))

	loaded, err := svc.GetLogin(ctx, testUserID, login.ID)
	require.NoError(t, err)
	assert.NotNil(t, loaded.LastUsedAt)

	assert.ErrorIs(t, svc.MarkUsed(ctx, "missing"), ErrNotFound)
}

func TestProviderConfigRoundTrip(t *testing.T) {
	client := newTestClient(t)
	v := newTestVault(t)
	svc := NewLLMConfigService(client, v)
	ctx := context.Background()

	cfg, err := svc.CreateConfig(ctx, CreateLLMConfigInput{
		UserID:      testUserID,
		Provider:    "mistral",
		ModelName:   "mistral-small-latest",
		APIKey:      "mk-secret",
		MaxTokens:   256,
		Temperature: 0.5,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "mk-secret", cfg.APIKeyEncrypted)

	providerCfg, err := svc.ProviderConfig(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, "mistral", providerCfg.Provider)
	assert.Equal(t, "mistral-small-latest", providerCfg.Model)
	assert.Equal(t, "mk-secret", providerCfg.APIKey)
	assert.Equal(t, 256, providerCfg.MaxTokens)
	assert.InDelta(t, 0.5, providerCfg.Temperature, 0.001)
}

func TestCreateConfigRejectsUnknownProvider(t *testing.T) {
	client := newTestClient(t)
	svc := NewLLMConfigService(client, newTestVault(t))

	_, err := svc.CreateConfig(context.Background(), CreateLLMConfigInput{
		UserID:    testUserID,
		Provider:  "anthropic",
		ModelName: "x",
		APIKey:    "k",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestTemplateVisibility(t *testing.T) {
	client := newTestClient(t)
	svc := NewTemplateService(client)
	ctx := context.Background()

	system, err := svc.CreateTemplate(ctx, CreateTemplateInput{
		Name:               "Standard",
		SystemPrompt:       "Du bist ein freundlicher Leser.",
		UserPromptTemplate: "Kommentiere: {article_content}",
	})
	require.NoError(t, err)

	mine, err := svc.CreateTemplate(ctx, CreateTemplateInput{
		UserID:             testUserID,
		Name:               "Meine Vorlage",
		SystemPrompt:       "Du bist streng.",
		UserPromptTemplate: "Bewerte: {article_content}",
	})
	require.NoError(t, err)

	theirs, err := svc.CreateTemplate(ctx, CreateTemplateInput{
		UserID:             "someone-else",
		Name:               "Fremde Vorlage",
		SystemPrompt:       "s",
		UserPromptTemplate: "u",
	})
	require.NoError(t, err)

	templates, err := svc.ListTemplates(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, system.ID, templates[0].ID)
	assert.Equal(t, mine.ID, templates[1].ID)

	// SYSTEM template is readable by anyone
	_, err = svc.GetTemplate(ctx, testUserID, system.ID)
	require.NoError(t, err)

	// Foreign USER template is not
	_, err = svc.GetTemplate(ctx, testUserID, theirs.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// SYSTEM templates cannot be deactivated through the user path
	assert.ErrorIs(t, svc.Deactivate(ctx, testUserID, system.ID), ErrNotFound)
}
