package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/pkg/vault"
	"github.com/yourmoment/yourmoment/test/util"
)

const testUserID = "user-1"

func newTestClient(t *testing.T) *ent.Client {
	client, _ := util.SetupTestDatabase(t)
	return client
}

func newTestVault(t *testing.T) *vault.Vault {
	v, err := vault.New(vault.GenerateKey())
	require.NoError(t, err)
	return v
}

// newTestFixtures creates the login, LLM config, and prompt template a
// process needs to run.
func newTestFixtures(t *testing.T, client *ent.Client, v *vault.Vault) (login *ent.UpstreamLogin, cfg *ent.LLMProviderConfig, template *ent.PromptTemplate) {
	ctx := context.Background()

	login, err := NewLoginService(client, v).CreateLogin(ctx, CreateLoginInput{
		UserID:   testUserID,
		Name:     "Klasse 4a",
		Username: "schueler",
		Password: "geheim",
	})
	require.NoError(t, err)

	cfg, err = NewLLMConfigService(client, v).CreateConfig(ctx, CreateLLMConfigInput{
		UserID:    testUserID,
		Provider:  "openai",
		ModelName: "gpt-4o-mini",
		APIKey:    "sk-test",
	})
	require.NoError(t, err)

	template, err = NewTemplateService(client).CreateTemplate(ctx, CreateTemplateInput{
		UserID:             testUserID,
		Name:               "Freundlicher Kommentar",
		SystemPrompt:       "Du bist ein freundlicher Leser.",
		UserPromptTemplate: "Kommentiere: {article_title}\n{article_content}",
	})
	require.NoError(t, err)

	return login, cfg, template
}

func newTestProcess(t *testing.T, client *ent.Client, v *vault.Vault) (*ent.Process, *ent.UpstreamLogin) {
	login, cfg, template := newTestFixtures(t, client, v)

	proc, err := NewProcessService(client).CreateProcess(context.Background(), CreateProcessInput{
		UserID:             testUserID,
		Name:               "Klassenmonitor",
		MaxDurationMinutes: 60,
		FilterTab:          "alle",
		LLMConfigID:        cfg.ID,
		LoginIDs:           []string{login.ID},
		PromptTemplateIDs:  []string{template.ID},
	})
	require.NoError(t, err)
	return proc, login
}
