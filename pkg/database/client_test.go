package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/yourmoment/yourmoment/ent"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests, then the CHECK constraints the SQL
	// migrations carry in production
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)
	err = CreateCheckConstraints(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestCheckConstraints(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	login, err := client.UpstreamLogin.Create().
		SetID("login-1").
		SetUserID("user-1").
		SetName("Test account").
		SetUsernameEncrypted("enc-user").
		SetPasswordEncrypted("enc-pass").
		Save(ctx)
	require.NoError(t, err)

	llm, err := client.LLMProviderConfig.Create().
		SetID("llm-1").
		SetUserID("user-1").
		SetProvider("openai").
		SetModelName("gpt-3.5-turbo").
		SetAPIKeyEncrypted("enc-key").
		Save(ctx)
	require.NoError(t, err)

	proc, err := client.Process.Create().
		SetID("proc-1").
		SetUserID("user-1").
		SetName("Test process").
		SetMaxDurationMinutes(60).
		SetLlmConfigID(llm.ID).
		Save(ctx)
	require.NoError(t, err)

	// A 'failed' item without error_message violates the CHECK constraint
	_, err = client.DB().ExecContext(ctx,
		`INSERT INTO work_items (item_id, process_id, login_id, user_id, article_id, status)
		 VALUES ('item-bad', $1, $2, 'user-1', 'A1', 'failed')`,
		proc.ID, login.ID)
	assert.Error(t, err)

	// A 'posted' item without posted_at/upstream_comment_id is rejected too
	_, err = client.DB().ExecContext(ctx,
		`INSERT INTO work_items (item_id, process_id, login_id, user_id, article_id, status)
		 VALUES ('item-bad2', $1, $2, 'user-1', 'A1', 'posted')`,
		proc.ID, login.ID)
	assert.Error(t, err)

	// The discovered default is fine
	_, err = client.DB().ExecContext(ctx,
		`INSERT INTO work_items (item_id, process_id, login_id, user_id, article_id)
		 VALUES ('item-ok', $1, $2, 'user-1', 'A1')`,
		proc.ID, login.ID)
	assert.NoError(t, err)

	// Duplicate (process, article, login) triple is rejected
	_, err = client.DB().ExecContext(ctx,
		`INSERT INTO work_items (item_id, process_id, login_id, user_id, article_id)
		 VALUES ('item-dup', $1, $2, 'user-1', 'A1')`,
		proc.ID, login.ID)
	assert.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "yourmoment", cfg.User)
	assert.Equal(t, "yourmoment", cfg.Database)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)

	t.Setenv("DB_PORT", "not-a-port")
	_, err = LoadConfigFromEnv()
	assert.ErrorContains(t, err, "invalid DB_PORT")

	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_HOST", "db.example.com")
	cfg, err = LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, "db.example.com", cfg.Host)
}
