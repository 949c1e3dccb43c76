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

	"github.com/helmsman-ai/helmsman/ent"
)

// newTestClient creates a database client against a throwaway postgres.
// In CI (CI_DATABASE_URL set) it connects to the external service container;
// locally it starts a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
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

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production uses the embedded SQL files.
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreateGINIndexes(ctx, drv))
	require.NoError(t, CreatePartialIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestDatabaseClientConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health := client.Health(ctx)
	assert.True(t, health.Healthy)
	assert.Greater(t, health.MaxOpen, 0)
}

func TestTicketFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Ticket.Create().
		SetID("TKT-001").
		SetTitle("Fix flaky scheduler test").
		SetDescription("The claim loop races against orphan recovery in CI").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Ticket.Create().
		SetID("TKT-002").
		SetTitle("Add budget alerts").
		SetDescription("Emit cost pressure events at the alert threshold").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT ticket_id FROM tickets
		WHERE to_tsvector('english', title || ' ' || description) @@ to_tsquery('english', $1)`,
		"scheduler & orphan",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{"TKT-001"}, results)
}

func TestOneActiveTaskPerAgent(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Task.Create().
		SetID("TSK-001").
		SetTitle("first").
		SetStatus("running").
		SetAssignedAgentID("ag-1").
		Save(ctx)
	require.NoError(t, err)

	// A second active task on the same agent violates the partial unique index.
	_, err = client.Task.Create().
		SetID("TSK-002").
		SetTitle("second").
		SetStatus("assigned").
		SetAssignedAgentID("ag-1").
		Save(ctx)
	require.Error(t, err)

	// A finished task on the same agent is fine.
	_, err = client.Task.Create().
		SetID("TSK-003").
		SetTitle("third").
		SetStatus("succeeded").
		SetAssignedAgentID("ag-1").
		Save(ctx)
	require.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "helmsman", cfg.User)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
				assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":     "db.example.com",
				"DB_PORT":     "5433",
				"DB_PASSWORD": "secret",
				"DB_SSLMODE":  "require",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Contains(t, cfg.DSN(), "sslmode=require")
			},
		},
		{
			name:    "invalid port",
			envVars: map[string]string{"DB_PORT": "nope", "DB_PASSWORD": "test"},
			wantErr: "invalid DB_PORT",
		},
		{
			name:    "invalid lifetime",
			envVars: map[string]string{"DB_CONN_MAX_LIFETIME": "forever", "DB_PASSWORD": "test"},
			wantErr: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:    "missing password",
			envVars: map[string]string{},
			wantErr: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Host: "localhost", Port: 5432, User: "test", Password: "test",
		Database: "test", SSLMode: "disable",
		MaxOpenConns: 10, MaxIdleConns: 5,
	}
	assert.NoError(t, valid.Validate())

	noPassword := valid
	noPassword.Password = ""
	assert.Error(t, noPassword.Validate())

	idleExceedsOpen := valid
	idleExceedsOpen.MaxIdleConns = 20
	assert.Error(t, idleExceedsOpen.Validate())

	zeroOpen := valid
	zeroOpen.MaxOpenConns = 0
	assert.Error(t, zeroOpen.Validate())
}
