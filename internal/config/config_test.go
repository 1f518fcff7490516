package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{TokenSignKey: "sign-key"},
	}

	require.NoError(t, cfg.validate())

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "nhplus.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "nhplus", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 24*time.Hour, cfg.Workers.SweepInterval)
}

func TestValidate_MissingTokenSignKey(t *testing.T) {
	cfg := &StructuredConfig{}

	err := cfg.validate()
	if !errors.Is(err, ErrNoTokenSignKey) {
		t.Fatalf("expected ErrNoTokenSignKey, got %v", err)
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "sign-key"},
		Storage: Storage{DB: DB{Driver: "oracle", DSN: "dsn"}},
	}

	err := cfg.validate()
	if !errors.Is(err, ErrUnknownDBDriver) {
		t.Fatalf("expected ErrUnknownDBDriver, got %v", err)
	}
}

func TestValidate_PgxWithoutDSN(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "sign-key"},
		Storage: Storage{DB: DB{Driver: "pgx"}},
	}

	err := cfg.validate()
	if !errors.Is(err, ErrNoDatabaseDSN) {
		t.Fatalf("expected ErrNoDatabaseDSN, got %v", err)
	}
}

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("STORAGE_DB_DRIVER", "pgx")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/nhplus")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("WORKERS_SWEEP_INTERVAL", "1h")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/nhplus", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.Workers.SweepInterval)
}

func TestParseJSON_ReadsDurationsAsStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"token_sign_key": "json-key", "token_duration": "6h"},
		"storage": {"db": {"driver": "sqlite3", "dsn": "/tmp/nhplus.db"}},
		"workers": {"sweep_interval": "12h"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 6*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "/tmp/nhplus.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 12*time.Hour, cfg.Workers.SweepInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/definitely/not/there.json")
	assert.Error(t, err)
}
