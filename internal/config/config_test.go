package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantpal/plantpal-service/pkg/auth"
)

var configEnv = []string{
	"PORT", "APP_ENV", "DATASTORE", "GCP_PROJECT_ID", "FIRESTORE_DATABASE", "FIRESTORE_EMULATOR_HOST",
	"DATABASE_URL", "AUTH_MODE", "AUTH_JWKS_URL", "AUTH_AUDIENCE", "AUTH_ISSUER", "AUTH_JWT_SECRET",
	"LEADERBOARD_LIMIT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range configEnv {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DataStoreMemory, cfg.DataStore)
	assert.Equal(t, auth.ModeNoop, cfg.Auth.Mode)
	assert.Equal(t, 10, cfg.LeaderboardLimit)
}

func TestLoadPostgresWithHMAC(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATASTORE", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://plantpal@localhost:5432/plantpal")
	t.Setenv("AUTH_MODE", "hmac")
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("LEADERBOARD_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DataStorePostgres, cfg.DataStore)
	assert.Equal(t, auth.ModeHMAC, cfg.Auth.Mode)
	assert.Equal(t, 25, cfg.LeaderboardLimit)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown datastore":         {"DATASTORE": "redis"},
		"firestore without project": {"DATASTORE": "firestore"},
		"postgres without url":      {"DATASTORE": "postgres"},
		"jwks without url":          {"AUTH_MODE": "jwks"},
		"hmac without secret":       {"AUTH_MODE": "hmac"},
		"unknown auth mode":         {"AUTH_MODE": "clerk"},
		"noop in production":        {"APP_ENV": "production"},
		"non-numeric limit":         {"LEADERBOARD_LIMIT": "ten"},
		"zero limit":                {"LEADERBOARD_LIMIT": "0"},
		"limit too large":           {"LEADERBOARD_LIMIT": "1000"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLANTPAL_DOTENV_PROBE", "")
	os.Unsetenv("PLANTPAL_DOTENV_PROBE")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PLANTPAL_DOTENV_PROBE=loaded\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("PLANTPAL_DOTENV_PROBE"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadDotEnvSkippedInProduction(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PLANTPAL_DOTENV_PROBE", "")
	os.Unsetenv("PLANTPAL_DOTENV_PROBE")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PLANTPAL_DOTENV_PROBE=loaded\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))
	_, ok := os.LookupEnv("PLANTPAL_DOTENV_PROBE")
	assert.False(t, ok)
}
