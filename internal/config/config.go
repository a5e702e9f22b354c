package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"

	"github.com/plantpal/plantpal-service/internal/challenge"
	"github.com/plantpal/plantpal-service/pkg/auth"
	"github.com/plantpal/plantpal-service/pkg/envconfig"
)

// Config encapsulates the runtime configuration for the plantpal service.
type Config struct {
	Port             string `validate:"required"`
	Env              string
	DataStore        DataStore
	GCPProjectID     string
	LeaderboardLimit int `validate:"gte=1,lte=100"`
	Auth             AuthConfig
	Firestore        FirestoreConfig
	Postgres         PostgresConfig
}

// DataStore enumerates supported persistence backends.
type DataStore string

const (
	// DataStoreMemory keeps everything in process memory (local development/testing).
	DataStoreMemory DataStore = "memory"
	// DataStoreFirestore stores data in Google Cloud Firestore.
	DataStoreFirestore DataStore = "firestore"
	// DataStorePostgres stores data in PostgreSQL through pgx.
	DataStorePostgres DataStore = "postgres"
)

// EnvProduction disables .env loading.
const EnvProduction = "production"

// AuthConfig stores authentication middleware setup.
type AuthConfig struct {
	Mode     auth.Mode
	JWKSURL  string
	Secret   string
	Audience string
	Issuer   string
}

// FirestoreConfig tailors Firestore client behavior.
type FirestoreConfig struct {
	Database     string
	EmulatorHost string
}

// PostgresConfig holds the pgx connection string.
type PostgresConfig struct {
	URL string
}

// LoadDotEnv reads .env into the process environment outside production. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if strings.EqualFold(envconfig.Get("APP_ENV", ""), EnvProduction) {
		return nil
	}
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads environment variables into Config with validation.
func Load() (Config, error) {
	limit, err := envconfig.GetInt("LEADERBOARD_LIMIT", challenge.DefaultLeaderboardLimit)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:             envconfig.Get("PORT", "8080"),
		Env:              strings.ToLower(envconfig.Get("APP_ENV", "development")),
		DataStore:        DataStore(strings.ToLower(envconfig.Get("DATASTORE", string(DataStoreMemory)))),
		GCPProjectID:     envconfig.Get("GCP_PROJECT_ID", ""),
		LeaderboardLimit: limit,
		Auth: AuthConfig{
			Mode:     auth.Mode(strings.ToLower(envconfig.Get("AUTH_MODE", string(auth.ModeNoop)))),
			JWKSURL:  envconfig.Get("AUTH_JWKS_URL", ""),
			Secret:   envconfig.Get("AUTH_JWT_SECRET", ""),
			Audience: envconfig.Get("AUTH_AUDIENCE", ""),
			Issuer:   envconfig.Get("AUTH_ISSUER", ""),
		},
		Firestore: FirestoreConfig{
			Database:     envconfig.Get("FIRESTORE_DATABASE", ""),
			EmulatorHost: envconfig.Get("FIRESTORE_EMULATOR_HOST", ""),
		},
		Postgres: PostgresConfig{
			URL: envconfig.Get("DATABASE_URL", ""),
		},
	}

	if err := envconfig.Validate(cfg); err != nil {
		return Config{}, err
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.DataStore {
	case DataStoreMemory:
		// no-op
	case DataStoreFirestore:
		if cfg.GCPProjectID == "" {
			return fmt.Errorf("GCP_PROJECT_ID is required when DATASTORE=firestore")
		}
	case DataStorePostgres:
		if cfg.Postgres.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when DATASTORE=postgres")
		}
	default:
		return fmt.Errorf("unsupported datastore: %s", cfg.DataStore)
	}

	switch cfg.Auth.Mode {
	case auth.ModeJWKS:
		if cfg.Auth.JWKSURL == "" {
			return fmt.Errorf("AUTH_JWKS_URL is required when AUTH_MODE=jwks")
		}
	case auth.ModeHMAC:
		if cfg.Auth.Secret == "" {
			return fmt.Errorf("AUTH_JWT_SECRET is required when AUTH_MODE=hmac")
		}
	case auth.ModeNoop:
		if cfg.Env == EnvProduction {
			return fmt.Errorf("AUTH_MODE=noop is not allowed in production")
		}
	default:
		return fmt.Errorf("unsupported auth mode: %s", cfg.Auth.Mode)
	}

	return nil
}
