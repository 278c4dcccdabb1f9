package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "LEDGER_"
	envFileVar = "LEDGER_CONFIG_FILE"
	keyDelim   = "."
)

// Storage backends understood by storage.NewStorage.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendGCS      = "gcs"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Log      LogConfig      `koanf:"log"`
	Storage  StorageConfig  `koanf:"storage"`
	Postgres PostgresConfig `koanf:"postgres"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	GCS      GCSConfig      `koanf:"gcs"`
	Insights InsightsConfig `koanf:"insights"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type StorageConfig struct {
	Backend string `koanf:"backend"`
	Dir     string `koanf:"dir"`
}

type PostgresConfig struct {
	Address  string `koanf:"address"`
	Port     string `koanf:"port"`
	DB       string `koanf:"db"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// DSN builds the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return "postgres://" + p.Username + ":" + p.Password + "@" + p.Address + ":" +
		p.Port + "/" + p.DB + "?sslmode=disable"
}

type SQLiteConfig struct {
	Path string `koanf:"path"`
}

type GCSConfig struct {
	Bucket string `koanf:"bucket"`
}

type InsightsConfig struct {
	Model string `koanf:"model"`
}

// In all cases the default behavior should be for the docker compose setup
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.port":       "9446",
		"log.level":         "info",
		"storage.backend":   BackendFile,
		"storage.dir":       "data",
		"postgres.address":  "localhost",
		"postgres.port":     "5433",
		"postgres.db":       "postgres",
		"postgres.username": "postgres",
		"postgres.password": "testpassword",
		"sqlite.path":       "data/ledger.db",
		"gcs.bucket":        "",
		"insights.model":    "gemini-2.5-flash",
	}
}

// ProcessEnvironmentVariables layers the defaults, the optional YAML file
// named by LEDGER_CONFIG_FILE and the LEDGER_* environment, in that order.
// LEDGER_POSTGRES_ADDRESS overrides postgres.address and so on.
func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(keyDelim)

	if err := k.Load(confmap.Provider(defaults(), keyDelim), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if path := os.Getenv(envFileVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, keyDelim, envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func envKey(s string) string {
	if s == envFileVar {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", keyDelim)
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendPostgres, BackendSQLite:
	case BackendGCS:
		if c.GCS.Bucket == "" {
			return fmt.Errorf("config: storage backend %q needs gcs.bucket", BackendGCS)
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
