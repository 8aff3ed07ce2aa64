// Package config reads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Config holds the ledger settings.
type Config struct {
	Backend       string // csv or sqlite
	MembersPath   string // csv backend
	PaymentsPath  string // csv backend
	DBPath        string // sqlite backend
	CascadeDelete bool   // deleting a member also deletes their payments
	MetricsFile   string // Prometheus textfile written at exit; empty disables
	LogLevel      string
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}

// Load loads .env (if present) without overriding variables already set,
// then reads the configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from the environment.
func FromEnv() (*Config, error) {
	dataDir := getEnv("LEDGER_DATA_DIR", ".")

	cfg := &Config{
		Backend:      strings.ToLower(getEnv("LEDGER_BACKEND", BackendCSV)),
		MembersPath:  resolve(dataDir, getEnv("LEDGER_MEMBERS_FILE", "members.csv")),
		PaymentsPath: resolve(dataDir, getEnv("LEDGER_PAYMENTS_FILE", "payments.csv")),
		DBPath:       resolve(dataDir, getEnv("LEDGER_DB_PATH", filepath.Join("data", "ledger.db"))),
		MetricsFile:  os.Getenv("LEDGER_METRICS_FILE"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	cascade, err := getEnvBool("LEDGER_CASCADE_DELETE", true)
	if err != nil {
		return nil, err
	}
	cfg.CascadeDelete = cascade

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendCSV, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported LEDGER_BACKEND %q (want %s or %s)", c.Backend, BackendCSV, BackendSQLite)
	}
}

// resolve joins relative paths onto dir.
func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
