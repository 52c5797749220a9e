package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrMissingURI is returned when no store connection string is configured.
// This is fatal at initialization; nothing can be retried.
var ErrMissingURI = errors.New("store uri is not configured (set MONGO_URI)")

// Store holds the document store connection settings.
type Store struct {
	URI        string        `koanf:"uri"`
	Database   string        `koanf:"db"`
	Collection string        `koanf:"collection"`
	Timeout    time.Duration `koanf:"timeout"` // bound on each storage round-trip
}

// Load loads the store configuration: defaults, then an optional YAML file,
// then environment variables. A .env file in the working directory is
// honored first, so MONGO_URI may live there instead of the process
// environment.
//
// Environment names map under the MONGO_ prefix: MONGO_URI, MONGO_DB,
// MONGO_COLLECTION, MONGO_TIMEOUT.
func Load(configPath string) (*Store, error) {
	// Missing .env is fine; explicit settings win anyway.
	_ = godotenv.Load()

	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"uri":        "",
		"db":         "requests",
		"collection": "request",
		"timeout":    "10s",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	// 2. Load from file
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// 3. Load from Environment Variables
	// MONGO_URI overrides uri, MONGO_DB overrides db, and so on.
	if err := k.Load(env.Provider("MONGO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "MONGO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Store
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.URI == "" {
		return nil, ErrMissingURI
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &cfg, nil
}
