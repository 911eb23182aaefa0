package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadConfigFromEnv reads DB_* environment variables, falling back to
// defaults that match the docker-compose development setup.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Host:            envOr("DB_HOST", "localhost"),
		User:            envOr("DB_USER", "rcad"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        envOr("DB_NAME", "rcad"),
		SSLMode:         envOr("DB_SSLMODE", "disable"),
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	var err error
	if cfg.Port, err = strconv.Atoi(envOr("DB_PORT", "5432")); err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	if cfg.MaxOpenConns, err = strconv.Atoi(envOr("DB_MAX_OPEN_CONNS", "10")); err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.MaxIdleConns, err = strconv.Atoi(envOr("DB_MAX_IDLE_CONNS", "5")); err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
