/**
 * @description
 * Configuration loader for the PaintCompare backend.
 * Responsible for reading environment variables, setting defaults, and performing validation.
 *
 * @dependencies
 * - github.com/joho/godotenv: For loading .env files
 * - standard "os": For reading env vars
 *
 * @notes
 * - The JSONBin master key is optional at startup; backup routes report a
 *   configuration error when it is missing instead of crashing the server.
 */

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	JSONBin JSONBinConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
	Env  string // "development" or "production"
}

// RedisConfig holds Redis settings
type RedisConfig struct {
	URL string
}

// JSONBinConfig holds JSONBin.io backup settings
type JSONBinConfig struct {
	BaseURL   string
	MasterKey string
	BinID     string // Optional, when set Sync updates this bin in place
}

// Load reads .env file and populates the Config struct
func Load() (*Config, error) {
	// Attempt to load .env, but don't crash if it fails (prod might inject env vars directly)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("GO_ENV", "development"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		JSONBin: JSONBinConfig{
			BaseURL:   getEnv("JSONBIN_BASE_URL", "https://api.jsonbin.io/v3"),
			MasterKey: sanitizeCredential(getEnv("JSONBIN_MASTER_KEY", "")),
			BinID:     getEnv("JSONBIN_BIN_ID", ""),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks for required variables
func validate(cfg *Config) error {
	if cfg.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}
	if cfg.JSONBin.MasterKey == "" && cfg.Server.Env != "test" {
		fmt.Println("Warning: JSONBIN_MASTER_KEY is missing. Backup routes will be unavailable.")
	}
	return nil
}

// Helper to get env var with default
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func sanitizeCredential(value string) string {
	trimmed := strings.TrimSpace(value)
	return strings.Trim(trimmed, "\"")
}
