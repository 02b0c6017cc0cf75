package config

import (
	"os"
	"strconv"
	"strings"

	"sheetex/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Decode DecodeConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DecodeConfig holds tabular file decoding settings
type DecodeConfig struct {
	// FallbackEncodings are the legacy text encodings tried, in order, when
	// CSV content is not valid UTF-8. The default matches the original
	// deployment locale; override via TABLE_FALLBACK_ENCODINGS.
	FallbackEncodings []string

	// MaxUploadBytes caps the size of files accepted over HTTP.
	MaxUploadBytes int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Decode: DecodeConfig{
			FallbackEncodings: splitList(getEnvOrDefault("TABLE_FALLBACK_ENCODINGS", "gbk")),
			MaxUploadBytes:    int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 50)) * 1024 * 1024,
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Decode.MaxUploadBytes <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	return nil
}

// splitList parses a comma-separated env value into trimmed, non-empty entries
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
