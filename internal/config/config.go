// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath      string `env:"ALUMNI_DB_PATH" envDefault:"./data/alumni.db"`
	TokenSecret string `env:"ALUMNI_TOKEN_SECRET,required"` // HS256 signing secret for API bearer tokens
	ServerHost  string `env:"ALUMNI_SERVER_HOST" envDefault:"localhost"`
	ServerPort  int    `env:"ALUMNI_SERVER_PORT" envDefault:"8080"`
	Env         string `env:"ALUMNI_ENV" envDefault:"development"`
	LogLevel    string `env:"ALUMNI_LOG_LEVEL" envDefault:"info"`
	UploadsDir  string `env:"ALUMNI_UPLOADS_DIR" envDefault:"./uploads"`
	ContentDir  string `env:"ALUMNI_CONTENT_DIR" envDefault:"./content"` // flat JSON content blobs (reunion page)

	// Session configuration (server-side scs sessions need no signing key)
	SessionLifetime int `env:"ALUMNI_SESSION_LIFETIME" envDefault:"24"` // Browser session lifetime in hours

	// Cache configuration
	RedisURL     string `env:"ALUMNI_REDIS_URL"` // Optional Redis URL for distributed caching
	CachePrefix  string `env:"ALUMNI_CACHE_PREFIX" envDefault:"alumni:"`
	CacheTTL     int    `env:"ALUMNI_CACHE_TTL" envDefault:"300"` // Default cache TTL in seconds
	CacheMaxSize int    `env:"ALUMNI_CACHE_MAX_SIZE" envDefault:"1000"`

	// Seeding configuration
	DoSeed bool `env:"ALUMNI_DO_SEED" envDefault:"false"` // Enable database seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// MinSecretLength is the minimum required length for signing secrets.
const MinSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.TokenSecret) < MinSecretLength {
		return nil, fmt.Errorf("ALUMNI_TOKEN_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSecretLength, len(cfg.TokenSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.TokenSecret == weak {
			return nil, fmt.Errorf("ALUMNI_TOKEN_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.TokenSecret) {
		slog.Warn("ALUMNI_TOKEN_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
