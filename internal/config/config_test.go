// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-32-bytes-long!!!"

func setRequired(t *testing.T) {
	t.Helper()
	require.NoError(t, os.Setenv("ALUMNI_TOKEN_SECRET", testSecret))
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./data/alumni.db", cfg.DBPath)
	assert.Equal(t, "localhost", cfg.ServerHost)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "./uploads", cfg.UploadsDir)
	assert.Equal(t, "./content", cfg.ContentDir)
	assert.Equal(t, 24, cfg.SessionLifetime)
	assert.False(t, cfg.DoSeed)
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	setRequired(t)
	require.NoError(t, os.Setenv("ALUMNI_DB_PATH", "/custom/path.db"))
	require.NoError(t, os.Setenv("ALUMNI_SERVER_HOST", "0.0.0.0"))
	require.NoError(t, os.Setenv("ALUMNI_SERVER_PORT", "3000"))
	require.NoError(t, os.Setenv("ALUMNI_ENV", "production"))
	require.NoError(t, os.Setenv("ALUMNI_LOG_LEVEL", "debug"))
	require.NoError(t, os.Setenv("ALUMNI_REDIS_URL", "redis://localhost:6379/0"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/custom/path.db", cfg.DBPath)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, 3000, cfg.ServerPort)
	assert.True(t, cfg.UseRedisCache())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_MissingSecret(t *testing.T) {
	os.Clearenv()

	_, err := Load()
	assert.Error(t, err, "Load() should fail when ALUMNI_TOKEN_SECRET is missing")
}

func TestLoad_ShortSecret(t *testing.T) {
	os.Clearenv()
	require.NoError(t, os.Setenv("ALUMNI_TOKEN_SECRET", "too-short"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALUMNI_TOKEN_SECRET", "error should name the offending variable")
}

func TestLoad_WeakSecret(t *testing.T) {
	os.Clearenv()
	require.NoError(t, os.Setenv("ALUMNI_TOKEN_SECRET", "change-me-to-32-byte-secret-key!"))

	_, err := Load()
	assert.Error(t, err, "Load() should reject a known weak secret")
}

func TestServerAddr(t *testing.T) {
	cfg := Config{ServerHost: "localhost", ServerPort: 9090}
	assert.Equal(t, "localhost:9090", cfg.ServerAddr())
}

func TestHasMinimumEntropy(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   bool
	}{
		{"three classes", "Abc123def456ghi789jkl012mno345pq", true},
		{"lowercase only", "abcdefghijklmnopqrstuvwxyzabcdef", false},
		{"lower and digits", "abc123def456ghi789jkl012mno345pq", false},
		{"with specials", "abc-123-def-456-ghi-789-jkl-012!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasMinimumEntropy(tt.secret))
		})
	}
}
