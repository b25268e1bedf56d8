package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ":8080", cfg.Server.Address())
	assert.Equal(t, "main:latest", cfg.Server.APIVersion)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenLifetime)
	assert.Equal(t, 24*time.Hour, cfg.Auth.VerificationTokenLifetime)
	assert.Equal(t, 5*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.MaxFileSize)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:8080"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "host=localhost port=5432 user=heritage password=heritage dbname=heritage sslmode=disable",
		cfg.Database.ConnectionString())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "auth override",
			envVars: map[string]string{
				"AUTH_TOKEN_LIFETIME": "1h",
				"AUTH_KEY_PAIR_PATH":  "/tmp/key",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, time.Hour, cfg.Auth.TokenLifetime)
				assert.Equal(t, "/tmp/key", cfg.Auth.KeyPairPath)
			},
		},
		{
			name: "production environment",
			envVars: map[string]string{
				"ENVIRONMENT":    "production",
				"MAIL_API_KEY":   "key-123",
				"MAIL_TIMEOUT":   "2s",
				"MAIL_EU_REGION": "true",
			},
			expected: func(cfg *Config) {
				assert.True(t, cfg.IsProduction())
				assert.Equal(t, "key-123", cfg.Mail.APIKey)
				assert.Equal(t, 2*time.Second, cfg.Mail.Timeout)
				assert.True(t, cfg.Mail.EURegion)
			},
		},
		{
			name: "minio storage",
			envVars: map[string]string{
				"STORAGE_DRIVER":  "minio",
				"STORAGE_BUCKET":  "posts",
				"STORAGE_USE_SSL": "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "minio", cfg.Storage.Driver)
				assert.Equal(t, "posts", cfg.Storage.Bucket)
				assert.True(t, cfg.Storage.UseSSL)
			},
		},
		{
			name: "redis and origins",
			envVars: map[string]string{
				"REDIS_ADDR":             "localhost:6379",
				"REDIS_RATE_LIMIT":       "3",
				"SERVER_ALLOWED_ORIGINS": "https://a.example,https://b.example",
				"SERVER_API_VERSION":     "v1.4.0",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, int64(3), cfg.Redis.Limit)
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, "v1.4.0", cfg.Server.APIVersion)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestLoad_UnknownStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "ftp")

	_, err := Load()
	assert.Error(t, err)
}
