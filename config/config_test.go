package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, AuthModePermissive, cfg.Auth.Mode)
	assert.False(t, cfg.Auth.Strict())
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, RevocationMemory, cfg.Revocation.Backend)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://postgres:@localhost:5432/healthone?sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 8080
auth:
  mode: strict
  jwt_secret: from-file
database:
  driver: memory
`)
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Auth.Strict())
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
}

func TestLoadConfig_JWTSecretAlias(t *testing.T) {
	t.Setenv("JWT_SECRET", "legacy")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.Auth.JWTSecret)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing secret", nil, "auth.jwt_secret is required"},
		{"bad mode", map[string]string{"AUTH_JWT_SECRET": "x", "AUTH_MODE": "lenient"}, "auth.mode"},
		{"bad driver", map[string]string{"AUTH_JWT_SECRET": "x", "DATABASE_DRIVER": "mongo"}, "unknown database.driver"},
		{"redis without url", map[string]string{"AUTH_JWT_SECRET": "x", "REVOCATION_BACKEND": "redis"}, "revocation.redis_url"},
		{"short token ttl", map[string]string{"AUTH_JWT_SECRET": "x", "AUTH_TOKEN_TTL": "1h"}, "auth.token_ttl must be 168h0m0s"},
		{"bcrypt cost", map[string]string{"AUTH_JWT_SECRET": "x", "AUTH_BCRYPT_COST": "4"}, "auth.bcrypt_cost must be 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDSN_PrefersURL(t *testing.T) {
	c := DatabaseConfig{URL: "postgres://u:p@db/x", Host: "ignored"}
	assert.Equal(t, "postgres://u:p@db/x", c.DSN())
}
