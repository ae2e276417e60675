package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SERVER_ENV", "SERVER_PORT", "DATABASE_DRIVER", "DATABASE_URL",
		"AUTH_JWT_SECRET", "AUTH_ISSUER", "AUTH_AUDIENCE", "AUTH_VERIFY_URL",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 8081
  env: production
database:
  driver: postgres
  url: postgres://localhost/jobs
auth:
  jwt_secret: s3cret
rate_limit:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/jobs", cfg.Database.DSN)
	assert.False(t, cfg.RateLimit.Enabled)
	// untouched defaults survive
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "auth:\n  jwt_secret: from-file\n")
	t.Setenv("AUTH_JWT_SECRET", "from-env")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://env/jobs")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit path must exist")

	_, err = Load(writeConfig(t, "database:\n  driver: postgres\nauth:\n  jwt_secret: x\n"))
	assert.ErrorContains(t, err, "database.url")

	_, err = Load(writeConfig(t, "database:\n  driver: sqlite\nauth:\n  jwt_secret: x\n"))
	assert.ErrorContains(t, err, "unsupported")

	_, err = Load(writeConfig(t, "server:\n  port: 1\n"))
	assert.ErrorContains(t, err, "jwt_secret")

	t.Setenv("SERVER_PORT", "http")
	_, err = Load(writeConfig(t, "auth:\n  jwt_secret: x\n"))
	assert.ErrorContains(t, err, "SERVER_PORT")
}

func TestDefault_IsMemoryBacked(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.True(t, cfg.RateLimit.Enabled)
}
