package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// configEnvKeys lists every variable LoadConfig reads, so tests can start
// from a clean environment.
var configEnvKeys = []string{
	"DB_USER", "DB_PASSWORD", "DB_NAME", "DB_HOST", "DB_PORT", "DB_POOL_SIZE",
	"JWT_SECRET", "JWT_ACCESS_TOKEN_DURATION", "BCRYPT_COST",
	"PORT", "CORS_ALLOWED_ORIGINS", "MIGRATIONS_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		// t.Setenv registers restoration of the original value; the unset
		// afterwards gives the test a clean slate.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "recipebox")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "recipebox")
	t.Setenv("JWT_SECRET", "test-signing-key")
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 10, cfg.DB.MaxSize)
	assert.Equal(t, "test-signing-key", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "./migrations", cfg.MigrationsPath)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig()
	require.Error(t, err)

	// All missing variables are reported at once.
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_POOL_SIZE", "25")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "30m")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("MIGRATIONS_PATH", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxSize)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "", cfg.MigrationsPath)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	clearEnv(t)
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.Contains(t, err.Error(), "JWT_ACCESS_TOKEN_DURATION")
}

func TestLoadConfigClampsOutOfRangeValues(t *testing.T) {
	clearEnv(t)
	setRequiredEnv(t)
	t.Setenv("DB_POOL_SIZE", "1000")
	t.Setenv("BCRYPT_COST", "99")

	// Out-of-range values are reported as configuration errors rather
	// than silently accepted.
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_POOL_SIZE")
	assert.Contains(t, err.Error(), "BCRYPT_COST")
}
