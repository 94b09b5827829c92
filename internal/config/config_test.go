package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CURIO_PRIMARY.ENV", "test")
	t.Setenv("CURIO_SERVER.PORT", "8080")
	t.Setenv("CURIO_SERVER.READ_TIMEOUT", "10")
	t.Setenv("CURIO_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("CURIO_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("CURIO_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("CURIO_DATABASE.HOST", "localhost")
	t.Setenv("CURIO_DATABASE.PORT", "5432")
	t.Setenv("CURIO_DATABASE.USER", "curio")
	t.Setenv("CURIO_DATABASE.PASSWORD", "secret")
	t.Setenv("CURIO_DATABASE.NAME", "curio")
	t.Setenv("CURIO_DATABASE.SSL_MODE", "disable")
}

func TestNew_LoadsFromEnv(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestNew_MissingRequiredValue(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CURIO_DATABASE.HOST", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}

func TestNew_RejectsUnknownEnvName(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CURIO_PRIMARY.ENV", "sandbox")

	_, err := New()
	require.Error(t, err)
}
