package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_FILE", "/etc/doccatalog/seed.yaml")
	t.Setenv("SEED_DEFAULTS", "false")
	t.Setenv("LOG_FORMAT", "console")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/etc/doccatalog/seed.yaml", cfg.Seed.File)
	assert.False(t, cfg.Seed.Defaults)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "SEED_FILE", "SEED_DEFAULTS", "LOG_LEVEL", "LOG_FORMAT", "OTEL_SERVICE_NAME"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "doccatalog", cfg.ServiceName)
	assert.True(t, cfg.Seed.Defaults)
	assert.Empty(t, cfg.Seed.File)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}
