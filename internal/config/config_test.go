package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.mymemory.translated.net", cfg.MyMemoryURL)
	assert.Equal(t, 20*time.Second, cfg.UpstreamTimeout)
	assert.Empty(t, cfg.MyMemoryEmail)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MYMEMORY_EMAIL", "ops@example.com")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "ops@example.com", cfg.MyMemoryEmail)
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
}
