package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicedesk/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.NotEmpty(t, cfg.Settings.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVOICEDESK_API_BASE_URL", "https://billing.internal:8443")
	t.Setenv("INVOICEDESK_API_TIMEOUT", "5s")
	t.Setenv("INVOICEDESK_LOG_LEVEL", "debug")
	t.Setenv("INVOICEDESK_LOG_FORMAT", "json")
	t.Setenv("INVOICEDESK_EXPORT_DIR", "/tmp/exports")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://billing.internal:8443", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
}
