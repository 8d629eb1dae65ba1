package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	API      APIConfig
	Log      LogConfig
	Export   ExportConfig
	Settings SettingsConfig
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExportConfig holds settings for generated files (spreadsheets, PDFs).
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// SettingsConfig holds the location of the persisted UI preferences file.
type SettingsConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from environment variables with the
// INVOICEDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOICEDESK")
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.timeout", "30s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("export.dir", ".")
	v.SetDefault("settings.path", defaultSettingsPath())

	envBindings := map[string]string{
		"api.base_url":  "INVOICEDESK_API_BASE_URL",
		"api.timeout":   "INVOICEDESK_API_TIMEOUT",
		"log.level":     "INVOICEDESK_LOG_LEVEL",
		"log.format":    "INVOICEDESK_LOG_FORMAT",
		"export.dir":    "INVOICEDESK_EXPORT_DIR",
		"settings.path": "INVOICEDESK_SETTINGS_PATH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.API = APIConfig{
		BaseURL: v.GetString("api.base_url"),
		Timeout: v.GetDuration("api.timeout"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Export = ExportConfig{
		Dir: v.GetString("export.dir"),
	}
	cfg.Settings = SettingsConfig{
		Path: v.GetString("settings.path"),
	}
	return cfg, nil
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".invoicedesk-settings.json"
	}
	return filepath.Join(dir, "invoicedesk", "settings.json")
}
