package config

import (
	"os"
	"strconv"

	"stocklens/domain/analytics"
	"stocklens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Engine   EngineConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // seconds
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// EngineConfig holds the analytics engine tunables: the quiet-hours window,
// the CV class boundaries and the auto-zoom sensitivity. All adjustable per
// deployment without code changes.
type EngineConfig struct {
	QuietStartHour      int
	QuietEndHour        int
	CVStableMax         float64
	CVVariableMax       float64
	AutoZoomSensitivity float64
	DefaultHistoryDays  int
	DefaultReconHours   int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}

	config := &Config{
		Database: *dbConfig,
		Server:   ServerConfig{Port: getEnvOrDefault("PORT", "8080")},
		Engine:   loadEngineConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	return &DatabaseConfig{
		URL:             url,
		MaxOpenConns:    getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvIntOrDefault("DB_CONN_MAX_LIFETIME", 300),
	}, nil
}

func loadEngineConfig() EngineConfig {
	defaults := analytics.DefaultConfig()
	return EngineConfig{
		QuietStartHour:      getEnvIntOrDefault("QUIET_START_HOUR", defaults.QuietStartHour),
		QuietEndHour:        getEnvIntOrDefault("QUIET_END_HOUR", defaults.QuietEndHour),
		CVStableMax:         getEnvFloatOrDefault("CV_STABLE_MAX", defaults.CVStableMax),
		CVVariableMax:       getEnvFloatOrDefault("CV_VARIABLE_MAX", defaults.CVVariableMax),
		AutoZoomSensitivity: getEnvFloatOrDefault("AUTO_ZOOM_SENSITIVITY", defaults.AutoZoomSensitivity),
		DefaultHistoryDays:  getEnvIntOrDefault("DEFAULT_HISTORY_DAYS", 30),
		DefaultReconHours:   getEnvIntOrDefault("DEFAULT_RECON_HOURS", 168),
	}
}

// AnalyticsConfig converts engine settings to the domain config.
func (e EngineConfig) AnalyticsConfig() analytics.Config {
	return analytics.Config{
		QuietStartHour:      e.QuietStartHour,
		QuietEndHour:        e.QuietEndHour,
		CVStableMax:         e.CVStableMax,
		CVVariableMax:       e.CVVariableMax,
		AutoZoomSensitivity: e.AutoZoomSensitivity,
	}
}

func validateConfig(c *Config) error {
	if c.Engine.QuietStartHour < 0 || c.Engine.QuietStartHour > 23 {
		return errors.ConfigInvalid("QUIET_START_HOUR must be in [0, 23]")
	}
	if c.Engine.QuietEndHour < 0 || c.Engine.QuietEndHour > 23 {
		return errors.ConfigInvalid("QUIET_END_HOUR must be in [0, 23]")
	}
	if c.Engine.CVStableMax <= 0 || c.Engine.CVVariableMax <= c.Engine.CVStableMax {
		return errors.ConfigInvalid("CV thresholds must satisfy 0 < CV_STABLE_MAX < CV_VARIABLE_MAX")
	}
	if c.Engine.AutoZoomSensitivity <= 0 || c.Engine.AutoZoomSensitivity >= 1 {
		return errors.ConfigInvalid("AUTO_ZOOM_SENSITIVITY must be in (0, 1)")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloatOrDefault(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
