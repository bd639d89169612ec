// Package config loads application configuration from file and
// environment and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Places PlacesConfig `yaml:"places" mapstructure:"places"`
	Search SearchConfig `yaml:"search" mapstructure:"search"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the state persistence backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	Path        string `yaml:"path" mapstructure:"path"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// PlacesConfig holds provider API settings. The key may also come from
// the onboarding profile; this value wins when both are set.
type PlacesConfig struct {
	APIKey  string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// SearchConfig holds the default search parameters.
type SearchConfig struct {
	Profile      string `yaml:"profile" mapstructure:"profile"`
	BusinessType string `yaml:"business_type" mapstructure:"business_type"`
}

// ServerConfig configures the presentation HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PROSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Every key needs a default so AutomaticEnv can bind it
	// during Unmarshal.
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "prospect.db")
	v.SetDefault("store.database_url", "")
	v.SetDefault("places.api_key", "")
	v.SetDefault("places.base_url", "")
	v.SetDefault("search.profile", "hyperlocal")
	v.SetDefault("search.business_type", "all")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

// apiKeyPrefix is the fixed prefix Google Maps platform keys carry.
const apiKeyPrefix = "AIza"

// ValidateAPIKey is a client-side sanity gate on the provider key
// format, not a cryptographic check.
func ValidateAPIKey(key string) error {
	if len(key) < 35 || !strings.HasPrefix(key, apiKeyPrefix) {
		return eris.New("config: API key must be at least 35 characters and start with " + apiKeyPrefix)
	}
	return nil
}
