// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/spf13/viper"
)

// Default values for the catalog client.
const (
	DefaultBaseURL             = "http://localhost:5000"
	DefaultTimeout             = 30 * time.Second
	DefaultPageSize            = 10
	DefaultNotificationTimeout = 3000 * time.Millisecond
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "console"
	DefaultLogFile             = "~/.config/catalog/catalog.log"
	DefaultTheme               = "default"
)

// Config holds the resolved application configuration.
type Config struct {
	Logging             LoggingConfig
	BaseURL             string
	Theme               string
	Timeout             time.Duration
	NotificationTimeout time.Duration
	PageSize            int
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string
	Format string
	// File is empty when logs go to stderr.
	File string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("ui.page_size", DefaultPageSize)
	v.SetDefault("ui.notification_timeout", DefaultNotificationTimeout)
	v.SetDefault("ui.theme", DefaultTheme)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("logging.file", "")
}

// Load reads and validates configuration from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		BaseURL:             v.GetString("api.base_url"),
		Timeout:             v.GetDuration("api.timeout"),
		PageSize:            v.GetInt("ui.page_size"),
		NotificationTimeout: v.GetDuration("ui.notification_timeout"),
		Theme:               v.GetString("ui.theme"),
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url", common.ErrMissingConfig)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api.base_url %q is not an absolute URL", common.ErrInvalidConfig, c.BaseURL)
	}

	if c.PageSize < 1 {
		return fmt.Errorf("%w: ui.page_size must be positive, got %d", common.ErrInvalidConfig, c.PageSize)
	}

	if c.Timeout < 0 || c.NotificationTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", common.ErrInvalidConfig)
	}

	return nil
}
