package tui

import (
	"context"
	"time"

	"github.com/Veraticus/catalog-tui/internal/controller"
	"github.com/Veraticus/catalog-tui/internal/service"
	"github.com/Veraticus/catalog-tui/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme               themes.Theme
	Catalog             service.Catalog
	Context             context.Context
	NotificationTimeout time.Duration
	Width               int
	Height              int
	PageSize            int
	MouseSupport        bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:               themes.Default,
		Context:             context.Background(),
		NotificationTimeout: controller.NotificationTimeout,
		Width:               100,
		Height:              32,
		PageSize:            10,
		MouseSupport:        true,
	}
}

// WithCatalog sets the catalog service.
func WithCatalog(catalog service.Catalog) Option {
	return func(c *Config) {
		c.Catalog = catalog
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithPageSize sets how many products are fetched per page.
func WithPageSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.PageSize = size
		}
	}
}

// WithNotificationTimeout sets how long notifications stay on screen.
func WithNotificationTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.NotificationTimeout = d
	}
}

// WithContext sets the context used for catalog requests.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Context = ctx
		}
	}
}

// WithMouse enables or disables mouse support.
func WithMouse(enabled bool) Option {
	return func(c *Config) {
		c.MouseSupport = enabled
	}
}
