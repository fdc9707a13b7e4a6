package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/catalog-tui/internal/catalog"
	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/Veraticus/catalog-tui/internal/config"
	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// loadConfig resolves the configuration from flags, env and config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, common.NewUserError("Invalid configuration", err)
	}
	return cfg, nil
}

// newCatalogClient builds the HTTP client for the configured API.
func newCatalogClient() (*catalog.Client, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}

	client, err := catalog.New(cfg.BaseURL, catalog.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, cfg, common.NewUserError("Invalid catalog API URL", err)
	}
	return client, cfg, nil
}

// remoteError gives a failed catalog call a message fit for the terminal.
func remoteError(action string, err error) error {
	msg := fmt.Sprintf("Failed to %s", action)

	var apiErr *catalog.APIError
	switch {
	case errors.As(err, &apiErr):
		msg = fmt.Sprintf("%s: the catalog API at %s rejected the request (status %d)", msg, viper.GetString("api.base_url"), apiErr.StatusCode)
	case errors.Is(err, common.ErrMalformedResult):
		msg = fmt.Sprintf("%s: the catalog API at %s returned an unreadable response", msg, viper.GetString("api.base_url"))
	case common.IsRemote(err):
		msg = fmt.Sprintf("%s: the catalog API at %s could not be reached", msg, viper.GetString("api.base_url"))
	}
	return common.NewUserError(msg, err)
}

func parsePage(raw string) (int, error) {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidPage, raw)
	}
	return page, nil
}

func requireValue(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s", common.ErrRequiredField, field)
	}
	return value, nil
}

func productArgs(name, categoryID string) (string, string, error) {
	name, err := requireValue("product name", name)
	if err != nil {
		return "", "", err
	}
	categoryID, err = requireValue("category id", categoryID)
	if err != nil {
		return "", "", err
	}
	return name, categoryID, nil
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
