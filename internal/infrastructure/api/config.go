// Package api implements the typed HTTP client for the storefront's
// backend REST API. All business logic (pricing, inventory, order
// processing, token issuance) lives behind this client.
package api

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

const (
	// defaultTimeout bounds every backend call
	defaultTimeout = 15 * time.Second
	// defaultMaxResponseBytes limits the response body size to prevent
	// memory exhaustion
	defaultMaxResponseBytes = 10 * 1024 * 1024 // 10MB
)

// Errors for client configuration
var (
	ErrConfigMissingBaseURL = errors.New("api: base URL is required")
	ErrConfigInvalidBaseURL = errors.New("api: base URL is invalid")
)

// Config holds configuration for the backend API client
type Config struct {
	// BaseURL is the backend API root, e.g. "https://api.example.com/api/v1"
	BaseURL string
	// Timeout is the HTTP request timeout
	Timeout time.Duration
	// MaxResponseBytes limits how much of a response body is read
	MaxResponseBytes int64
}

// NewConfig creates a client configuration with defaults
func NewConfig(baseURL string) *Config {
	return &Config{
		BaseURL:          baseURL,
		Timeout:          defaultTimeout,
		MaxResponseBytes: defaultMaxResponseBytes,
	}
}

// Validate validates the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ErrConfigInvalidBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxResponseBytes <= 0 {
		c.MaxResponseBytes = defaultMaxResponseBytes
	}
	return nil
}
