// Package config provides environment-driven configuration for the server
// and its authentication services.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the top-level server configuration.
type ServerConfig struct {
	Port        int
	DatabaseURL string
}

// NewServerConfig creates the server configuration from environment
// variables. DATABASE_URL is required; PORT defaults to 8080.
func NewServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	cfg := &ServerConfig{
		Port:        port,
		DatabaseURL: databaseURL,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL cannot be empty")
	}
	return nil
}
