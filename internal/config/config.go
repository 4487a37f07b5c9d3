// Package config manages persistent application configuration.
// The config lives as JSON under ~/.dealspot and holds the handful of
// settings that survive restarts; everything else is per-run state.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	apperrors "github.com/yaared/dealspot/internal/errors"
)

// EnvBaseURL is the environment variable that overrides the deal service
// base URL. It takes precedence over the config file but not over the
// --base-url flag.
const EnvBaseURL = "DEALSPOT_API_URL"

// Config holds the application configuration
type Config struct {
	BaseURL              string `json:"base_url,omitempty"`              // Deal service base URL override
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when an answer arrives
	Theme                string `json:"theme,omitempty"`                 // Reserved for future theme support

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dealspot"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist.
// A .env file in the working directory is honored for the base URL override.
func Load() (*Config, error) {
	// Missing .env is the normal case
	_ = godotenv.Load()

	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path (used by tests).
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return nil, apperrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.ConfigLoadFailed(path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets the environment override file-based settings.
func (c *Config) applyEnv() {
	if url := os.Getenv(EnvBaseURL); url != "" {
		c.BaseURL = url
	}
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return apperrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return apperrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetBaseURL returns the configured base URL, or empty string when the
// built-in default should be used.
func (c *Config) GetBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BaseURL
}

// SetBaseURL sets the deal service base URL override.
func (c *Config) SetBaseURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BaseURL = url
}

// GetNotificationsEnabled returns whether desktop notifications are enabled.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled toggles desktop notifications.
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
