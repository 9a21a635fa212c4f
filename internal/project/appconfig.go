package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.traveling-salesman/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".traveling-salesman")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.toml")
}

// SaveAppConfig persists an AppConfig to the given path as TOML.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Keys missing from the file keep their default values.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	if _, err := toml.DecodeFile(path, &config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	// Ensure RecentImports is never nil
	if config.RecentImports == nil {
		config.RecentImports = []string{}
	}
	return config, nil
}
