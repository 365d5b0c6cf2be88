package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "hangman.yaml"

// LoadHangman loads the hangman configuration.
// Search order: customPath -> ~/.hangman/configs/hangman.yaml -> ./configs/hangman.yaml -> embedded default
//
// Files are decoded over the hardcoded defaults, so a file only needs the
// fields it changes. An explicit customPath must exist and be valid; the
// implicit locations are skipped when missing or invalid.
func LoadHangman(customPath string) (HangmanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HangmanConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseHangman(data)
		if err != nil {
			return HangmanConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseHangman(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parseHangman(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseHangman(defaultHangmanYAML)
	if err != nil {
		return DefaultHangmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseHangman decodes data over the defaults and validates the result.
func parseHangman(data []byte) (HangmanConfig, error) {
	cfg := DefaultHangmanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HangmanConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HangmanConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", "configs", filename)
}
