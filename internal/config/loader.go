package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the engine configuration.
// Search order: customPath -> ~/.tennis/configs/tennis.yaml -> ./configs/tennis.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// An explicit path must exist and parse; errors are not swallowed.
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath("tennis.yaml"); userPath != "" {
		if cfg, err := loadFile(userPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "tennis.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(defaultTennisYAML, &cfg); err != nil {
		return DefaultConfig(), nil // fall back to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tennis", "configs", filename)
}
