package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPuyo loads puyo configuration.
// Search order: customPath -> ~/.arcade/configs/puyo.yaml -> ./configs/puyo.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides the keys it sets.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped when broken.
func LoadPuyo(customPath string) (PuyoConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PuyoConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parsePuyo(data)
		if err != nil {
			return PuyoConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("puyo.yaml"), filepath.Join("configs", "puyo.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parsePuyo(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parsePuyo(GetDefaultYAML("puyo"))
	if err != nil {
		return DefaultPuyoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePuyo decodes YAML over the embedded defaults and validates the result.
func parsePuyo(data []byte) (PuyoConfig, error) {
	cfg := DefaultPuyoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PuyoConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PuyoConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c PuyoConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
