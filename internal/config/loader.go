package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "pothole.yaml"

// LoadPothole loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/pothole.yaml -> ./configs/pothole.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadPothole(customPath string) (PotholeConfig, error) {
	cfg := DefaultPotholeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", configFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	embedded := DefaultPotholeConfig()
	if err := yaml.Unmarshal(defaultPotholeYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultPotholeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing, malformed or invalid files
// are skipped so the next source in the search order is used.
func tryLoad(path string) (PotholeConfig, bool) {
	cfg := DefaultPotholeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Dump renders cfg as YAML.
func Dump(cfg PotholeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PotholeConfig, preset DifficultyPreset) {
	base, ramp := speedScaleForPreset(preset)
	cfg.Speed.Base *= base
	cfg.Speed.Ramp *= ramp
}
