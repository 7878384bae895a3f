package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const climbFile = "climb.yaml"

// LoadClimb loads the climbing configuration.
// Search order: customPath -> ~/.climber/configs/climb.yaml -> ./configs/climb.yaml -> embedded default
//
// Fields missing from a file keep their default values. Only a failure on
// an explicit customPath is reported; broken user or local files are skipped.
func LoadClimb(customPath string) (ClimbConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultClimbConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseClimb(data)
		if err != nil {
			return DefaultClimbConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(climbFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseClimb(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", climbFile)); err == nil {
		if cfg, err := parseClimb(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseClimb(defaultClimbYAML)
	if err != nil {
		return DefaultClimbConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseClimb decodes data over the defaults, rejecting unknown keys.
func parseClimb(data []byte) (ClimbConfig, error) {
	cfg := DefaultClimbConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultClimbConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".climber", "configs", filename)
}
