package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding file settings.
const (
	EnvUndoLevel      = "SOKOBAN_UNDO_LEVEL"
	EnvReplayInterval = "SOKOBAN_REPLAY_INTERVAL"
	EnvLevelsDir      = "SOKOBAN_LEVELS_DIR"
)

// Load loads the configuration. Fields missing from the file keep their
// default values.
// Search order: customPath -> ~/.sokoban/config.yaml -> ./configs/sokoban.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "sokoban.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultConfig()
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment. Unset variables are
// ignored; malformed numbers are an error.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvUndoLevel); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvUndoLevel, v, err)
		}
		cfg.UndoLevel = n
	}
	if v, ok := os.LookupEnv(EnvReplayInterval); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvReplayInterval, v, err)
		}
		cfg.ReplayInterval = n
	}
	if v, ok := os.LookupEnv(EnvLevelsDir); ok && v != "" {
		cfg.LevelsDir = v
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sokoban", filename)
}
