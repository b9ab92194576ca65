package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory under $HOME.
const configDirName = ".arcade-tetris"

// configFileName is the file looked up in the user and local config directories.
const configFileName = "tetris.yaml"

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.arcade-tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files only need to set the fields they change; the rest keeps default values.
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "configs", filename)
}

// UserDataDir returns ~/.arcade-tetris, or empty if home is unavailable.
func UserDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName)
}

// Overrides carries command-line values that replace loaded settings.
// Zero fields are ignored.
type Overrides struct {
	Width       int
	Height      int
	TicksPerRow int
	Mute        bool
}

// Apply writes the non-zero overrides into cfg and re-validates it.
func (o Overrides) Apply(cfg *TetrisConfig) error {
	if o.Width > 0 {
		cfg.Board.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Board.Height = o.Height
	}
	if o.TicksPerRow > 0 {
		cfg.Gravity.TicksPerRow = o.TicksPerRow
	}
	if o.Mute {
		cfg.Audio.Enabled = false
	}
	return cfg.Validate()
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
