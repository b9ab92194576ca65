// Package config provides YAML-based configuration loading for the game:
// board size, gravity, key bindings and audio cues.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Keys    KeysConfig    `yaml:"keys"`
	Audio   AudioConfig   `yaml:"audio"`
}

// BoardConfig defines the playing field in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the fixed fall speed.
type GravityConfig struct {
	TicksPerRow int `yaml:"ticks_per_row"` // Simulation ticks between automatic drops
}

// KeysConfig lists the key names bound to each action.
// Names use Bubble Tea's key strings ("left", "a", "ctrl+c", " ").
type KeysConfig struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Rotate   []string `yaml:"rotate"`
	SoftDrop []string `yaml:"soft_drop"`
	HardDrop []string `yaml:"hard_drop"`
	Pause    []string `yaml:"pause"`
	Restart  []string `yaml:"restart"`
	Quit     []string `yaml:"quit"`
}

// AudioConfig defines the synthesized sound cues.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Volume        float64 `yaml:"volume"`          // 0.0 - 1.0
	MinIntervalMs int     `yaml:"min_interval_ms"` // Cues closer together are dropped
	SampleRate    int     `yaml:"sample_rate"`
}

// Validation errors.
var (
	ErrBoardTooSmall = errors.New("config: board must be at least 4x4")
	ErrGravity       = errors.New("config: gravity.ticks_per_row must be positive")
	ErrNoKeys        = errors.New("config: every action needs at least one key")
	ErrAudio         = errors.New("config: invalid audio settings")
)

// Validate checks that the configuration can drive a game.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return fmt.Errorf("%w (got %dx%d)", ErrBoardTooSmall, c.Board.Width, c.Board.Height)
	}
	if c.Gravity.TicksPerRow <= 0 {
		return ErrGravity
	}

	bindings := map[string][]string{
		"left":      c.Keys.Left,
		"right":     c.Keys.Right,
		"rotate":    c.Keys.Rotate,
		"soft_drop": c.Keys.SoftDrop,
		"hard_drop": c.Keys.HardDrop,
		"pause":     c.Keys.Pause,
		"restart":   c.Keys.Restart,
		"quit":      c.Keys.Quit,
	}
	for name, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("%w: %s", ErrNoKeys, name)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f outside [0, 1]", ErrAudio, c.Audio.Volume)
	}
	if c.Audio.MinIntervalMs < 0 {
		return fmt.Errorf("%w: negative min_interval_ms", ErrAudio)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be positive", ErrAudio)
	}
	return nil
}
