package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
// It mirrors defaults/tetris.yaml and is used if the embedded file fails to parse.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			TicksPerRow: 30,
		},
		Keys: KeysConfig{
			Left:     []string{"left", "a"},
			Right:    []string{"right", "d"},
			Rotate:   []string{"up", "w"},
			SoftDrop: []string{"down", "s"},
			HardDrop: []string{" "},
			Pause:    []string{"p", "esc"},
			Restart:  []string{"r"},
			Quit:     []string{"q", "ctrl+c"},
		},
		Audio: AudioConfig{
			Enabled:       true,
			Volume:        0.5,
			MinIntervalMs: 500,
			SampleRate:    44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
