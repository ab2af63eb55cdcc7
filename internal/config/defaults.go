package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:    20,
			Height:   15,
			CellSize: 30,
		},
		Movement: SnakeMovement{
			Interval: 150 * time.Millisecond,
		},
		Food: SnakeFood{
			AvoidSnake: false,
		},
		Start: SnakeStart{
			X: 5,
			Y: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
