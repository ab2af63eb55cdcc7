// Package config provides YAML-based game configuration loading for the
// snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid     SnakeGrid     `yaml:"grid"`
	Movement SnakeMovement `yaml:"movement"`
	Food     SnakeFood     `yaml:"food"`
	Start    SnakeStart    `yaml:"start"`
}

// SnakeGrid defines the playfield dimensions.
type SnakeGrid struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"` // Render-space units per cell
}

// SnakeMovement defines how often the snake advances.
type SnakeMovement struct {
	Interval time.Duration `yaml:"interval"`
}

// SnakeFood defines food placement rules.
type SnakeFood struct {
	// AvoidSnake restricts food to cells the snake does not occupy.
	// Off by default: food may appear under the body.
	AvoidSnake bool `yaml:"avoid_snake"`
}

// SnakeStart is the head cell the snake starts from and returns to on restart.
type SnakeStart struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %g", c.Grid.CellSize))
	}
	if c.Movement.Interval <= 0 {
		errs = append(errs, fmt.Errorf("movement.interval must be positive, got %s", c.Movement.Interval))
	}
	if c.Start.X < 0 || c.Start.X >= c.Grid.Width || c.Start.Y < 0 || c.Start.Y >= c.Grid.Height {
		errs = append(errs, fmt.Errorf("start (%d, %d) is outside the %dx%d grid",
			c.Start.X, c.Start.Y, c.Grid.Width, c.Grid.Height))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid snake config: %w", err)
	}
	return nil
}
