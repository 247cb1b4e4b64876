// Package config loads the YAML game configuration and manages difficulty
// progression.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Rules      RulesConfig      `yaml:"rules"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig is the size of the fixed board.
type GridConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// RulesConfig holds the simulation rules.
type RulesConfig struct {
	InitialLength     int `yaml:"initial_length"`
	FoodTimeout       int `yaml:"food_timeout"`
	PlacementAttempts int `yaml:"placement_attempts"`
}

// TimingConfig sets how often the simulation ticks.
type TimingConfig struct {
	TickMS    int `yaml:"tick_ms"`
	MinTickMS int `yaml:"min_tick_ms"`
}

// TickInterval returns the base interval between simulation ticks.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// MinTickInterval returns the fastest interval difficulty may reach.
func (t TimingConfig) MinTickInterval() time.Duration {
	return time.Duration(t.MinTickMS) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the named presets in menu order.
var Presets = []DifficultyPreset{DifficultyFixed, DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// GameConfig returns the simulation parameters for a height x width board.
func (c SnakeConfig) GameConfig(height, width int) snake.Config {
	return snake.Config{
		Height:            height,
		Width:             width,
		InitialLength:     c.Rules.InitialLength,
		FoodTimeout:       c.Rules.FoodTimeout,
		PlacementAttempts: c.Rules.PlacementAttempts,
	}
}

// Validate reports the first problem that would stop the game from starting.
func (c SnakeConfig) Validate() error {
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("config: timing.tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	if c.Timing.MinTickMS <= 0 || c.Timing.MinTickMS > c.Timing.TickMS {
		return fmt.Errorf("config: timing.min_tick_ms must be in [1, %d], got %d",
			c.Timing.TickMS, c.Timing.MinTickMS)
	}
	if c.Rules.FoodTimeout <= 0 {
		return fmt.Errorf("config: rules.food_timeout must be positive, got %d", c.Rules.FoodTimeout)
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		return fmt.Errorf("config: unknown difficulty.progression.type %q", c.Difficulty.Progression.Type)
	}
	if err := c.GameConfig(c.Grid.Height, c.Grid.Width).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
