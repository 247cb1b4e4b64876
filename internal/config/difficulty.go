package config

import (
	"math"
	"time"
)

// DifficultyManager turns score or elapsed ticks into a simulation pace.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Interval returns the time between simulation ticks. The base interval is
// divided by (1 + level*speed_multiplier) and never drops below floor.
// With progression disabled the base interval is returned unchanged.
func (d *DifficultyManager) Interval(base, floor time.Duration, score int, ticks int) time.Duration {
	if !d.cfg.Enabled {
		return base
	}
	speed := 1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
	if speed <= 0 {
		return base
	}
	interval := time.Duration(float64(base) / speed)
	if interval < floor {
		return floor
	}
	return interval
}

// FramesPerTick converts a tick interval to a whole number of platform
// frames at fps, at least one.
func FramesPerTick(interval time.Duration, fps int) int {
	if fps <= 0 {
		return 1
	}
	frames := int(math.Round(interval.Seconds() * float64(fps)))
	if frames < 1 {
		return 1
	}
	return frames
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
