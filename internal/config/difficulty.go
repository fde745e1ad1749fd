package config

import "math"

// DifficultyManager derives scroll speed, passive score and gap spacing from
// the current speed. Speed ramps linearly and without bound while playing.
type DifficultyManager struct {
	speed SpeedConfig
	gaps  GapConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg PotholeConfig) *DifficultyManager {
	return &DifficultyManager{
		speed: cfg.Speed,
		gaps:  cfg.Gaps,
	}
}

// BaseSpeed returns the speed a new run starts at.
func (d *DifficultyManager) BaseSpeed() float64 {
	return d.speed.Base
}

// IsEnabled reports whether the speed ramps at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.speed.Ramp > 0
}

// NextSpeed returns the speed for the following tick.
func (d *DifficultyManager) NextSpeed(speed float64) float64 {
	return speed + d.speed.Ramp
}

// PassiveScore returns the score earned by surviving one tick at speed.
func (d *DifficultyManager) PassiveScore(speed float64) float64 {
	return speed * d.speed.ScoreRate
}

// MinSpacing returns the smallest distance between consecutive gaps at speed.
// It shrinks as speed grows but never drops below the configured floor.
func (d *DifficultyManager) MinSpacing(speed float64) float64 {
	if speed <= 0 || d.speed.Base <= 0 {
		return d.gaps.BaseSpacing
	}
	return math.Max(d.gaps.BaseSpacing/(speed/d.speed.Base), d.gaps.MinSpacing)
}

// MaxSpacing returns the largest distance between consecutive gaps at speed.
func (d *DifficultyManager) MaxSpacing(speed float64) float64 {
	return d.MinSpacing(speed) * d.gaps.SpacingFactor
}

// Level returns speed relative to the base speed, starting at 1.0.
func (d *DifficultyManager) Level(speed float64) float64 {
	if d.speed.Base <= 0 {
		return 1
	}
	return speed / d.speed.Base
}
