// Package config provides YAML-based game configuration loading and
// difficulty management for Pothole Jumper.
package config

import (
	"errors"
	"fmt"
)

// PotholeConfig contains all tunables of the game. Distances are world units
// (pixels of an 800x450 playfield), velocities are world units per tick.
type PotholeConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Ball     BallConfig     `yaml:"ball"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Speed    SpeedConfig    `yaml:"speed"`
	Gaps     GapConfig      `yaml:"gaps"`
	Coins    CoinConfig     `yaml:"coins"`
	Player   PlayerConfig   `yaml:"player"`
}

// ViewportConfig describes the playfield geometry.
type ViewportConfig struct {
	MaxWidth       float64 `yaml:"max_width"`        // Widest playfield the terminal can map to
	Height         float64 `yaml:"height"`           // Playfield height
	PlatformOffset float64 `yaml:"platform_offset"`  // Platform line = height - offset
	UnitsPerColumn float64 `yaml:"units_per_column"` // World units covered by one terminal column
}

// BallConfig defines the player ball.
type BallConfig struct {
	Radius    float64 `yaml:"radius"`
	XFraction float64 `yaml:"x_fraction"` // Fixed x as a fraction of the viewport width
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	JumpForce      float64 `yaml:"jump_force"`      // Applied upward (negative velocity)
	CeilingDamping float64 `yaml:"ceiling_damping"` // Fraction of velocity kept after hitting the top
}

// SpeedConfig defines the scroll speed ramp and passive scoring.
type SpeedConfig struct {
	Base      float64 `yaml:"base"`
	Ramp      float64 `yaml:"ramp"`       // Added to speed every playing tick
	ScoreRate float64 `yaml:"score_rate"` // Passive score per tick = speed * rate
}

// GapConfig defines pothole generation and scoring.
type GapConfig struct {
	MinWidth       float64 `yaml:"min_width"`
	MaxWidth       float64 `yaml:"max_width"`
	BaseSpacing    float64 `yaml:"base_spacing"`    // Minimum spacing at base speed
	MinSpacing     float64 `yaml:"min_spacing"`     // Floor of the speed-scaled minimum spacing
	SpacingFactor  float64 `yaml:"spacing_factor"`  // Max spacing = min spacing * factor
	MinAdvance     float64 `yaml:"min_advance"`     // Smallest step from the previous spawn cursor
	SeedLeadMin    float64 `yaml:"seed_lead_min"`   // Initial cursor offset past the right edge
	SeedLeadMax    float64 `yaml:"seed_lead_max"`
	SeedSpan       float64 `yaml:"seed_span"`       // Pre-spawn until cursor >= width * span
	DespawnMargin  float64 `yaml:"despawn_margin"`  // Removed once trailing edge < -margin
	ClearBonus     int     `yaml:"clear_bonus"`     // Points for passing a gap
	FatalTolerance float64 `yaml:"fatal_tolerance"` // Depth below the platform where a fall is caught
}

// CoinConfig defines bonus coins.
type CoinConfig struct {
	Chance        float64 `yaml:"chance"` // Probability of a coin per spawned gap
	Radius        float64 `yaml:"radius"`
	MinLift       float64 `yaml:"min_lift"` // Height above two ball radii over the platform
	MaxLift       float64 `yaml:"max_lift"`
	BobSpeed      float64 `yaml:"bob_speed"`
	BobAmplitude  float64 `yaml:"bob_amplitude"`
	Bonus         int     `yaml:"bonus"`
	DespawnMargin float64 `yaml:"despawn_margin"`
}

// PlayerConfig defines nickname handling.
type PlayerConfig struct {
	DefaultNickname string `yaml:"default_nickname"`
	MaxNicknameLen  int    `yaml:"max_nickname_len"`
}

// Validate reports every inconsistent setting, joined into one error.
func (c PotholeConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Viewport.Height > c.Viewport.PlatformOffset && c.Viewport.PlatformOffset >= 0,
		"viewport.platform_offset %v must be within height %v", c.Viewport.PlatformOffset, c.Viewport.Height)
	check(c.Viewport.MaxWidth > 0, "viewport.max_width must be positive")
	check(c.Viewport.UnitsPerColumn > 0, "viewport.units_per_column must be positive")
	check(c.Ball.Radius > 0, "ball.radius must be positive")
	check(c.Ball.XFraction > 0 && c.Ball.XFraction < 1, "ball.x_fraction must be in (0, 1)")
	check(c.Physics.Gravity > 0, "physics.gravity must be positive")
	check(c.Physics.JumpForce > 0, "physics.jump_force must be positive")
	check(c.Speed.Base > 0, "speed.base must be positive")
	check(c.Speed.Ramp >= 0, "speed.ramp must not be negative")
	check(c.Gaps.MinWidth > 0 && c.Gaps.MinWidth <= c.Gaps.MaxWidth,
		"gaps.min_width %v must be positive and <= max_width %v", c.Gaps.MinWidth, c.Gaps.MaxWidth)
	check(c.Gaps.MinSpacing >= c.Gaps.MaxWidth,
		"gaps.min_spacing %v must be >= max_width %v so gaps never overlap", c.Gaps.MinSpacing, c.Gaps.MaxWidth)
	check(c.Gaps.BaseSpacing >= c.Gaps.MinSpacing, "gaps.base_spacing must be >= min_spacing")
	check(c.Gaps.SpacingFactor >= 1, "gaps.spacing_factor must be >= 1")
	check(c.Gaps.SeedLeadMin <= c.Gaps.SeedLeadMax, "gaps.seed_lead_min must be <= seed_lead_max")
	check(c.Gaps.SeedSpan > 1, "gaps.seed_span must be > 1")
	check(c.Gaps.FatalTolerance > 0, "gaps.fatal_tolerance must be positive")
	check(c.Coins.Chance >= 0 && c.Coins.Chance <= 1, "coins.chance must be in [0, 1]")
	check(c.Coins.MinLift <= c.Coins.MaxLift, "coins.min_lift must be <= max_lift")
	check(c.Player.DefaultNickname != "", "player.default_nickname must not be empty")

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "" (config default).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// speedScaleForPreset returns base speed and ramp multipliers for a preset.
func speedScaleForPreset(preset DifficultyPreset) (base, ramp float64) {
	switch preset {
	case DifficultyEasy:
		return 0.8, 0.5
	case DifficultyHard:
		return 1.25, 2.0
	case DifficultyFixed:
		return 1.0, 0.0
	default:
		return 1.0, 1.0
	}
}
