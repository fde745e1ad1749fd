package config

import (
	_ "embed"
)

//go:embed defaults/pothole.yaml
var defaultPotholeYAML []byte

// DefaultPotholeConfig returns the built-in configuration. It mirrors
// defaults/pothole.yaml and is used when the embedded file cannot be parsed.
func DefaultPotholeConfig() PotholeConfig {
	return PotholeConfig{
		Viewport: ViewportConfig{
			MaxWidth:       800,
			Height:         450,
			PlatformOffset: 60,
			UnitsPerColumn: 10,
		},
		Ball: BallConfig{
			Radius:    15,
			XFraction: 0.25,
		},
		Physics: PhysicsConfig{
			Gravity:        0.6,
			JumpForce:      12.5,
			CeilingDamping: 0.3,
		},
		Speed: SpeedConfig{
			Base:      4.5,
			Ramp:      0.001,
			ScoreRate: 0.01,
		},
		Gaps: GapConfig{
			MinWidth:       40,
			MaxWidth:       90,
			BaseSpacing:    220,
			MinSpacing:     90,
			SpacingFactor:  1.8,
			MinAdvance:     80,
			SeedLeadMin:    100,
			SeedLeadMax:    200,
			SeedSpan:       2.5,
			DespawnMargin:  50,
			ClearBonus:     5,
			FatalTolerance: 35,
		},
		Coins: CoinConfig{
			Chance:        0.35,
			Radius:        10,
			MinLift:       25,
			MaxLift:       60,
			BobSpeed:      0.075,
			BobAmplitude:  3,
			Bonus:         25,
			DespawnMargin: 50,
		},
		Player: PlayerConfig{
			DefaultNickname: "Player",
			MaxNicknameLen:  16,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPotholeYAML
}
