package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: PlayfieldConfig{
			Width:           550,
			Height:          600,
			BorderMargin:    25,
			BorderThickness: 4,
			PaddingTop:      50,
		},
		Ball: BallConfig{
			Radius:      5,
			SpeedX:      -3,
			SpeedY:      -4,
			TrailLength: 4,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			Speed:        7,
			BottomOffset: 50,
			DeadZone:     20,
		},
		Bricks: BricksConfig{
			Width:       40,
			Height:      20,
			Spacing:     5,
			PaddingLeft: 30,
			PaddingTop:  90,
			RowsPerTier: 2,
			Tiers: []TierConfig{
				{Name: "green", Color: "green", Points: 1},
				{Name: "yellow", Color: "yellow", Points: 3},
				{Name: "red", Color: "red", Points: 5},
			},
		},
		Effects: EffectsConfig{
			FlashFrames:       6,
			ShakeFrames:       10,
			ShakeAmplitude:    2,
			ParticleCount:     15,
			ParticleLife:      30,
			ParticleSpeed:     3,
			PaddleShakeFrames: 8,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			MaxScores:      10,
			InitialsLength: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
