// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// BreakoutConfig contains all configuration for the Breakout game.
// Distances are world units, times are frames.
type BreakoutConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Bricks    BricksConfig    `yaml:"bricks"`
	Effects   EffectsConfig   `yaml:"effects"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// PlayfieldConfig defines the bordered play area.
type PlayfieldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	BorderMargin    float64 `yaml:"border_margin"`
	BorderThickness float64 `yaml:"border_thickness"`
	PaddingTop      float64 `yaml:"padding_top"` // Room for the HUD below the top border
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	SpeedX      float64 `yaml:"speed_x"`
	SpeedY      float64 `yaml:"speed_y"`
	TrailLength int     `yaml:"trail_length"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Gap between paddle and window bottom
	DeadZone     float64 `yaml:"dead_zone"`     // Center band that keeps horizontal direction
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Width       float64      `yaml:"width"`
	Height      float64      `yaml:"height"`
	Spacing     float64      `yaml:"spacing"`
	PaddingLeft float64      `yaml:"padding_left"`
	PaddingTop  float64      `yaml:"padding_top"`
	RowsPerTier int          `yaml:"rows_per_tier"`
	Tiers       []TierConfig `yaml:"tiers"` // Top to bottom
}

// TierConfig defines one brick color tier.
type TierConfig struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Points int    `yaml:"points"`
}

// EffectsConfig defines cosmetic animation parameters.
type EffectsConfig struct {
	FlashFrames       int     `yaml:"flash_frames"`
	ShakeFrames       int     `yaml:"shake_frames"`
	ShakeAmplitude    float64 `yaml:"shake_amplitude"`
	ParticleCount     int     `yaml:"particle_count"`
	ParticleLife      int     `yaml:"particle_life"`
	ParticleSpeed     float64 `yaml:"particle_speed"`
	PaddleShakeFrames int     `yaml:"paddle_shake_frames"`
}

// GameplayConfig defines lives and high-score rules.
type GameplayConfig struct {
	Lives          int `yaml:"lives"`
	MaxScores      int `yaml:"max_scores"`
	InitialsLength int `yaml:"initials_length"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Validate checks the invariants the simulation relies on.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield size must be positive", ErrInvalidConfig)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.Ball.SpeedX == 0 || c.Ball.SpeedY == 0:
		return fmt.Errorf("%w: ball speed components must be non-zero", ErrInvalidConfig)
	case c.Ball.TrailLength < 0:
		return fmt.Errorf("%w: trail length must not be negative", ErrInvalidConfig)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0 || c.Paddle.Speed <= 0:
		return fmt.Errorf("%w: paddle size and speed must be positive", ErrInvalidConfig)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.RowsPerTier < 1:
		return fmt.Errorf("%w: brick size and rows per tier must be positive", ErrInvalidConfig)
	case len(c.Bricks.Tiers) == 0:
		return fmt.Errorf("%w: at least one brick tier is required", ErrInvalidConfig)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalidConfig)
	case c.Gameplay.MaxScores < 1 || c.Gameplay.InitialsLength < 1:
		return fmt.Errorf("%w: scoreboard size and initials length must be positive", ErrInvalidConfig)
	}

	for i, tier := range c.Bricks.Tiers {
		if tier.Points < 0 {
			return fmt.Errorf("%w: tier %d has negative points", ErrInvalidConfig, i)
		}
		if _, ok := core.ParseColor(tier.Color); !ok {
			return fmt.Errorf("%w: tier %d has unknown color %q", ErrInvalidConfig, i, tier.Color)
		}
	}
	return nil
}
