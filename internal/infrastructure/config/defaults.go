package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded config cannot run a game
var ErrInvalidConfig = errors.New("invalid config")

// Default returns the stock tuning
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			Scale:        1,
			Title:        "Space Shooter",
			TPS:          60,
			Background:   "#3a2e3f",
		},
		Player: PlayerConfig{
			Speed:      300,
			CooldownMs: 400,
		},
		Laser: LaserConfig{
			Speed: 400,
		},
		Meteor: MeteorConfig{
			Drift:      0.5,
			MinSpeed:   400,
			MaxSpeed:   500,
			MinSpin:    40,
			MaxSpin:    80,
			LifetimeMs: 3000,
		},
		Explosion: ExplosionConfig{
			Frames: 21,
			FPS:    20,
		},
		Spawn: SpawnConfig{
			IntervalMs: 500,
			MinY:       -200,
			MaxY:       -100,
		},
		Starfield: StarfieldConfig{
			Count: 20,
		},
		Scoring: ScoringConfig{
			Mode:      ScoreModeFrame,
			PerFrame:  0.01,
			PerSecond: 0.6,
			HitBonus:  200,
		},
		Audio: AudioConfig{
			SampleRate:      44100,
			LaserVolume:     0.5,
			ExplosionVolume: 0.3,
			MusicVolume:     0.1,
		},
		Assets: AssetsConfig{
			Font:     "Oxanium-Bold.ttf",
			FontSize: 40,
		},
	}
}

// Validate reports the first value that would break a session
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Display.TPS)
	case c.Display.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, c.Display.Scale)
	case c.Player.Speed < 0 || c.Player.CooldownMs < 0:
		return fmt.Errorf("%w: negative player tuning", ErrInvalidConfig)
	case c.Laser.Speed <= 0:
		return fmt.Errorf("%w: laser speed %v", ErrInvalidConfig, c.Laser.Speed)
	case c.Meteor.MinSpeed > c.Meteor.MaxSpeed:
		return fmt.Errorf("%w: meteor speed range [%d, %d]", ErrInvalidConfig, c.Meteor.MinSpeed, c.Meteor.MaxSpeed)
	case c.Meteor.MinSpin > c.Meteor.MaxSpin:
		return fmt.Errorf("%w: meteor spin range [%d, %d]", ErrInvalidConfig, c.Meteor.MinSpin, c.Meteor.MaxSpin)
	case c.Meteor.Drift < 0:
		return fmt.Errorf("%w: meteor drift %v", ErrInvalidConfig, c.Meteor.Drift)
	case c.Meteor.LifetimeMs <= 0:
		return fmt.Errorf("%w: meteor lifetime %dms", ErrInvalidConfig, c.Meteor.LifetimeMs)
	case c.Explosion.Frames <= 0 || c.Explosion.FPS <= 0:
		return fmt.Errorf("%w: explosion %d frames at %v fps", ErrInvalidConfig, c.Explosion.Frames, c.Explosion.FPS)
	case c.Spawn.IntervalMs <= 0:
		return fmt.Errorf("%w: spawn interval %dms", ErrInvalidConfig, c.Spawn.IntervalMs)
	case c.Spawn.MinY > c.Spawn.MaxY:
		return fmt.Errorf("%w: spawn y range [%d, %d]", ErrInvalidConfig, c.Spawn.MinY, c.Spawn.MaxY)
	case c.Starfield.Count < 0:
		return fmt.Errorf("%w: star count %d", ErrInvalidConfig, c.Starfield.Count)
	case c.Scoring.Mode != ScoreModeFrame && c.Scoring.Mode != ScoreModeTime:
		return fmt.Errorf("%w: scoring mode %q", ErrInvalidConfig, c.Scoring.Mode)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}

	if _, err := c.Display.BackgroundColor(); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	for name, v := range map[string]float64{
		"laser":     c.Audio.LaserVolume,
		"explosion": c.Audio.ExplosionVolume,
		"music":     c.Audio.MusicVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s volume %v", ErrInvalidConfig, name, v)
		}
	}
	return nil
}
