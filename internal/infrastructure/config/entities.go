package config

import "time"

type PlayerConfig struct {
	Speed      float64 `yaml:"speed"`      // px/s
	CooldownMs int     `yaml:"cooldownMs"` // minimum time between shots
}

// Cooldown returns the shot cooldown
func (p PlayerConfig) Cooldown() time.Duration {
	return time.Duration(p.CooldownMs) * time.Millisecond
}

type LaserConfig struct {
	Speed float64 `yaml:"speed"` // px/s, upward
}

type MeteorConfig struct {
	Drift      float64 `yaml:"drift"`    // max horizontal direction component
	MinSpeed   int     `yaml:"minSpeed"` // px/s
	MaxSpeed   int     `yaml:"maxSpeed"`
	MinSpin    int     `yaml:"minSpin"` // deg/s
	MaxSpin    int     `yaml:"maxSpin"`
	LifetimeMs int     `yaml:"lifetimeMs"`
}

// Lifetime returns how long a meteor lives
func (m MeteorConfig) Lifetime() time.Duration {
	return time.Duration(m.LifetimeMs) * time.Millisecond
}

type ExplosionConfig struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
}
