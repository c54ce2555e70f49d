package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Player    PlayerConfig    `yaml:"player"`
	Laser     LaserConfig     `yaml:"laser"`
	Meteor    MeteorConfig    `yaml:"meteor"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Audio     AudioConfig     `yaml:"audio"`
	Assets    AssetsConfig    `yaml:"assets"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	Scale        float64 `yaml:"scale"` // window size multiplier
	Title        string  `yaml:"title"`
	TPS          int     `yaml:"tps"`
	Background   string  `yaml:"background"` // #rrggbb
}

// BackgroundColor parses the background hex color
func (d DisplayConfig) BackgroundColor() (color.RGBA, error) {
	return ParseHexColor(d.Background)
}

// Score modes
const (
	ScoreModeFrame = "frame" // fixed amount per frame, rate follows the frame rate
	ScoreModeTime  = "time"  // fixed amount per second of play
)

type ScoringConfig struct {
	Mode      string  `yaml:"mode"`
	PerFrame  float64 `yaml:"perFrame"`
	PerSecond float64 `yaml:"perSecond"`
	HitBonus  float64 `yaml:"hitBonus"`
}

type AudioConfig struct {
	Mute            bool    `yaml:"mute"`
	SampleRate      int     `yaml:"sampleRate"`
	LaserVolume     float64 `yaml:"laserVolume"`
	ExplosionVolume float64 `yaml:"explosionVolume"`
	MusicVolume     float64 `yaml:"musicVolume"`
}

// AssetsConfig points at optional asset files.
// An empty Dir selects the built-in procedural sprites and sounds.
type AssetsConfig struct {
	Dir      string  `yaml:"dir"`
	Font     string  `yaml:"font"` // relative to Dir
	FontSize float64 `yaml:"fontSize"`
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
