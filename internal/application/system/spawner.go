package system

import (
	"math/rand"
	"time"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// MeteorSpawner owns the periodic spawn timer and rolls new meteors
type MeteorSpawner struct {
	ticker entity.Ticker
	rng    *rand.Rand
	sprite entity.Sprite
	tuning entity.MeteorTuning
	width  int
	minY   int
	maxY   int
}

// NewMeteorSpawner creates a spawner armed at now
func NewMeteorSpawner(cfg *config.GameConfig, sprite entity.Sprite, rng *rand.Rand, now time.Duration) *MeteorSpawner {
	return &MeteorSpawner{
		ticker: entity.NewTicker(cfg.Spawn.Interval(), now),
		rng:    rng,
		sprite: sprite,
		tuning: MeteorTuningFrom(cfg.Meteor),
		width:  cfg.Display.ScreenWidth,
		minY:   cfg.Spawn.MinY,
		maxY:   cfg.Spawn.MaxY,
	}
}

// MeteorTuningFrom converts the meteor config section
func MeteorTuningFrom(m config.MeteorConfig) entity.MeteorTuning {
	return entity.MeteorTuning{
		Drift:    m.Drift,
		MinSpeed: m.MinSpeed,
		MaxSpeed: m.MaxSpeed,
		MinSpin:  m.MinSpin,
		MaxSpin:  m.MaxSpin,
		Lifetime: m.Lifetime(),
	}
}

// Reset re-arms the timer relative to now
func (s *MeteorSpawner) Reset(now time.Duration) {
	s.ticker.Reset(now)
}

// Poll returns how many spawn events fired up to now.
// The timer keeps running whether or not the events are used.
func (s *MeteorSpawner) Poll(now time.Duration) int {
	return s.ticker.Poll(now)
}

// Spawn rolls a meteor above the top edge, born at now
func (s *MeteorSpawner) Spawn(now time.Duration) *entity.Meteor {
	pos := entity.Vec2{
		X: float64(randRange(s.rng, 0, s.width)),
		Y: float64(randRange(s.rng, s.minY, s.maxY)),
	}
	params := entity.NewMeteorParams(s.rng, s.tuning)
	return entity.NewMeteor(pos, s.sprite, params, now)
}

// randRange returns an integer in [lo, hi]
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
