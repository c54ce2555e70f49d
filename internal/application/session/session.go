// Package session runs one play-through at a time: it owns the entity
// registry, the score and the Playing/GameOver state machine, and advances
// them one frame per Step. It has no rendering or device dependencies.
package session

import (
	"math/rand"
	"time"

	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/system"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/ecs"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// Registry groups
const (
	GroupMeteors ecs.Group = "meteors"
	GroupLasers  ecs.Group = "lasers"
)

// Frame is the input of one Step
type Frame struct {
	Now   time.Duration // session clock
	DT    float64       // seconds since the previous frame
	Input system.InputState
}

// Session is the game state owned by the frame loop
type Session struct {
	cfg     *config.GameConfig
	sprites entity.SpriteSet
	rng     *rand.Rand
	sounds  entity.SoundPlayer

	world     *ecs.World[entity.Entity]
	player    *entity.Player
	spawner   *system.MeteorSpawner
	collision *system.CollisionSystem
	events    system.EventLog

	state  state.GameState
	score  float64
	now    time.Duration
	frames int // frames stepped since the last start
}

// New creates a session. Call Start before the first Step.
// sounds may be nil.
func New(cfg *config.GameConfig, sprites entity.SpriteSet, rng *rand.Rand, sounds entity.SoundPlayer) *Session {
	return &Session{
		cfg:       cfg,
		sprites:   sprites,
		rng:       rng,
		sounds:    sounds,
		world:     ecs.NewWorld[entity.Entity](),
		spawner:   system.NewMeteorSpawner(cfg, sprites.Meteor, rng, 0),
		collision: system.NewCollisionSystem(),
	}
}

// Start clears the registry and begins a fresh play-through at now
func (s *Session) Start(now time.Duration) {
	s.world.Clear()
	s.now = now
	s.frames = 0

	w, h := s.cfg.Display.ScreenWidth, s.cfg.Display.ScreenHeight
	for _, star := range system.BuildStarfield(s.rng, s.cfg.Starfield.Count, w, h, s.sprites.Star) {
		s.world.Add(star)
	}

	s.player = entity.NewPlayer(
		entity.Vec2{X: float64(w) / 2, Y: float64(h) / 2},
		s.sprites.Player,
		entity.PlayerParams{
			Speed:       s.cfg.Player.Speed,
			Cooldown:    s.cfg.Player.Cooldown(),
			LaserSprite: s.sprites.Laser,
			LaserSpeed:  s.cfg.Laser.Speed,
		},
	)
	s.world.Add(s.player)

	s.score = 0
	s.state = state.StatePlaying
	s.spawner.Reset(now)
	s.events.Push(system.SessionStarted{Now: now})
}

// Step advances the session by one frame
func (s *Session) Step(f Frame) {
	s.events.Reset()
	s.now = f.Now

	// The spawn timer runs in every state; its events only materialize while playing.
	spawns := s.spawner.Poll(f.Now)
	if s.state == state.StatePlaying {
		for i := 0; i < spawns; i++ {
			s.Spawn(s.spawner.Spawn(f.Now))
		}
	}

	if s.state == state.StateGameOver {
		if f.Input.Confirm {
			s.Start(f.Now)
		}
		return
	}

	s.frames++
	ctx := &entity.UpdateContext{
		DT:       f.DT,
		Now:      f.Now,
		Controls: f.Input.Controls(),
		Spawner:  s,
		Sounds:   s.sounds,
	}
	s.world.Each(ecs.All, func(_ ecs.EntityID, e entity.Entity) {
		if u, ok := e.(entity.Updater); ok {
			u.Update(ctx)
		}
	})

	s.resolveCollisions()
	s.world.Flush()
	s.addTimeScore(f.DT)
}

func (s *Session) resolveCollisions() {
	result := s.collision.Update(s.player, s.meteors(), s.lasers())

	if result.PlayerHit() {
		s.setState(state.StateGameOver)
		s.events.Push(system.PlayerHit{Meteors: len(result.PlayerHits), Score: s.score})
	}

	for _, hit := range result.LaserHits {
		s.Spawn(entity.NewExplosion(hit.Impact, s.sprites.Explosion, s.cfg.Explosion.FPS))
		s.score += s.cfg.Scoring.HitBonus
		s.play(entity.SoundExplosion)
		s.events.Push(system.MeteorDestroyed{
			Impact:  hit.Impact,
			Meteors: len(hit.Meteors),
			Bonus:   s.cfg.Scoring.HitBonus,
		})
	}
}

func (s *Session) addTimeScore(dt float64) {
	switch s.cfg.Scoring.Mode {
	case config.ScoreModeTime:
		s.score += s.cfg.Scoring.PerSecond * dt
	default:
		s.score += s.cfg.Scoring.PerFrame
	}
}

func (s *Session) setState(next state.GameState) {
	if s.state.CanTransitionTo(next) {
		s.state = next
	}
}

func (s *Session) play(id entity.SoundID) {
	if s.sounds != nil {
		s.sounds.Play(id)
	}
}

// Spawn adds an entity to the registry and its kind's group.
// Entities spawned during Step are updated from the next frame on.
func (s *Session) Spawn(e entity.Entity) {
	switch e.Kind() {
	case entity.KindMeteor:
		s.world.Add(e, GroupMeteors)
		s.events.Push(system.MeteorSpawned{Position: e.Position()})
	case entity.KindLaser:
		s.world.Add(e, GroupLasers)
		s.events.Push(system.LaserFired{Position: e.Bounds().MidBottom()})
	default:
		s.world.Add(e)
	}
}

func (s *Session) meteors() []*entity.Meteor {
	var out []*entity.Meteor
	s.world.Each(GroupMeteors, func(_ ecs.EntityID, e entity.Entity) {
		if m, ok := e.(*entity.Meteor); ok {
			out = append(out, m)
		}
	})
	return out
}

func (s *Session) lasers() []*entity.Laser {
	var out []*entity.Laser
	s.world.Each(GroupLasers, func(_ ecs.EntityID, e entity.Entity) {
		if l, ok := e.(*entity.Laser); ok {
			out = append(out, l)
		}
	})
	return out
}

// State returns the current state
func (s *Session) State() state.GameState { return s.state }

// Score returns the exact score
func (s *Session) Score() float64 { return s.score }

// DisplayScore returns the score as shown on the HUD
func (s *Session) DisplayScore() int { return int(s.score) }

// Player returns the current player
func (s *Session) Player() *entity.Player { return s.player }

// Now returns the timestamp of the last Step or Start
func (s *Session) Now() time.Duration { return s.now }

// Frames returns the number of playing frames since the last start
func (s *Session) Frames() int { return s.frames }

// Events returns what happened during the last Step
func (s *Session) Events() []system.Event { return s.events.Events() }

// Each visits live entities of a group in registry order
func (s *Session) Each(g ecs.Group, fn func(e entity.Entity)) {
	s.world.Each(g, func(_ ecs.EntityID, e entity.Entity) { fn(e) })
}

// Count returns the number of live entities in a group
func (s *Session) Count(g ecs.Group) int { return s.world.Len(g) }

// CountKind returns the number of live entities of a kind
func (s *Session) CountKind(k entity.Kind) int {
	n := 0
	s.Each(ecs.All, func(e entity.Entity) {
		if e.Kind() == k {
			n++
		}
	})
	return n
}
