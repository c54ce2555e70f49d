// Package entity contains the game objects of a shooter session and the
// small value types (vectors, rects, masks, timers) they are built from.
// Nothing here depends on the renderer; sprites are referenced by key.
package entity

import "time"

// Entity is the common shape of every game object
type Entity interface {
	Kind() Kind
	Alive() bool
	Kill()
	Position() Vec2
	Bounds() Rect
	Sprite() Sprite
}

// Updater is implemented by entities that change every frame
type Updater interface {
	Update(ctx *UpdateContext)
}

// Rotator is implemented by entities drawn with a rotation (degrees, counter-clockwise)
type Rotator interface {
	Rotation() float64
}

// Masked is implemented by entities that support shape-accurate collision
type Masked interface {
	Mask() *Mask
}

// Controls is the per-frame input an entity may react to
type Controls struct {
	Left, Right, Up, Down bool
	FirePressed           bool // fire went down this frame
}

// Spawner accepts entities created during an update
type Spawner interface {
	Spawn(e Entity)
}

// SoundID names a sound effect or music track
type SoundID int

const (
	SoundLaser SoundID = iota
	SoundExplosion
	MusicGame
)

// String returns the asset name of the sound
func (s SoundID) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosion:
		return "explosion"
	case MusicGame:
		return "game_music"
	default:
		return "unknown"
	}
}

// SoundPlayer plays fire-and-forget sound effects
type SoundPlayer interface {
	Play(id SoundID)
}

// UpdateContext carries everything an entity needs for one frame
type UpdateContext struct {
	DT       float64       // seconds since last frame
	Now      time.Duration // session clock
	Controls Controls
	Spawner  Spawner
	Sounds   SoundPlayer
}

func (c *UpdateContext) spawn(e Entity) {
	if c.Spawner != nil {
		c.Spawner.Spawn(e)
	}
}

func (c *UpdateContext) play(id SoundID) {
	if c.Sounds != nil {
		c.Sounds.Play(id)
	}
}

// body holds the state shared by all entities
type body struct {
	kind   Kind
	pos    Vec2 // center
	sprite Sprite
	dead   bool
}

// Kind returns the entity category
func (b *body) Kind() Kind { return b.kind }

// Alive reports whether the entity is still in play
func (b *body) Alive() bool { return !b.dead }

// Kill marks the entity for removal at the next flush
func (b *body) Kill() { b.dead = true }

// Position returns the center point
func (b *body) Position() Vec2 { return b.pos }

// SetPosition moves the center point
func (b *body) SetPosition(p Vec2) { b.pos = p }

// Sprite returns the current visual
func (b *body) Sprite() Sprite { return b.sprite }

// Bounds returns the sprite rect centered on the position
func (b *body) Bounds() Rect {
	return RectFromCenter(b.pos, float64(b.sprite.W), float64(b.sprite.H))
}
