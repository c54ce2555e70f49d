package entity

import (
	"math/rand"
	"time"
)

// MeteorTuning bounds the randomized meteor parameters
type MeteorTuning struct {
	Drift    float64 // horizontal direction component is drawn from [-Drift, Drift]
	MinSpeed int     // px/s, inclusive
	MaxSpeed int
	MinSpin  int // deg/s, inclusive
	MaxSpin  int
	Lifetime time.Duration
}

// MeteorParams are the rolled values of a single meteor
type MeteorParams struct {
	Direction     Vec2 // unit length
	Speed         float64
	RotationSpeed float64
	Lifetime      time.Duration
}

// NewMeteorParams rolls direction, speed and spin from rng
func NewMeteorParams(rng *rand.Rand, t MeteorTuning) MeteorParams {
	dir := Vec2{X: -t.Drift + rng.Float64()*2*t.Drift, Y: 1}
	return MeteorParams{
		Direction:     dir.Normalize(),
		Speed:         float64(randInt(rng, t.MinSpeed, t.MaxSpeed)),
		RotationSpeed: float64(randInt(rng, t.MinSpin, t.MaxSpin)),
		Lifetime:      t.Lifetime,
	}
}

// randInt returns an integer in [lo, hi]
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Meteor falls, spins and expires after its lifetime
type Meteor struct {
	body
	MeteorParams

	rotation float64 // degrees, counter-clockwise
	life     Timer

	// rotated mask cache, keyed by angle
	maskAngle float64
	mask      *Mask
}

// NewMeteor creates a meteor centered on pos, born at now
func NewMeteor(pos Vec2, sprite Sprite, p MeteorParams, now time.Duration) *Meteor {
	return &Meteor{
		body:         body{kind: KindMeteor, pos: pos, sprite: sprite},
		MeteorParams: p,
		life:         NewTimer(p.Lifetime, now),
	}
}

// Rotation returns the accumulated rotation in degrees
func (m *Meteor) Rotation() float64 { return m.rotation }

// Born returns the creation timestamp
func (m *Meteor) Born() time.Duration { return m.life.Started() }

// Update moves the meteor, expires it, and advances its spin
func (m *Meteor) Update(ctx *UpdateContext) {
	m.pos = m.pos.Add(m.Direction.Scale(m.Speed * ctx.DT))
	if m.life.Expired(ctx.Now) {
		m.Kill()
		return
	}
	m.rotation += m.RotationSpeed * ctx.DT
}

// Bounds returns the box of the rotated sprite centered on the position.
// The box grows and shrinks with the rotation.
func (m *Meteor) Bounds() Rect {
	w, h := RotatedSize(m.sprite.W, m.sprite.H, m.rotation)
	return RectFromCenter(m.pos, float64(w), float64(h))
}

// Mask returns the opacity mask for the current rotation, always derived
// from the unrotated source mask.
func (m *Meteor) Mask() *Mask {
	if m.sprite.Mask == nil {
		return nil
	}
	if m.mask == nil || m.maskAngle != m.rotation {
		m.mask = m.sprite.Mask.Rotated(m.rotation)
		m.maskAngle = m.rotation
	}
	return m.mask
}
