package entity

import "time"

// PlayerParams holds player tuning
type PlayerParams struct {
	Speed       float64       // px/s
	Cooldown    time.Duration // minimum time between shots
	LaserSprite Sprite
	LaserSpeed  float64 // px/s
}

// Player is the ship controlled by the user
type Player struct {
	body

	Direction Vec2 // zero or unit length
	Speed     float64

	cooldown    Cooldown
	laserSprite Sprite
	laserSpeed  float64
}

// NewPlayer creates a player centered on pos
func NewPlayer(pos Vec2, sprite Sprite, p PlayerParams) *Player {
	return &Player{
		body:        body{kind: KindPlayer, pos: pos, sprite: sprite},
		Speed:       p.Speed,
		cooldown:    NewCooldown(p.Cooldown),
		laserSprite: p.LaserSprite,
		laserSpeed:  p.LaserSpeed,
	}
}

// CanShoot reports whether the cooldown allows firing
func (p *Player) CanShoot() bool { return p.cooldown.Ready() }

// LastShot returns the time of the most recent shot
func (p *Player) LastShot() time.Duration { return p.cooldown.LastTrigger() }

// Update moves the ship and fires a laser on a fresh fire press
func (p *Player) Update(ctx *UpdateContext) {
	c := ctx.Controls
	// Direction is rebuilt every frame so released keys stop the ship at once
	raw := Vec2{X: axis(c.Left, c.Right), Y: axis(c.Up, c.Down)}
	p.Direction = raw.Normalize()
	p.pos = p.pos.Add(p.Direction.Scale(p.Speed * ctx.DT))

	p.cooldown.Refresh(ctx.Now)
	if c.FirePressed {
		p.Fire(ctx)
	}
}

// Fire spawns a laser at the ship's top-center if the cooldown allows.
// It returns false when the shot was ignored.
func (p *Player) Fire(ctx *UpdateContext) bool {
	if !p.cooldown.Ready() {
		return false
	}
	ctx.spawn(NewLaser(p.Bounds().MidTop(), p.laserSprite, p.laserSpeed))
	p.cooldown.Trigger(ctx.Now)
	ctx.play(SoundLaser)
	return true
}

func axis(neg, pos bool) float64 {
	v := 0.0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}
