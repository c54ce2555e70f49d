package entity

// Laser moves straight up until it leaves the screen or hits a meteor
type Laser struct {
	body
	Speed float64 // px/s
}

// NewLaser creates a laser whose bottom edge is centered on midBottom
func NewLaser(midBottom Vec2, sprite Sprite, speed float64) *Laser {
	r := RectFromMidBottom(midBottom, float64(sprite.W), float64(sprite.H))
	return &Laser{
		body:  body{kind: KindLaser, pos: r.Center(), sprite: sprite},
		Speed: speed,
	}
}

// Update moves the laser and kills it once fully above the top edge
func (l *Laser) Update(ctx *UpdateContext) {
	l.pos.Y -= l.Speed * ctx.DT
	if l.Bounds().Bottom() < 0 {
		l.Kill()
	}
}
