package entity

// DefaultExplosionFPS is the animation rate of an explosion
const DefaultExplosionFPS = 20.0

// Explosion plays a frame sequence once, then removes itself
type Explosion struct {
	body
	frames []Sprite
	index  float64
	fps    float64
}

// NewExplosion creates an explosion centered on pos
func NewExplosion(pos Vec2, frames []Sprite, fps float64) *Explosion {
	e := &Explosion{
		body:   body{kind: KindExplosion, pos: pos},
		frames: frames,
		fps:    fps,
	}
	if len(frames) == 0 {
		e.Kill()
		return e
	}
	e.sprite = frames[0]
	return e
}

// FrameIndex returns the fractional animation position
func (e *Explosion) FrameIndex() float64 { return e.index }

// Frame returns the index of the frame currently shown
func (e *Explosion) Frame() int {
	if len(e.frames) == 0 {
		return 0
	}
	return int(e.index) % len(e.frames)
}

// FrameCount returns the number of frames in the sequence
func (e *Explosion) FrameCount() int { return len(e.frames) }

// Update advances the animation and dies past the last frame
func (e *Explosion) Update(ctx *UpdateContext) {
	e.index += e.fps * ctx.DT
	i := int(e.index)
	if i >= len(e.frames) {
		e.Kill()
		return
	}
	e.sprite = e.frames[i%len(e.frames)]
}
