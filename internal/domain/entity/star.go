package entity

// Star is a static background decoration
type Star struct {
	body
}

// NewStar creates a star centered on pos
func NewStar(pos Vec2, sprite Sprite) *Star {
	return &Star{body: body{kind: KindStar, pos: pos, sprite: sprite}}
}
