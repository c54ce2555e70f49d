package system

import (
	"time"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

func solidSprite(key string, w, h int) entity.Sprite {
	m := entity.NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, true)
		}
	}
	return entity.Sprite{Key: key, W: w, H: h, Mask: m}
}

func testPlayerAt(pos entity.Vec2, sprite entity.Sprite) *entity.Player {
	return entity.NewPlayer(pos, sprite, entity.PlayerParams{
		Speed:       300,
		Cooldown:    400 * time.Millisecond,
		LaserSprite: solidSprite("laser", 10, 50),
		LaserSpeed:  400,
	})
}

func testMeteorAt(pos entity.Vec2, w, h int) *entity.Meteor {
	params := entity.MeteorParams{
		Direction:     entity.Vec2{Y: 1},
		Speed:         400,
		RotationSpeed: 45,
		Lifetime:      time.Hour,
	}
	return entity.NewMeteor(pos, solidSprite("meteor", w, h), params, 0)
}

// testLaserAt creates a 10x50 laser centered on pos
func testLaserAt(pos entity.Vec2) *entity.Laser {
	return entity.NewLaser(entity.Vec2{X: pos.X, Y: pos.Y + 25}, solidSprite("laser", 10, 50), 400)
}
