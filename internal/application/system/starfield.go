package system

import (
	"math/rand"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// BuildStarfield scatters count stars over a w*h screen
func BuildStarfield(rng *rand.Rand, count, w, h int, sprite entity.Sprite) []*entity.Star {
	stars := make([]*entity.Star, 0, count)
	for i := 0; i < count; i++ {
		pos := entity.Vec2{
			X: float64(randRange(rng, 0, w)),
			Y: float64(randRange(rng, 0, h)),
		}
		stars = append(stars, entity.NewStar(pos, sprite))
	}
	return stars
}
