package system

import (
	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// LaserHit records one laser destroying one or more meteors
type LaserHit struct {
	Laser   *entity.Laser
	Meteors []*entity.Meteor
	Impact  entity.Vec2 // laser top-center at the time of the hit
}

// CollisionResult is the outcome of one collision pass
type CollisionResult struct {
	PlayerHits []*entity.Meteor // meteors that struck the player
	LaserHits  []LaserHit
}

// PlayerHit reports whether any meteor struck the player
func (r CollisionResult) PlayerHit() bool {
	return len(r.PlayerHits) > 0
}

// CollisionSystem resolves player-meteor and laser-meteor overlaps.
// Player checks are shape-accurate, laser checks use bounding boxes.
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Update runs one pass and kills every entity it resolves.
// Killed entities are skipped for the rest of the pass.
func (s *CollisionSystem) Update(player *entity.Player, meteors []*entity.Meteor, lasers []*entity.Laser) CollisionResult {
	var result CollisionResult

	// Player vs meteors
	if player != nil && player.Alive() {
		for _, m := range meteors {
			if !m.Alive() {
				continue
			}
			if ShapesOverlap(player, m) {
				m.Kill()
				result.PlayerHits = append(result.PlayerHits, m)
			}
		}
	}

	// Lasers vs meteors
	for _, l := range lasers {
		if !l.Alive() {
			continue
		}
		lb := l.Bounds()
		var hit []*entity.Meteor
		for _, m := range meteors {
			if !m.Alive() {
				continue
			}
			if lb.Overlaps(m.Bounds()) {
				hit = append(hit, m)
			}
		}
		if len(hit) == 0 {
			continue
		}
		for _, m := range hit {
			m.Kill()
		}
		l.Kill()
		result.LaserHits = append(result.LaserHits, LaserHit{
			Laser:   l,
			Meteors: hit,
			Impact:  lb.MidTop(),
		})
	}

	return result
}

// ShapesOverlap tests two entities pixel by pixel.
// Entities without a mask fall back to their bounding boxes.
func ShapesOverlap(a, b entity.Entity) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if !ab.Overlaps(bb) {
		return false
	}
	am, bm := maskOf(a), maskOf(b)
	if am == nil || bm == nil {
		return true
	}
	// whole-pixel offset of b relative to a, truncated toward zero
	dx := int(bb.X - ab.X)
	dy := int(bb.Y - ab.Y)
	return am.Overlaps(bm, dx, dy)
}

func maskOf(e entity.Entity) *entity.Mask {
	if m, ok := e.(entity.Masked); ok {
		return m.Mask()
	}
	return e.Sprite().Mask
}
