package sim

import "github.com/vovakirdan/space-defender/internal/core"

// Enemy is a hostile ship. It has no health: any hit destroys it.
type Enemy struct {
	Position core.Point
	Angle    float64
}

// NewEnemy creates an enemy at pos facing +X.
func NewEnemy(pos core.Point) Enemy {
	return Enemy{Position: pos}
}

// Advance turns the enemy toward target, maybe fires, and closes in unless
// it is already inside the stopping radius. Shots always travel along the
// fresh aim angle, so they are fired straight at target.
func (e Enemy) Advance(target core.Point, t Tuning, rng IntSource, fire func(Laser)) Enemy {
	e.Angle = core.Bearing(e.Position, target)

	if rng.Intn(t.FireRoll) > t.FireThreshold {
		fire(NewLaser(e.Position, e.Angle, OwnerEnemy, t.LaserLifetime))
	}

	if core.Distance(e.Position, target) < t.StoppingRadius {
		return e
	}

	e.Position = core.Advance(e.Position, e.Angle, float64(t.EnemySpeed))
	return e
}

// Sprite returns the atlas cell used for enemies.
func (e Enemy) Sprite() Sprite {
	return SpriteEnemyIdle
}
