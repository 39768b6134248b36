package sim

import "github.com/vovakirdan/space-defender/internal/core"

// LaserOwner tells who fired a laser; it selects speed and color.
type LaserOwner int

const (
	OwnerPlayer LaserOwner = iota
	OwnerEnemy
)

// Laser is a projectile travelling in a straight line until its lifetime runs out.
type Laser struct {
	Position         core.Point
	PreviousPosition core.Point // position before the latest Advance
	Angle            float64    // fixed at creation
	Lifetime         int        // remaining ticks
	Owner            LaserOwner
}

// NewLaser creates a laser at rest at pos, heading along angle.
func NewLaser(pos core.Point, angle float64, owner LaserOwner, lifetime int) Laser {
	return Laser{
		Position:         pos,
		PreviousPosition: pos,
		Angle:            core.NormalizeDegrees(angle),
		Lifetime:         lifetime,
		Owner:            owner,
	}
}

// Advance ages the laser by one tick and moves it. The boolean is false
// once the lifetime reaches zero; the caller drops the laser then.
func (l Laser) Advance(t Tuning) (Laser, bool) {
	l.Lifetime = max(l.Lifetime-1, 0)
	if l.Lifetime == 0 {
		return l, false
	}

	l.PreviousPosition = l.Position
	l.Position = core.Advance(l.Position, l.Angle, float64(t.LaserSpeed(l.Owner)))
	return l, true
}

// Hits reports whether the path travelled during the last tick crosses
// target. Both ends are shifted by origin into the target's screen space,
// so a fast laser cannot skip over a thin rectangle.
func (l Laser) Hits(origin core.Point, target core.Rect) bool {
	return target.IntersectsSegment(l.PreviousPosition.Add(origin), l.Position.Add(origin))
}

// Sprite returns the atlas cell for the laser's color.
func (l Laser) Sprite() Sprite {
	if l.Owner == OwnerEnemy {
		return SpriteEnemyLaser
	}
	return SpritePlayerLaser
}

// advanceLasers returns a new slice holding the lasers still alive after one tick.
func advanceLasers(lasers []Laser, t Tuning) []Laser {
	alive := make([]Laser, 0, len(lasers))
	for _, l := range lasers {
		if next, ok := l.Advance(t); ok {
			alive = append(alive, next)
		}
	}
	return alive
}
