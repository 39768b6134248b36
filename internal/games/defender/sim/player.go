package sim

import "github.com/vovakirdan/space-defender/internal/core"

// Player is the player's ship.
type Player struct {
	Position core.Point
	Angle    float64 // degrees, [0, 360)
	Speed    int     // [0, MaxSpeed]
}

// Advance integrates one tick of speed, heading and position.
// Turning is half as fast while thrusting.
func (p Player) Advance(c Controls, t Tuning) Player {
	agility := t.Agility
	if c.Thrust {
		p.Speed = core.Clamp(p.Speed+t.Acceleration, 0, t.MaxSpeed)
		agility /= 2
	} else {
		p.Speed = core.Clamp(p.Speed-t.Deceleration, 0, t.MaxSpeed)
	}

	if c.RotateLeft {
		p.Angle -= agility
	}
	if c.RotateRight {
		p.Angle += agility
	}
	p.Angle = core.NormalizeDegrees(p.Angle)

	p.Position = core.Advance(p.Position, p.Angle, float64(p.Speed))
	return p
}

// Sprite returns the atlas cell for the ship's current state.
func (p Player) Sprite() Sprite {
	if p.Speed > 0 {
		return SpritePlayerMoving
	}
	return SpritePlayerIdle
}
