// Package sim is the per-tick simulation core of Space Defender: ship
// kinematics, laser lifetimes with swept hit tests, and the enemy aim/fire
// heuristic. It has no knowledge of terminals, timing or persistence.
package sim

import "github.com/vovakirdan/space-defender/internal/core"

// Tuning collects every gameplay constant so a whole run can be replayed
// or tested with overridden values.
type Tuning struct {
	// Player kinematics. Speeds are world units per tick, Agility is degrees per tick.
	MaxSpeed     int
	Acceleration int
	Deceleration int
	Agility      float64

	// Lasers
	PlayerLaserSpeed int
	EnemyLaserSpeed  int
	LaserLifetime    int // ticks

	// Enemies. An enemy fires when Intn(FireRoll) > FireThreshold.
	EnemySpeed     int
	StoppingRadius float64
	FireRoll       int
	FireThreshold  int

	// Presentation: sprites are drawn Scale times their atlas size around
	// Origin, the screen position of world (0, 0).
	Scale  int
	Origin core.Point
}

// DefaultTuning returns the constants of the original 1920x1080 game.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:     20,
		Acceleration: 2,
		Deceleration: 1,
		Agility:      6,

		PlayerLaserSpeed: 60,
		EnemyLaserSpeed:  30,
		LaserLifetime:    40,

		EnemySpeed:     10,
		StoppingRadius: 200,
		FireRoll:       100,
		FireThreshold:  95,

		Scale:  4,
		Origin: core.Pt(960, 540),
	}
}

// LaserSpeed returns the per-tick speed of lasers fired by owner.
func (t Tuning) LaserSpeed(owner LaserOwner) int {
	if owner == OwnerEnemy {
		return t.EnemyLaserSpeed
	}
	return t.PlayerLaserSpeed
}

// Projector returns the screen-space projector for these settings.
func (t Tuning) Projector() Projector {
	return Projector{
		Origin: t.Origin,
		Width:  t.Scale * SpriteWidth,
		Height: t.Scale * SpriteHeight,
	}
}

// IntSource supplies uniform random integers in [0, n).
// *math/rand.Rand satisfies it.
type IntSource interface {
	Intn(n int) int
}
