package sim

import (
	"testing"

	"github.com/vovakirdan/space-defender/internal/core"
)

func TestLaserExpiresAfterLifetime(t *testing.T) {
	tun := DefaultTuning()

	for _, lifetime := range []int{1, 2, 5, tun.LaserLifetime} {
		l := NewLaser(core.Pt(0, 0), 0, OwnerPlayer, lifetime)
		ticks := 0
		for {
			next, ok := l.Advance(tun)
			ticks++
			if !ok {
				break
			}
			l = next
			if ticks > lifetime {
				t.Fatalf("lifetime %d: laser still alive after %d ticks", lifetime, ticks)
			}
		}
		if ticks != lifetime {
			t.Errorf("lifetime %d: removed after %d ticks", lifetime, ticks)
		}
	}
}

func TestLaserZeroLifetimeSaturates(t *testing.T) {
	l := NewLaser(core.Pt(0, 0), 0, OwnerEnemy, 0)
	next, ok := l.Advance(DefaultTuning())
	if ok {
		t.Error("Laser with no lifetime left should expire")
	}
	if next.Lifetime != 0 {
		t.Errorf("Lifetime should saturate at 0, got %d", next.Lifetime)
	}
}

func TestLaserSpeedByOwner(t *testing.T) {
	tun := DefaultTuning()

	green, _ := NewLaser(core.Pt(0, 0), 0, OwnerPlayer, 10).Advance(tun)
	red, _ := NewLaser(core.Pt(0, 0), 90, OwnerEnemy, 10).Advance(tun)

	if green.Position != core.Pt(tun.PlayerLaserSpeed, 0) {
		t.Errorf("Player laser at %v, expected (%d, 0)", green.Position, tun.PlayerLaserSpeed)
	}
	if red.Position != core.Pt(0, tun.EnemyLaserSpeed) {
		t.Errorf("Enemy laser at %v, expected (0, %d)", red.Position, tun.EnemyLaserSpeed)
	}
	if green.PreviousPosition != core.Pt(0, 0) {
		t.Errorf("PreviousPosition = %v, expected origin", green.PreviousPosition)
	}
	if green.Angle != 0 || red.Angle != 90 {
		t.Error("Advance must not change the firing angle")
	}
}

func TestLaserHitsThinTarget(t *testing.T) {
	tun := DefaultTuning()
	origin := core.Pt(960, 540)
	// Two cells wide, far thinner than one tick of travel
	wall := core.NewRect(origin.X+30, origin.Y-10, 2, 20)

	l, _ := NewLaser(core.Pt(0, 0), 0, OwnerPlayer, 10).Advance(tun)

	if wall.Contains(l.Position.X+origin.X, l.Position.Y+origin.Y) {
		t.Fatal("test setup: end point should be past the wall")
	}
	if !l.Hits(origin, wall) {
		t.Error("Swept test should catch a laser tunnelling through the wall")
	}

	beside := core.NewRect(origin.X+30, origin.Y+5, 2, 20)
	if l.Hits(origin, beside) {
		t.Error("Laser passing beside the wall should not hit")
	}

	next, _ := l.Advance(tun)
	if next.Hits(origin, wall) {
		t.Error("Laser already past the wall should not hit again")
	}
}

func TestLaserSprite(t *testing.T) {
	if NewLaser(core.Pt(0, 0), 0, OwnerPlayer, 1).Sprite() != SpritePlayerLaser {
		t.Error("Player laser should use the green sprite")
	}
	if NewLaser(core.Pt(0, 0), 0, OwnerEnemy, 1).Sprite() != SpriteEnemyLaser {
		t.Error("Enemy laser should use the red sprite")
	}
}
