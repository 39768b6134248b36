package defender

import (
	"math/rand"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender/sim"
)

// Spawner places enemies on a ring around the player at a rate that
// quickens with difficulty.
type Spawner struct {
	cfg        config.DefenderSpawn
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	countdown  int
}

// NewSpawner creates a spawner whose first timed spawn is one full interval away.
func NewSpawner(cfg config.DefenderSpawn, difficulty *config.DifficultyManager, rng *rand.Rand) *Spawner {
	s := &Spawner{cfg: cfg, difficulty: difficulty, rng: rng}
	s.countdown = s.interval(0, 0)
	return s
}

// Initial returns the opening wave, capped at MaxEnemies.
func (s *Spawner) Initial(center core.Point) []sim.Enemy {
	n := min(s.cfg.Initial, s.cfg.MaxEnemies)
	enemies := make([]sim.Enemy, 0, max(n, 0))
	for range n {
		enemies = append(enemies, s.place(center))
	}
	return enemies
}

// Tick counts down one tick and, when the interval elapses and there is
// room, returns a new enemy on the ring around center.
func (s *Spawner) Tick(alive int, center core.Point, score, ticks int) (sim.Enemy, bool) {
	s.countdown--
	if s.countdown > 0 {
		return sim.Enemy{}, false
	}
	s.countdown = s.interval(score, ticks)

	if alive >= s.cfg.MaxEnemies {
		return sim.Enemy{}, false
	}
	return s.place(center), true
}

func (s *Spawner) interval(score, ticks int) int {
	return max(s.difficulty.Interval(s.cfg.Interval, s.cfg.MinInterval, score, ticks), 1)
}

// place picks a random bearing and puts an enemy Radius units from center.
func (s *Spawner) place(center core.Point) sim.Enemy {
	bearing := s.rng.Float64() * 360
	pos := core.Advance(center, bearing, float64(s.cfg.Radius))
	e := sim.NewEnemy(pos)
	e.Angle = core.NormalizeDegrees(bearing + 180)
	return e
}
