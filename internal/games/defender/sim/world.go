package sim

import "github.com/vovakirdan/space-defender/internal/core"

// World is the full simulation state between two ticks.
type World struct {
	Player       Player
	PlayerLasers []Laser
	EnemyLasers  []Laser
	Enemies      []Enemy
}

// Report summarizes what happened during one tick.
type Report struct {
	Kills       int // enemies destroyed by player lasers
	PlayerShots int // lasers fired by the player
	EnemyShots  int // lasers fired by enemies
	PlayerHits  int // enemy lasers that crossed the player's ship
}

// Step runs one tick and returns the next world. The receiver's slices are
// never modified; every collection in the result is freshly allocated.
//
// Order within a tick: fire requests spawn lasers at the ship, the ship
// moves, all lasers age and move, enemy lasers crossing the ship are
// counted, then each enemy crossed by a player laser is destroyed while the
// rest aim, fire and move. Lasers only leave the world when their lifetime
// runs out.
func (w World) Step(in Input, t Tuning, rng IntSource) (World, Report) {
	var rep Report
	proj := t.Projector()

	playerLasers := make([]Laser, len(w.PlayerLasers), len(w.PlayerLasers)+in.Fire)
	copy(playerLasers, w.PlayerLasers)
	for range in.Fire {
		playerLasers = append(playerLasers, NewLaser(w.Player.Position, w.Player.Angle, OwnerPlayer, t.LaserLifetime))
	}
	rep.PlayerShots = in.Fire

	player := w.Player.Advance(in.Controls, t)

	playerLasers = advanceLasers(playerLasers, t)
	enemyLasers := advanceLasers(w.EnemyLasers, t)

	shipRect := proj.Dest(player.Position)
	rep.PlayerHits = countHits(enemyLasers, proj, shipRect)

	fire := func(l Laser) {
		enemyLasers = append(enemyLasers, l)
		rep.EnemyShots++
	}

	enemies := make([]Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if anyHits(playerLasers, proj, proj.Dest(e.Position)) {
			rep.Kills++
			continue
		}
		enemies = append(enemies, e.Advance(player.Position, t, rng, fire))
	}

	return World{
		Player:       player,
		PlayerLasers: playerLasers,
		EnemyLasers:  enemyLasers,
		Enemies:      enemies,
	}, rep
}

// anyHits reports whether any laser crosses target.
func anyHits(lasers []Laser, proj Projector, target core.Rect) bool {
	for _, l := range lasers {
		if l.Hits(proj.Origin, target) {
			return true
		}
	}
	return false
}

// countHits returns how many lasers cross target.
func countHits(lasers []Laser, proj Projector, target core.Rect) int {
	n := 0
	for _, l := range lasers {
		if l.Hits(proj.Origin, target) {
			n++
		}
	}
	return n
}
