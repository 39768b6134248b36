// Package defender wires the Space Defender simulation into the arcade
// platform: it loads tuning from YAML, spawns enemy waves, keeps score and
// draws the world into a character screen.
package defender

import (
	"math/rand"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender/sim"
	"github.com/vovakirdan/space-defender/internal/registry"
	"github.com/vovakirdan/space-defender/internal/telemetry"
)

// ID is the registry and score-table key.
const ID = "defender"

// Stats accumulates the per-tick reports of a run.
type Stats struct {
	Kills       int
	ShotsFired  int
	EnemyShots  int
	HitsTaken   int
	Ticks       int
	PeakEnemies int
}

// Add folds one tick report into the totals.
func (s *Stats) Add(rep sim.Report) {
	s.Kills += rep.Kills
	s.ShotsFired += rep.PlayerShots
	s.EnemyShots += rep.EnemyShots
	s.HitsTaken += rep.PlayerHits
}

// Accuracy is kills per shot fired, 0 before the first shot.
func (s Stats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Kills) / float64(s.ShotsFired)
}

// Game implements registry.Game for Space Defender.
type Game struct {
	cfg        config.DefenderConfig
	tuning     sim.Tuning
	world      sim.World
	controls   sim.Controls
	rng        *rand.Rand
	spawner    *Spawner
	difficulty *config.DifficultyManager
	stats      Stats
	quit       bool

	screenW int
	screenH int
}

// Package-level settings applied on the next Reset, set from CLI flags.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom YAML path searched before the default locations.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects easy, normal, hard or fixed.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// New creates a game. Call Reset before stepping it.
func New() *Game {
	return &Game{cfg: config.DefaultDefenderConfig()}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Space Defender" }

// Reset loads configuration and starts a new run.
// A config file that fails to load falls back to the built-in defaults;
// the CLI validates the file before the game starts.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadDefender(configPath)
	if err != nil {
		loaded = config.DefaultDefenderConfig()
	}
	config.ApplyDefenderPreset(&loaded, difficultyPreset)
	g.ResetWith(cfg, loaded)
}

// ResetWith starts a new run with an explicit configuration.
func (g *Game) ResetWith(cfg core.RuntimeConfig, dc config.DefenderConfig) {
	g.cfg = dc
	g.tuning = TuningFromConfig(dc)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.difficulty = config.NewDifficultyManager(dc.Difficulty)
	g.spawner = NewSpawner(dc.Spawn, g.difficulty, g.rng)
	g.controls = sim.Controls{}
	g.stats = Stats{}
	g.quit = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.world = sim.World{
		Player:  sim.Player{},
		Enemies: g.spawner.Initial(core.Point{}),
	}
	g.stats.PeakEnemies = len(g.world.Enemies)
}

// TuningFromConfig maps YAML settings onto simulation constants. The
// world origin sits at the center of the arena.
func TuningFromConfig(dc config.DefenderConfig) sim.Tuning {
	return sim.Tuning{
		MaxSpeed:     dc.Player.MaxSpeed,
		Acceleration: dc.Player.Acceleration,
		Deceleration: dc.Player.Deceleration,
		Agility:      dc.Player.Agility,

		PlayerLaserSpeed: dc.Lasers.PlayerSpeed,
		EnemyLaserSpeed:  dc.Lasers.EnemySpeed,
		LaserLifetime:    dc.Lasers.Lifetime,

		EnemySpeed:     dc.Enemy.Speed,
		StoppingRadius: dc.Enemy.StoppingRadius,
		FireRoll:       dc.Enemy.FireRoll,
		FireThreshold:  dc.Enemy.FireThreshold,

		Scale:  dc.Arena.SpriteScale,
		Origin: core.Pt(dc.Arena.Width/2, dc.Arena.Height/2),
	}
}

// Step advances one tick. A quit request ends the run before anything moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.quit {
		return core.StepResult{State: g.State()}
	}

	intent := sim.ReadInput(g.controls, in.Events)
	if intent.Quit {
		g.quit = true
		return core.StepResult{State: g.State()}
	}
	g.controls = intent.Controls

	if e, ok := g.spawner.Tick(len(g.world.Enemies), g.world.Player.Position, g.stats.Kills, g.stats.Ticks); ok {
		g.world.Enemies = append(g.world.Enemies, e)
	}

	next, rep := g.world.Step(intent, g.tuning, g.rng)
	g.world = next
	g.stats.Add(rep)
	g.stats.Ticks++
	g.stats.PeakEnemies = max(g.stats.PeakEnemies, len(g.world.Enemies))

	return core.StepResult{State: g.State()}
}

// State returns score, ticks and the quit flag.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.stats.Kills,
		Ticks: g.stats.Ticks,
		Quit:  g.quit,
	}
}

// World returns the current simulation state.
func (g *Game) World() sim.World { return g.world }

// Stats returns the run totals so far.
func (g *Game) Stats() Stats { return g.stats }

// Controls returns the steering intent held since the last event.
func (g *Game) Controls() sim.Controls { return g.controls }

// Tuning returns the constants the current run uses.
func (g *Game) Tuning() sim.Tuning { return g.tuning }

// TickRecord describes the current tick for telemetry and determinism checks.
func (g *Game) TickRecord() telemetry.TickRecord {
	p := g.world.Player
	return telemetry.TickRecord{
		Tick:         g.stats.Ticks,
		PlayerX:      p.Position.X,
		PlayerY:      p.Position.Y,
		PlayerAngle:  p.Angle,
		PlayerSpeed:  p.Speed,
		PlayerLasers: len(g.world.PlayerLasers),
		EnemyLasers:  len(g.world.EnemyLasers),
		Enemies:      len(g.world.Enemies),
		Kills:        g.stats.Kills,
		ShotsFired:   g.stats.ShotsFired,
		HitsTaken:    g.stats.HitsTaken,
	}
}

var _ telemetry.Source = (*Game)(nil)
