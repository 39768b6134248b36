package defender

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender/sim"
	"github.com/vovakirdan/space-defender/internal/registry"
)

func newTestGame(t *testing.T, mutate func(*config.DefenderConfig)) *Game {
	t.Helper()
	dc := config.DefaultDefenderConfig()
	if mutate != nil {
		mutate(&dc)
	}
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 12345}, dc)
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatal("defender should register itself")
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Space Defender" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestResetSpawnsInitialWave(t *testing.T) {
	g := newTestGame(t, nil)
	w := g.World()

	if len(w.Enemies) != 3 {
		t.Fatalf("Expected 3 initial enemies, got %d", len(w.Enemies))
	}
	if w.Player != (sim.Player{}) {
		t.Errorf("Player should start at rest at the origin, got %+v", w.Player)
	}
	for _, e := range w.Enemies {
		d := core.Distance(e.Position, core.Point{})
		if d < 895 || d > 905 {
			t.Errorf("Enemy %v should sit on the 900 ring, distance %.1f", e.Position, d)
		}
	}
}

func TestTuningFromConfig(t *testing.T) {
	tu := TuningFromConfig(config.DefaultDefenderConfig())
	want := sim.DefaultTuning()
	if tu != want {
		t.Errorf("Default config should map to default tuning\n got  %+v\n want %+v", tu, want)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, nil)
	g2 := newTestGame(t, nil)

	in := core.NewInputFrame()
	for i := range 400 {
		in.Clear()
		switch {
		case i == 10:
			in.Push(core.Press(core.KeyUp))
		case i == 60:
			in.Push(core.Press(core.KeyLeft))
		case i == 90:
			in.Push(core.Release(core.KeyLeft))
		case i%7 == 0:
			in.Push(core.Press(core.KeySpace))
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.TickRecord() != g2.TickRecord() {
		t.Errorf("Same seed and input should match:\n%+v\n%+v", g1.TickRecord(), g2.TickRecord())
	}
}

func TestQuitStopsSimulation(t *testing.T) {
	g := newTestGame(t, nil)
	in := core.NewInputFrame()
	in.Push(core.Press(core.KeyUp))
	in.Push(core.QuitEvent())

	res := g.Step(in)
	if !res.State.Quit {
		t.Fatal("Quit should be reported")
	}
	if g.World().Player.Speed != 0 || res.State.Ticks != 0 {
		t.Error("Nothing should move on the quitting tick")
	}

	g.Step(core.NewInputFrame())
	if g.State().Ticks != 0 {
		t.Error("A quit game should not advance")
	}
}

func TestEscapeQuits(t *testing.T) {
	g := newTestGame(t, nil)
	in := core.NewInputFrame()
	in.Push(core.Press(core.KeyEscape))
	if !g.Step(in).State.Quit {
		t.Error("Escape should quit")
	}
}

func TestHeldControlsPersist(t *testing.T) {
	g := newTestGame(t, func(dc *config.DefenderConfig) { dc.Spawn.Initial = 0 })

	in := core.NewInputFrame()
	in.Push(core.Press(core.KeyUp))
	g.Step(in)

	for range 5 {
		g.Step(core.NewInputFrame())
	}
	if got := g.World().Player.Speed; got != 12 {
		t.Errorf("Thrust held for 6 ticks should give speed 12, got %d", got)
	}

	in.Clear()
	in.Push(core.Release(core.KeyUp))
	g.Step(in)
	if got := g.World().Player.Speed; got != 11 {
		t.Errorf("Released thrust should decelerate to 11, got %d", got)
	}
}

func TestScoreCountsKills(t *testing.T) {
	g := newTestGame(t, func(dc *config.DefenderConfig) {
		dc.Spawn.Initial = 0
		dc.Enemy.FireThreshold = dc.Enemy.FireRoll
	})
	// One enemy straight ahead of the ship, inside laser range.
	g.world.Enemies = []sim.Enemy{sim.NewEnemy(core.Pt(80, 0))}

	in := core.NewInputFrame()
	in.Push(core.Press(core.KeySpace))
	res := g.Step(in)

	if res.State.Score != 1 {
		t.Errorf("Score = %d, want 1", res.State.Score)
	}
	s := g.Stats()
	if s.ShotsFired != 1 || s.Kills != 1 || s.Accuracy() != 1 {
		t.Errorf("Stats = %+v", s)
	}
	if len(g.World().Enemies) != 0 || len(g.World().PlayerLasers) != 1 {
		t.Error("Enemy should be gone while its laser flies on")
	}
}

func TestStatsAdd(t *testing.T) {
	var s Stats
	s.Add(sim.Report{Kills: 1, PlayerShots: 2, EnemyShots: 3, PlayerHits: 4})
	s.Add(sim.Report{Kills: 1, PlayerShots: 2})
	want := Stats{Kills: 2, ShotsFired: 4, EnemyShots: 3, HitsTaken: 4}
	if s != want {
		t.Errorf("Stats = %+v, want %+v", s, want)
	}
	if (Stats{}).Accuracy() != 0 {
		t.Error("Accuracy without shots should be 0")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "SCORE 0") {
		t.Errorf("HUD missing score: %q", scr.Row(0))
	}
	// Player at rest faces +X, drawn as a right arrow at the playfield center.
	if got := scr.Get(40, 1+23/2); got != '→' {
		t.Errorf("Player glyph = %q, want '→'", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	scr := core.NewScreen(10, 4)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Too small") {
		t.Error("Tiny screens should show a notice")
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '→'},
		{90, '↓'},
		{180, '←'},
		{270, '↑'},
		{45, '↘'},
		{315, '↗'},
		{359, '→'},
	}
	for _, tt := range tests {
		if got := ShipGlyph(tt.heading); got != tt.want {
			t.Errorf("ShipGlyph(%v) = %q, want %q", tt.heading, got, tt.want)
		}
	}
}

func TestLaserGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '─'},
		{180, '─'},
		{45, '╲'},
		{90, '│'},
		{135, '╱'},
		{315, '╱'},
	}
	for _, tt := range tests {
		if got := LaserGlyph(tt.heading); got != tt.want {
			t.Errorf("LaserGlyph(%v) = %q, want %q", tt.heading, got, tt.want)
		}
	}
}

func TestViewportCell(t *testing.T) {
	v := newViewport(80, 20, core.Pt(1600, 1000), core.Pt(100, 100))

	x, y, ok := v.cell(core.Pt(100, 100))
	if !ok || x != 40 || y != hudRows+10 {
		t.Errorf("Center maps to (%d,%d,%v)", x, y, ok)
	}
	x, _, _ = v.cell(core.Pt(80, 100))
	if x != 39 {
		t.Errorf("20 units left should be one column left, got %d", x)
	}
	if _, _, ok := v.cell(core.Pt(2000, 100)); ok {
		t.Error("Far points should be off screen")
	}
}
