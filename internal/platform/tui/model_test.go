package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/storage"
	"github.com/vovakirdan/space-defender/internal/telemetry"
)

// recordingGame scores one point per tick and remembers every frame.
type recordingGame struct {
	frames [][]core.Event
	state  core.GameState
	resets int
}

func (g *recordingGame) ID() string                   { return "recording" }
func (g *recordingGame) Title() string                { return "Recording" }
func (g *recordingGame) Reset(cfg core.RuntimeConfig) { g.resets++; g.state = core.GameState{} }
func (g *recordingGame) State() core.GameState        { return g.state }
func (g *recordingGame) Render(dst *core.Screen)      { dst.DrawText(0, 0, "recording") }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Events)
	if in.WantsQuit() {
		g.state.Quit = true
		return core.StepResult{State: g.state}
	}
	g.state.Ticks++
	g.state.Score++
	return core.StepResult{State: g.state}
}

func (g *recordingGame) TickRecord() telemetry.TickRecord {
	return telemetry.TickRecord{Tick: g.state.Ticks, Kills: g.state.Score, ShotsFired: 2 * g.state.Score}
}

func newTestModel(g *recordingGame, opts Options) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 40, Seed: 1}
	m := NewModel(g, cfg, opts)
	m.Init()
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelDeliversEventsOnTick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if len(g.frames) != 0 {
		t.Fatal("Keys must not step the game")
	}

	m, cmd := send(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("Tick should schedule the next tick")
	}
	if len(g.frames) != 1 {
		t.Fatalf("Expected one step, got %d", len(g.frames))
	}
	want := []core.Event{core.Press(core.KeyUp), core.Press(core.KeySpace)}
	got := g.frames[0]
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Frame = %v, want %v", got, want)
	}

	send(t, m, TickMsg(time.Now()))
	if len(g.frames[1]) != 0 {
		t.Errorf("Frame should be cleared after each tick, got %v", g.frames[1])
	}
}

func TestModelQuitBeforeStep(t *testing.T) {
	g := &recordingGame{}
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m := newTestModel(g, Options{Store: store, Player: "tester"})
	for range 3 {
		m, _ = send(t, m, TickMsg(time.Now()))
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m, cmd := send(t, m, TickMsg(time.Now()))

	if len(g.frames) != 3 {
		t.Errorf("Quit tick must not step the game, got %d steps", len(g.frames))
	}
	if cmd == nil {
		t.Fatal("Expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected a quit message")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}

	sess := m.Session()
	if sess.Score != 3 || sess.Ticks != 3 || sess.ShotsFired != 6 || sess.Player != "tester" {
		t.Errorf("Session = %+v", sess)
	}

	scores, err := store.TopScores("recording", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 3 || scores[0].Player != "tester" {
		t.Errorf("Saved scores = %+v", scores)
	}
	runs, err := store.RecentSessions("recording", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected one saved session, got %d", len(runs))
	}
}

func TestModelEscapeQuits(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	_, cmd := send(t, m, TickMsg(time.Now()))

	if cmd == nil {
		t.Fatal("Escape should end the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected a quit message")
	}
}

func TestModelSynthesizesRelease(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, Options{HoldTimeout: 50 * time.Millisecond}) // 2 ticks

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 3 {
		m, _ = send(t, m, TickMsg(time.Now()))
	}

	if len(g.frames) != 3 {
		t.Fatalf("Expected 3 steps, got %d", len(g.frames))
	}
	if len(g.frames[0]) != 1 || g.frames[0][0] != core.Press(core.KeyLeft) {
		t.Errorf("Tick 1 = %v", g.frames[0])
	}
	if len(g.frames[1]) != 1 || g.frames[1][0] != core.Release(core.KeyLeft) {
		t.Errorf("Tick 2 should carry the synthesized release, got %v", g.frames[1])
	}
}

func TestModelRecordsTelemetry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticks.csv")
	rec, err := telemetry.NewRecorder(path, 1)
	if err != nil {
		t.Fatal(err)
	}

	g := &recordingGame{}
	m := newTestModel(g, Options{Recorder: rec})
	for range 5 {
		m, _ = send(t, m, TickMsg(time.Now()))
	}
	rec.Close()

	records, err := telemetry.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 || records[4].Tick != 5 {
		t.Errorf("Telemetry = %+v", records)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, Options{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("Resize should not reset the game, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("Screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "recording") {
		t.Error("View should contain the game's output")
	}
	if !strings.Contains(view, "fire") {
		t.Error("View should contain the help footer")
	}
}
