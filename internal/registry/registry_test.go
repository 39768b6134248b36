package registry

import (
	"testing"

	"github.com/vovakirdan/space-defender/internal/core"
)

type stubGame struct {
	state core.GameState
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub Game" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Ticks++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func() Game { return &stubGame{} })
	t.Cleanup(func() { unregister("stub") })

	if !Exists("stub") {
		t.Fatal("Expected stub to be registered")
	}

	g, err := Create("stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub Game" {
		t.Errorf("Title() = %q", g.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub" {
			found = info.Title == "Stub Game"
		}
	}
	if !found {
		t.Error("List() should include stub with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub", func() Game { return &stubGame{} })
	t.Cleanup(func() { unregister("stub") })

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register("stub", func() Game { return &stubGame{} })
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("stub", func() Game { return &stubGame{} })
	t.Cleanup(func() { unregister("stub") })

	a, _ := Create("stub")
	b, _ := Create("stub")
	a.Step(core.NewInputFrame())

	if b.State().Ticks != 0 {
		t.Error("Instances should not share state")
	}
}
