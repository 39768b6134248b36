package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-defender/internal/core"
)

// KeyMap binds terminal keys to game keys. It doubles as the help
// footer's source of truth.
type KeyMap struct {
	Thrust key.Binding
	Brake  key.Binding
	Left   key.Binding
	Right  key.Binding
	Fire   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns arrow keys plus WASD.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		Brake: key.NewBinding(
			key.WithKeys("down", "s"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space", "fire"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.Left, k.Right, k.Fire},
		{k.Back, k.Quit},
	}
}

// Lookup translates a key message. quit is true for the hard quit keys;
// Escape is reported as core.KeyEscape so the game sees it as an event.
func (k KeyMap) Lookup(msg tea.KeyMsg) (gameKey core.Key, quit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyNone, true
	case key.Matches(msg, k.Thrust):
		return core.KeyUp, false
	case key.Matches(msg, k.Brake):
		return core.KeyDown, false
	case key.Matches(msg, k.Left):
		return core.KeyLeft, false
	case key.Matches(msg, k.Right):
		return core.KeyRight, false
	case key.Matches(msg, k.Fire):
		return core.KeySpace, false
	case key.Matches(msg, k.Back):
		return core.KeyEscape, false
	}
	return core.KeyNone, false
}
