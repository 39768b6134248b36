package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/registry"
	"github.com/vovakirdan/space-defender/internal/storage"
	"github.com/vovakirdan/space-defender/internal/telemetry"
)

// Options are the optional collaborators of a Model.
type Options struct {
	Store       *storage.Store      // nil disables score saving
	Recorder    *telemetry.Recorder // nil disables telemetry
	Logger      *log.Logger         // nil discards logs
	Player      string              // name stored with scores, "local" if empty
	HoldTimeout time.Duration       // 0 means DefaultHoldTimeout
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	keys     KeyMap
	help     help.Model
	holds    HoldTracker
	frame    core.InputFrame
	state    core.GameState
	started  time.Time
	session  storage.Session
	quitting bool
	saved    bool
}

// NewModel creates a model for game. The last terminal row is reserved for
// the key help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.HoldTimeout <= 0 {
		opts.HoldTimeout = DefaultHoldTimeout
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		holds:  NewHoldTracker(opts.HoldTimeout, cfg.TickRate),
		frame:  core.NewInputFrame(),
	}
}

func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init resets the game and starts the tick loop. Reset runs here so that
// a game built by a factory is ready by the first tick.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("game started",
		"game", m.game.ID(),
		"player", m.opts.Player,
		"seed", m.config.Seed,
		"fps", m.config.TickRate,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues events for the next tick. Nothing is simulated here.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, quit := m.keys.Lookup(msg)
	if quit {
		m.frame.Push(core.QuitEvent())
		return m, nil
	}
	if k == core.KeyNone {
		if msg.String() == "?" {
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil
	}

	m.holds.Press(k, &m.frame)
	return m, nil
}

// handleTick checks for quit, then advances the game exactly one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.started.IsZero() {
		m.started = time.Now()
	}

	m.holds.Expire(&m.frame)

	if m.frame.WantsQuit() {
		return m.finish()
	}

	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()

	if src, ok := m.game.(telemetry.Source); ok && m.opts.Recorder != nil {
		if err := m.opts.Recorder.Record(src.TickRecord()); err != nil {
			m.opts.Logger.Warn("telemetry disabled", "error", err)
			m.opts.Recorder = nil
		}
	}

	if m.state.Quit {
		return m.finish()
	}
	return m, tickCmd(m.config.TickRate)
}

// finish saves the run once and stops the program.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.saved {
		return m, tea.Quit
	}
	m.saved = true
	m.state = m.game.State()
	m.session = m.summary()

	m.opts.Logger.Info("game finished",
		"game", m.session.GameID,
		"player", m.session.Player,
		"score", m.session.Score,
		"ticks", m.session.Ticks,
		"duration", m.session.Duration.Round(time.Millisecond),
	)

	if m.opts.Store == nil {
		return m, tea.Quit
	}
	if m.state.Score > 0 {
		if _, err := m.opts.Store.SaveScore(m.session.GameID, m.session.Player, m.session.Score); err != nil {
			m.opts.Logger.Warn("could not save score", "error", err)
		}
	}
	if m.state.Ticks > 0 {
		if _, err := m.opts.Store.SaveSession(m.session); err != nil {
			m.opts.Logger.Warn("could not save session", "error", err)
		}
	}
	return m, tea.Quit
}

func (m Model) summary() storage.Session {
	sess := storage.Session{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.state.Score,
		Ticks:  m.state.Ticks,
	}
	if !m.started.IsZero() {
		sess.Duration = time.Since(m.started)
	}
	if rs, ok := m.game.(telemetry.Source); ok {
		rec := rs.TickRecord()
		sess.ShotsFired = rec.ShotsFired
		sess.HitsTaken = rec.HitsTaken
	}
	return sess
}

// Session returns the run summary once the model has quit.
func (m Model) Session() storage.Session {
	return m.session
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays game in the alternate screen until the player quits and
// returns the run summary.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (storage.Session, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return storage.Session{}, err
	}
	if m, ok := final.(Model); ok {
		return m.Session(), nil
	}
	return storage.Session{}, nil
}
