package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadowflap/internal/core"
	"github.com/vovakirdan/shadowflap/internal/registry"
	"github.com/vovakirdan/shadowflap/internal/storage"
)

// Observer receives per-game signals from the model. metrics.Collector
// implements it; a nil Observer is replaced by a no-op.
type Observer interface {
	Event(gameID string, ev core.Event)
	GameFinished(gameID string, st core.GameState)
	Tick(d time.Duration)
}

type nopObserver struct{}

func (nopObserver) Event(string, core.Event)            {}
func (nopObserver) GameFinished(string, core.GameState) {}
func (nopObserver) Tick(time.Duration)                  {}

// ModelOptions carries the optional collaborators of a GameModel.
type ModelOptions struct {
	Player    string      // recorded with the score; empty for local play
	Observer  Observer    // may be nil
	Logger    *log.Logger // may be nil
	AllowBack bool        // B/Esc returns to the menu when paused or over
}

// GameModel is the Bubble Tea model for running a game.
//
// Keys arrive as discrete messages, so every key seen since the last tick
// counts as held for the next one. The previous tick's frame is kept to
// derive just-pressed edges before the frame reaches the game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       ModelOptions
	keyMapper  *KeyMapper
	pending    core.InputFrame
	prev       core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}

	game.Reset(cfg)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		pending:   core.NewInputFrame(),
		prev:      core.NewInputFrame(),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game scales its world to whatever the screen is.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.pending) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.pending.Has(core.ActionBack) && m.opts.AllowBack &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}

	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.pending.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.pending
	frame.MarkEdges(m.prev)

	start := time.Now()
	result := m.game.Step(frame)
	m.opts.Observer.Tick(time.Since(start))

	for _, ev := range result.Events {
		m.opts.Observer.Event(m.game.ID(), ev)
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.finish()
	}

	m.prev = frame
	m.pending = core.NewInputFrame()

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new session with a fresh seed.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.pending = core.NewInputFrame()
	m.prev = core.NewInputFrame()
}

// finish records a finished game once.
func (m *GameModel) finish() {
	m.scoreSaved = true
	m.opts.Observer.GameFinished(m.game.ID(), m.gameState)

	if m.opts.Logger != nil {
		m.opts.Logger.Info("game finished",
			"game", m.game.ID(),
			"player", m.opts.Player,
			"score", m.gameState.Score,
			"level", m.gameState.Level+1,
			"outcome", m.gameState.Outcome(),
		)
	}

	if m.store == nil || m.gameState.Score == 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:  m.game.ID(),
		Player:  m.opts.Player,
		Score:   m.gameState.Score,
		Level:   m.gameState.Level,
		Outcome: m.gameState.Outcome(),
	})
	if err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in its own Bubble Tea program.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) (bool, error) {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		backOnExit{model},
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if b, ok := final.(backOnExit); ok {
		return b.BackToMenu(), nil
	}
	return false, nil
}

// backOnExit ends a standalone program once the player goes back to the menu.
type backOnExit struct {
	GameModel
}

func (b backOnExit) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := b.GameModel.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		return b, cmd
	}
	if gm.BackToMenu() {
		return backOnExit{gm}, tea.Quit
	}
	return backOnExit{gm}, cmd
}
