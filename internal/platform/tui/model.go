package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/kiro-arcade/internal/core"
	"github.com/vovakirdan/kiro-arcade/internal/registry"
	"github.com/vovakirdan/kiro-arcade/internal/storage"
)

//go:generate go tool mockgen -destination=mocks/recorder.go -package=mocks . ScoreRecorder

// ScoreRecorder persists finished games. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(rec storage.ScoreRecord) (int64, error)
}

// Recorder adapts an optional store to a ScoreRecorder. A nil store yields a
// nil recorder, so games run without persistence.
func Recorder(store *storage.Store) ScoreRecorder {
	if store == nil {
		return nil
	}
	return store
}

// Session identifies who is playing. It is stored with every score.
type Session struct {
	ID     string
	Player string
}

// NewSession starts a session with a fresh random ID.
func NewSession(player string) Session {
	return Session{ID: uuid.NewString(), Player: player}
}

// ModelOptions configures a game Model.
type ModelOptions struct {
	Session  Session
	Logger   *log.Logger
	Renderer *lipgloss.Renderer

	// Key hold timing, see HoldTracker. Only games implementing
	// registry.Holder use it.
	RepeatDelay time.Duration
	HoldWindow  time.Duration
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	painter    *Painter
	recorder   ScoreRecorder
	logger     *log.Logger
	session    Session
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time
	standalone bool // Owns the program; leaving the game quits it
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// recorder may be nil.
func NewModel(game registry.Game, recorder ScoreRecorder, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Session.ID == "" {
		opts.Session = NewSession(opts.Session.Player)
	}

	var hold *HoldTracker
	if h, ok := game.(registry.Holder); ok {
		hold = NewHoldTracker(opts.RepeatDelay, opts.HoldWindow, h.HeldActions()...)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:    NewPainter(opts.Renderer),
		recorder:   recorder,
		logger:     logger.With("game", game.ID()),
		session:    opts.Session,
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       hold,
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	m.logger.Debug("game started", "session", m.session.ID)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		}

	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}

	case core.ActionPause:
		m.hold.Release()
	}

	m.inputFrame.Set(action)
	m.hold.Press(action, m.now())
	return m, nil
}

// handleResize processes window resize events.
// Games draw at whatever size the screen has, so play continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = at.UnixNano()
		m.config.Start = at
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.hold.Release()
		m.inputFrame.Clear()
		m.logger.Debug("game restarted")
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.At = at
	m.hold.Apply(&m.inputFrame, at)

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordScore()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		// The game restarted itself
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordScore saves the finished game. Failures are logged and play goes on.
func (m Model) recordScore() {
	st := m.gameState
	m.logger.Info("game over", "score", st.Score, "outcome", st.Outcome)

	if m.recorder == nil || (st.Score <= 0 && st.Outcome == "") {
		return
	}

	rec := storage.ScoreRecord{
		GameID:    m.game.ID(),
		Score:     st.Score,
		Outcome:   st.Outcome,
		Player:    m.session.Player,
		SessionID: m.session.ID,
	}
	if _, err := m.recorder.SaveScore(rec); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return m.painter.Render(m.screen)
}

// State returns the game state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game and blocks until the
// player quits or goes back. Returns whether the player asked to go back.
func Run(game registry.Game, recorder ScoreRecorder, cfg core.RuntimeConfig, opts ModelOptions) (back bool, err error) {
	model := NewModel(game, recorder, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer hover needs motion without a button held
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
