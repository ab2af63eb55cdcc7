package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model hosting one snake game.
type Model struct {
	game        *snake.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	keys        KeyMap
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	lastTick    time.Time
	best        int
	results     ResultsView
	showResults bool
	quitting    bool
}

// NewModel creates a model and starts a fresh round of game.
// store and logger may be nil.
func NewModel(game *snake.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	keys := DefaultKeyMap()
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       keys,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		results:    NewResultsView(keys, cfg.ScreenW, cfg.ScreenH),
	}

	if store != nil {
		if best, err := store.Best(); err != nil {
			logger.Warn("cannot read best score", "error", err)
		} else {
			m.best = best
		}
	}

	game.Reset(cfg)
	game.SetBest(m.best)
	m.gameState = game.State()

	logger.Info("round started", "seed", cfg.Seed, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	if m.showResults {
		switch action {
		case core.ActionResults, core.ActionBack:
			m.showResults = false
			return m, nil
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	switch {
	case action == core.ActionResults && m.gameState.GameOver:
		// Only reachable from the game over screen, so the snake never
		// moves unseen.
		m.results.Load(m.store)
		if err := m.results.Err(); err != nil {
			m.logger.Warn("cannot load results", "error", err)
		}
		m.showResults = true
	case action.IsDirection(), action == core.ActionRestart:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.results.SetSize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one host frame. The frame delta is the time since the
// previous tick; the first tick counts as one nominal frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Ended {
		m.recordResult()
	}
	if result.Restarted {
		m.logger.Debug("round restarted")
	}

	return m, tickCmd(m.config.TickRate)
}

// recordResult stores the finished round. Ended is reported exactly once
// per round, so each round is recorded once.
func (m *Model) recordResult() {
	snap := m.game.Snapshot()
	m.logger.Info("game over",
		"score", m.gameState.Score,
		"cause", m.gameState.Cause,
		"steps", snap.Ticks,
	)

	m.best = max(m.best, m.gameState.Score)
	m.game.SetBest(m.best)

	if m.store == nil {
		return
	}
	if _, err := m.store.RecordResult(storage.Result{
		Score: m.gameState.Score,
		Cause: m.gameState.Cause,
		Ticks: snap.Ticks,
	}); err != nil {
		m.logger.Warn("cannot record result", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".tui-snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showResults {
		return m.results.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game *snake.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
