// Package snake implements the grid snake simulation and its terminal
// presentation. The simulation (Session and its parts) is pure; Game adapts
// it to the platform's input frames and screen buffer.
package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2 // Score line plus separator

// Game adapts a Session to the platform: it turns input frames into
// simulation frames and draws the current View into a screen buffer.
type Game struct {
	cfg     config.SnakeConfig
	grid    Grid
	session *Session
	frames  uint64
	best    int

	screenW int
	screenH int
}

// New creates a Snake game using the given configuration.
func New(cfg config.SnakeConfig) *Game {
	return &Game{
		cfg:  cfg,
		grid: NewGrid(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a fresh session. The seed drives food placement.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.frames = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.session = NewSession(g.grid,
		WithStart(Cell{X: g.cfg.Start.X, Y: g.cfg.Start.Y}),
		WithInterval(g.cfg.Movement.Interval),
		WithSpawner(NewFoodSpawner(g.grid, cfg.Seed, g.cfg.Food.AvoidSnake)),
	)
}

// Resize updates the screen dimensions without touching the simulation.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// SetBest sets the best score shown in the HUD.
func (g *Game) SetBest(best int) {
	g.best = best
}

// Session exposes the simulation, mainly for tests and diagnostics.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one host frame that lasted dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.frames++

	frame := Frame{
		Delta:   dt,
		Restart: in.Has(core.ActionRestart),
	}
	if a, ok := in.Direction(); ok {
		frame.Direction = directionFor(a)
		frame.HasDirection = true
	}

	out := g.session.Step(frame)
	return core.StepResult{
		State:     g.State(),
		Moved:     out.Advanced,
		Ate:       out.Ate,
		Ended:     out.Ended,
		Restarted: out.Restarted,
	}
}

// directionFor maps a movement action to a heading.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return Up
	case core.ActionDown:
		return Down
	case core.ActionLeft:
		return Left
	default:
		return Right
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Phase() == PhaseGameOver,
		Cause:    g.session.Cause().String(),
	}
}

// TooSmall reports whether the board does not fit on the current screen.
func (g *Game) TooSmall() bool {
	board := g.grid.Board(0, 0)
	return g.screenW < board.W || g.screenH < board.H+hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	view := g.session.View()

	g.renderHUD(dst, view)

	if g.TooSmall() {
		board := g.grid.Board(0, 0)
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", board.W, board.H+hudHeight))
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, core.ColorGray)

	if view.HasFood {
		g.drawCell(dst, board, view.Food, "<>", core.ColorBrightRed)
	}
	// Tail first so the head stays visible when food sits under it
	for i := len(view.Body) - 1; i >= 0; i-- {
		if i == 0 {
			g.drawCell(dst, board, view.Body[i], "██", core.ColorBrightGreen)
		} else {
			g.drawCell(dst, board, view.Body[i], "▓▓", core.ColorGreen)
		}
	}

	if view.Phase == PhaseGameOver {
		g.renderOverlay(dst, "GAME OVER",
			fmt.Sprintf("Score: %d (%s)", view.Score, view.Cause),
			"Press SPACE to restart")
	}
}

// boardRect centers the board horizontally below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	b := g.grid.Board(0, 0)
	return g.grid.Board((dst.Width()-b.W)/2, hudHeight)
}

// drawCell paints a two-column glyph for c. Cells outside the grid are skipped.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, c Cell, glyph string, color core.Color) {
	if !g.grid.Contains(c) {
		return
	}
	col, row := g.grid.ToScreen(board, c)
	dst.DrawTextColored(col, row, glyph, color)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, view View) {
	best := max(g.best, view.Score)
	hud := fmt.Sprintf(" Snake | Score: %d  Best: %d", view.Score, best)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered box with one line of text per argument.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	box := core.CenteredRect(dst.Width(), dst.Height(), maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightRed
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
