package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const frame = time.Second / 60

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	input := core.NewInputFrame()
	for i := range 300 {
		input.Clear()
		switch i {
		case 20:
			input.Set(core.ActionDown)
		case 40:
			input.Set(core.ActionRight)
		case 90:
			input.Set(core.ActionUp)
		}
		g1.Step(input, frame)
		g2.Step(input, frame)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ for the same seed and input:\n%+v\n%+v", s1, s2)
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultSnakeConfig())
	if g.ID() != "snake" {
		t.Errorf("ID() = %q, expected snake", g.ID())
	}
	if g.Title() != "Snake" {
		t.Errorf("Title() = %q, expected Snake", g.Title())
	}
}

func TestStepMapsActionsToDirections(t *testing.T) {
	tests := []struct {
		action core.Action
		head   Cell
	}{
		{core.ActionUp, Cell{5, 6}},
		{core.ActionDown, Cell{5, 4}},
		{core.ActionRight, Cell{6, 5}},
		{core.ActionLeft, Cell{6, 5}}, // reversal from the initial heading is ignored
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			g := newTestGame(t, 1)
			in := core.NewInputFrame()
			in.Set(tc.action)

			res := g.Step(in, 150*time.Millisecond)
			if !res.Moved {
				t.Fatal("a full interval should move the snake")
			}
			if head := g.Session().View().Body[0]; head != tc.head {
				t.Errorf("head = %v, expected %v", head, tc.head)
			}
		})
	}
}

func TestStepReportsGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, 2)
	g.Session().snake.body = []Cell{{19, 5}}

	res := g.Step(core.NewInputFrame(), 150*time.Millisecond)
	if !res.Ended || !res.State.GameOver || res.State.Cause != "wall" {
		t.Fatalf("result = %+v, expected wall game over", res)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res = g.Step(in, frame)
	if !res.Restarted || res.State.GameOver || res.State.Score != 1 {
		t.Errorf("result = %+v, expected a fresh game", res)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 444)
	g.SetBest(7)
	g.Session().food = Cell{6, 5}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 1") || !strings.Contains(screen.Row(0), "Best: 7") {
		t.Errorf("HUD = %q, expected score and best", screen.Row(0))
	}

	board := g.boardRect(screen)
	if screen.Get(board.X, board.Y) != '┌' {
		t.Error("board border should be drawn")
	}

	col, row := g.grid.ToScreen(board, Cell{5, 5})
	head := screen.GetCell(col, row)
	if head.Rune != '█' || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected bright green block", head)
	}

	col, row = g.grid.ToScreen(board, Cell{6, 5})
	if screen.Get(col, row) != '<' || screen.Get(col+1, row) != '>' {
		t.Errorf("food should render as <> at (%d, %d), row = %q", col, row, screen.Row(row))
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, 5)
	g.Session().snake.body = []Cell{{0, 5}}
	g.Session().snake.direction = Left
	g.Step(core.NewInputFrame(), 150*time.Millisecond)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	for _, want := range []string{"GAME OVER", "Score: 1 (wall)", "Press SPACE to restart"} {
		if !strings.Contains(content, want) {
			t.Errorf("game over screen should contain %q", want)
		}
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 30, ScreenH: 10})

	if !g.TooSmall() {
		t.Fatal("a 30x10 screen cannot hold a 42x17 board")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small message should be shown")
	}

	g.Resize(80, 24)
	if g.TooSmall() {
		t.Error("80x24 should fit the default board")
	}
}

func TestResizeKeepsSimulation(t *testing.T) {
	g := newTestGame(t, 9)
	g.Step(core.NewInputFrame(), 150*time.Millisecond)
	before := g.Snapshot()

	g.Resize(120, 40)

	if after := g.Snapshot(); after != before {
		t.Errorf("resize changed the simulation: %+v -> %+v", before, after)
	}
}
