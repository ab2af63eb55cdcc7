package snake

import (
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Grid describes the playfield and converts between grid cells and
// continuous render space. It holds no state beyond its dimensions.
//
// Render space is centered on the grid: the origin is the middle of the
// playfield and each cell spans CellSize units, so the center of cell
// (x, y) sits at ((x - W/2) * CellSize + CellSize/2, (y - H/2) * CellSize + CellSize/2).
type Grid struct {
	Width    int
	Height   int
	CellSize float64
}

// NewGrid returns a grid of the given size.
func NewGrid(width, height int, cellSize float64) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// GridToWorld returns the render-space center of cell c.
func (g Grid) GridToWorld(c Cell) (x, y float64) {
	x = (float64(c.X)-float64(g.Width)/2)*g.CellSize + g.CellSize/2
	y = (float64(c.Y)-float64(g.Height)/2)*g.CellSize + g.CellSize/2
	return x, y
}

// WorldToGrid returns the cell whose center is nearest to the render-space
// point (x, y). It inverts GridToWorld exactly for cell centers.
func (g Grid) WorldToGrid(x, y float64) Cell {
	cx := (x-g.CellSize/2)/g.CellSize + float64(g.Width)/2
	cy := (y-g.CellSize/2)/g.CellSize + float64(g.Height)/2
	return Cell{X: int(math.Round(cx)), Y: int(math.Round(cy))}
}

// Terminal cells are roughly twice as tall as they are wide, so each grid
// cell is drawn two columns wide.
const columnsPerCell = 2

// Board returns the screen rectangle (border included) that the grid
// occupies when drawn with its top-left border corner at (x, y).
func (g Grid) Board(x, y int) core.Rect {
	return core.NewRect(x, y, g.Width*columnsPerCell+2, g.Height+2)
}

// ToScreen projects cell c onto the screen for a board whose border starts
// at board.X, board.Y. Grid Y grows upward while screen rows grow downward,
// so rows are flipped. The returned column is the left half of the cell.
func (g Grid) ToScreen(board core.Rect, c Cell) (col, row int) {
	col = board.X + 1 + c.X*columnsPerCell
	row = board.Y + 1 + (g.Height - 1 - c.Y)
	return col, row
}
