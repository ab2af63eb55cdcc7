package snake

import "fmt"

// Cell is an integer grid coordinate. X grows to the right, Y grows upward.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by one step in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit offset applied to the head on every advance.
type Direction struct {
	DX, DY int
}

// The four headings the snake can take.
var (
	Up    = Direction{DX: 0, DY: 1}
	Down  = Direction{DX: 0, DY: -1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether d points exactly against other.
func (d Direction) IsOpposite(other Direction) bool {
	return d.DX == -other.DX && d.DY == -other.DY
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}
