package snake

import "math/rand/v2"

// Spawner chooses where the next food appears. body is the current snake,
// head first; implementations may ignore it.
type Spawner interface {
	Spawn(body []Cell) Cell
}

// FoodSpawner picks food cells uniformly at random over the grid.
//
// By default occupied cells are not excluded, so food can appear under the
// snake and stays there until the snake moves off it. With avoidSnake set
// only free cells are candidates; a full grid falls back to any cell.
type FoodSpawner struct {
	grid       Grid
	rng        *rand.Rand
	avoidSnake bool
}

// NewFoodSpawner returns a spawner seeded for reproducible placement.
func NewFoodSpawner(g Grid, seed int64, avoidSnake bool) *FoodSpawner {
	return &FoodSpawner{
		grid:       g,
		rng:        rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		avoidSnake: avoidSnake,
	}
}

// Spawn returns a cell inside the grid.
func (f *FoodSpawner) Spawn(body []Cell) Cell {
	if f.avoidSnake && len(body) > 0 {
		if c, ok := f.spawnFree(body); ok {
			return c
		}
	}
	return Cell{
		X: f.rng.IntN(f.grid.Width),
		Y: f.rng.IntN(f.grid.Height),
	}
}

// spawnFree picks uniformly among cells not covered by body.
func (f *FoodSpawner) spawnFree(body []Cell) (Cell, bool) {
	occupied := make(map[Cell]struct{}, len(body))
	for _, c := range body {
		if f.grid.Contains(c) {
			occupied[c] = struct{}{}
		}
	}
	free := f.grid.Area() - len(occupied)
	if free <= 0 {
		return Cell{}, false
	}

	n := f.rng.IntN(free)
	for y := range f.grid.Height {
		for x := range f.grid.Width {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; taken {
				continue
			}
			if n == 0 {
				return c, true
			}
			n--
		}
	}
	return Cell{}, false
}
