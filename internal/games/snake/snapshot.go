package snake

// Snapshot captures the game state for determinism testing and replay checks.
type Snapshot struct {
	Frames   uint64
	Ticks    uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	State    Phase
	Cause    Cause
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	view := g.session.View()
	return Snapshot{
		Frames:   g.frames,
		Ticks:    view.Ticks,
		Score:    view.Score,
		SnakeLen: len(view.Body),
		HeadX:    view.Body[0].X,
		HeadY:    view.Body[0].Y,
		Dir:      view.Direction,
		FoodX:    view.Food.X,
		FoodY:    view.Food.Y,
		State:    view.Phase,
		Cause:    view.Cause,
	}
}
