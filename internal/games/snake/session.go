package snake

import "time"

// Phase is the top-level game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records what ended a game.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return ""
	}
}

// Frame is the host's input for one frame: elapsed time, at most one
// direction request, and the restart signal.
type Frame struct {
	Delta        time.Duration
	Direction    Direction
	HasDirection bool
	Restart      bool
}

// Outcome reports what happened during one Step.
type Outcome struct {
	Advanced  bool  // The clock fired and the snake moved one cell
	Ate       bool  // The head reached the food
	Ended     bool  // The game went from Playing to GameOver
	Restarted bool  // A restart was processed
	Cause     Cause // Set when Ended
}

// View is the read-only picture of a session handed to renderers.
type View struct {
	Body      []Cell // Head first
	Food      Cell
	HasFood   bool
	Score     int
	Phase     Phase
	Cause     Cause
	Direction Direction
	Ticks     uint64 // Advances since the last (re)start
}

// Session owns the whole simulation: the snake, its movement clock, the
// food, and the Playing/GameOver state. It is not safe for concurrent use;
// one host loop drives it through Step.
type Session struct {
	grid    Grid
	start   Cell
	snake   *State
	clock   *Clock
	spawner Spawner

	food    Cell
	hasFood bool

	phase Phase
	cause Cause
	ticks uint64
}

// Option configures a Session.
type Option func(*Session)

// WithSpawner sets the food source.
func WithSpawner(sp Spawner) Option {
	return func(s *Session) {
		s.spawner = sp
	}
}

// WithInterval sets the time between snake steps.
func WithInterval(d time.Duration) Option {
	return func(s *Session) {
		s.clock = NewClock(d)
	}
}

// WithStart sets the cell the snake starts from on every (re)start.
func WithStart(c Cell) Option {
	return func(s *Session) {
		s.start = c
	}
}

// NewSession starts a game in the Playing phase with a one-segment snake at
// (5,5) heading Right and one food cell.
func NewSession(g Grid, opts ...Option) *Session {
	s := &Session{
		grid:  g,
		start: Cell{X: 5, Y: 5},
		clock: NewClock(DefaultInterval),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.spawner == nil {
		s.spawner = NewFoodSpawner(g, 0, false)
	}
	s.snake = NewState(s.start)
	s.spawnFood()
	return s
}

// Step runs one frame of the pipeline: direction change, clock-gated
// advance, collision checks, and food replenishment. In GameOver only the
// restart signal is honored.
func (s *Session) Step(f Frame) Outcome {
	if s.phase == PhaseGameOver {
		if f.Restart {
			s.Restart()
			return Outcome{Restarted: true}
		}
		return Outcome{}
	}

	var out Outcome

	if f.HasDirection {
		s.snake.SetDirection(f.Direction)
	}

	if s.clock.Tick(f.Delta) {
		s.snake.Advance()
		s.ticks++
		out.Advanced = true
	}

	// Termination takes precedence: food under the body does not feed a
	// snake that just bit itself.
	head := s.snake.Head()
	switch {
	case IsWallCollision(head, s.grid):
		s.end(CauseWall)
	case IsSelfCollision(s.snake.body):
		s.end(CauseSelf)
	}
	if s.phase == PhaseGameOver {
		out.Ended = true
		out.Cause = s.cause
		return out
	}

	if s.hasFood && IsFoodCollision(head, s.food) {
		s.snake.MarkGrowing()
		s.hasFood = false
		out.Ate = true
	}
	if !s.hasFood {
		s.spawnFood()
	}

	s.checkInvariants()
	return out
}

// Restart resets the snake and the clock, places one new food cell, and
// returns to Playing.
func (s *Session) Restart() {
	s.snake.Reset()
	s.clock.Reset()
	s.phase = PhasePlaying
	s.cause = CauseNone
	s.ticks = 0
	s.hasFood = false
	s.spawnFood()
}

func (s *Session) end(c Cause) {
	s.phase = PhaseGameOver
	s.cause = c
}

func (s *Session) spawnFood() {
	s.food = s.spawner.Spawn(s.snake.body)
	s.hasFood = true
}

func (s *Session) checkInvariants() {
	if !debugAssertions {
		return
	}
	assertf(s.snake.Len() >= 1, "empty body")
	assertf(s.hasFood, "no food while playing")
	seen := make(map[Cell]struct{}, s.snake.Len())
	for _, c := range s.snake.body {
		_, dup := seen[c]
		assertf(!dup, "segment %v occupied twice while playing", c)
		seen[c] = struct{}{}
	}
}

// Phase returns the current game state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Cause returns what ended the game, or CauseNone while playing.
func (s *Session) Cause() Cause {
	return s.cause
}

// Score is the snake's length.
func (s *Session) Score() int {
	return s.snake.Len()
}

// Grid returns the playfield geometry.
func (s *Session) Grid() Grid {
	return s.grid
}

// Food returns the current food cell and whether one exists.
func (s *Session) Food() (Cell, bool) {
	return s.food, s.hasFood
}

// View returns a copy of everything a renderer needs.
func (s *Session) View() View {
	return View{
		Body:      s.snake.Body(),
		Food:      s.food,
		HasFood:   s.hasFood,
		Score:     s.snake.Len(),
		Phase:     s.phase,
		Cause:     s.cause,
		Direction: s.snake.Direction(),
		Ticks:     s.ticks,
	}
}
