package snake

// State is the mutable snake: body segments, heading, and the pending-growth
// flag. Body index 0 is the head, the last element is the tail.
type State struct {
	body      []Cell
	direction Direction
	growing   bool
	start     Cell
}

// NewState creates a one-segment snake at start heading Right.
func NewState(start Cell) *State {
	s := &State{start: start}
	s.Reset()
	return s
}

// Reset restores the snake to its initial single segment heading Right.
func (s *State) Reset() {
	s.body = []Cell{s.start}
	s.direction = Right
	s.growing = false
}

// SetDirection changes the heading unless d reverses it. Reversing into the
// neck would always be an immediate self collision, so it is dropped.
func (s *State) SetDirection(d Direction) bool {
	if d.IsOpposite(s.direction) {
		return false
	}
	s.direction = d
	return true
}

// Advance moves the head one cell along the current heading. The tail is
// dropped unless the snake is growing, in which case the length increases by
// one and the growth flag is consumed. The new head may lie outside the grid.
func (s *State) Advance() {
	assertf(len(s.body) > 0, "advance on empty body")

	newHead := s.body[0].Add(s.direction)
	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead

	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// MarkGrowing makes the next Advance keep the tail.
func (s *State) MarkGrowing() {
	s.growing = true
}

// Head returns the head cell.
func (s *State) Head() Cell {
	assertf(len(s.body) > 0, "head of empty body")
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *State) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *State) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *State) Direction() Direction {
	return s.direction
}

// Growing reports whether the next Advance will keep the tail.
func (s *State) Growing() bool {
	return s.growing
}

// Occupies reports whether any segment is on c.
func (s *State) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}
