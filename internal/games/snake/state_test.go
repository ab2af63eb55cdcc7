package snake

import (
	"slices"
	"testing"
)

func TestNewStateInitialValues(t *testing.T) {
	s := NewState(Cell{X: 5, Y: 5})

	if !slices.Equal(s.Body(), []Cell{{5, 5}}) {
		t.Errorf("initial body = %v, expected [(5,5)]", s.Body())
	}
	if s.Direction() != Right {
		t.Errorf("initial direction = %v, expected right", s.Direction())
	}
	if s.Growing() {
		t.Error("snake should not start growing")
	}
}

func TestReversalGuard(t *testing.T) {
	tests := []struct {
		name      string
		current   Direction
		requested Direction
		want      Direction
		accepted  bool
	}{
		{"right to left is ignored", Right, Left, Right, false},
		{"right to up is accepted", Right, Up, Up, true},
		{"right to down is accepted", Right, Down, Down, true},
		{"right to right is a no-op", Right, Right, Right, true},
		{"up to down is ignored", Up, Down, Up, false},
		{"down to up is ignored", Down, Up, Down, false},
		{"left to right is ignored", Left, Right, Left, false},
		{"left to up is accepted", Left, Up, Up, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(Cell{X: 5, Y: 5})
			s.direction = tc.current

			accepted := s.SetDirection(tc.requested)
			if accepted != tc.accepted {
				t.Errorf("SetDirection(%v) accepted = %v, expected %v", tc.requested, accepted, tc.accepted)
			}
			if s.Direction() != tc.want {
				t.Errorf("direction = %v, expected %v", s.Direction(), tc.want)
			}
		})
	}
}

func TestAdvanceTranslatesWithoutGrowth(t *testing.T) {
	s := NewState(Cell{X: 5, Y: 5})
	s.body = []Cell{{5, 5}, {4, 5}, {3, 5}}

	s.Advance()

	want := []Cell{{6, 5}, {5, 5}, {4, 5}}
	if !slices.Equal(s.Body(), want) {
		t.Errorf("body after advance = %v, expected %v", s.Body(), want)
	}
}

func TestAdvanceGrowsOnceThenClears(t *testing.T) {
	s := NewState(Cell{X: 5, Y: 5})
	s.MarkGrowing()
	s.MarkGrowing() // idempotent

	s.Advance()
	if s.Len() != 2 {
		t.Fatalf("len after growing advance = %d, expected 2", s.Len())
	}
	if s.Growing() {
		t.Error("growing should be cleared after one advance")
	}

	s.Advance()
	if s.Len() != 2 {
		t.Errorf("len after plain advance = %d, expected 2", s.Len())
	}
	want := []Cell{{7, 5}, {6, 5}}
	if !slices.Equal(s.Body(), want) {
		t.Errorf("body = %v, expected %v", s.Body(), want)
	}
}

func TestAdvanceAllowsLeavingTheGrid(t *testing.T) {
	s := NewState(Cell{X: 0, Y: 0})
	s.SetDirection(Down)
	s.Advance()

	if s.Head() != (Cell{X: 0, Y: -1}) {
		t.Errorf("head = %v, expected (0,-1)", s.Head())
	}
}

func TestBodyReturnsCopy(t *testing.T) {
	s := NewState(Cell{X: 5, Y: 5})
	body := s.Body()
	body[0] = Cell{X: 99, Y: 99}

	if s.Head() != (Cell{X: 5, Y: 5}) {
		t.Error("mutating Body() result should not affect the snake")
	}
}

func TestStateReset(t *testing.T) {
	s := NewState(Cell{X: 5, Y: 5})
	s.SetDirection(Up)
	s.MarkGrowing()
	s.Advance()
	s.Advance()

	s.Reset()

	if !slices.Equal(s.Body(), []Cell{{5, 5}}) || s.Direction() != Right || s.Growing() {
		t.Errorf("after Reset: body=%v dir=%v growing=%v", s.Body(), s.Direction(), s.Growing())
	}
}

func TestDirectionHelpers(t *testing.T) {
	pairs := [][2]Direction{{Up, Down}, {Left, Right}}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%v and %v should be opposites", p[0], p[1])
		}
		if !p[0].IsOpposite(p[1]) {
			t.Errorf("IsOpposite(%v, %v) should be true", p[0], p[1])
		}
	}
	if Up.IsOpposite(Left) {
		t.Error("up and left are not opposite")
	}
	if (Cell{X: 1, Y: 2}).Add(Up) != (Cell{X: 1, Y: 3}) {
		t.Error("Up should increase Y")
	}
}
