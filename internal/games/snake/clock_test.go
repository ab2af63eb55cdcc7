package snake

import (
	"testing"
	"time"
)

func TestClockFiresAfterPeriod(t *testing.T) {
	c := NewClock(150 * time.Millisecond)

	if c.Tick(100 * time.Millisecond) {
		t.Error("should not fire before a full period")
	}
	if !c.Tick(50 * time.Millisecond) {
		t.Error("should fire once a full period has accumulated")
	}
	if c.Elapsed() != 0 {
		t.Errorf("elapsed = %s, expected 0 after an exact period", c.Elapsed())
	}
}

func TestClockNoCatchUpBurst(t *testing.T) {
	c := NewClock(150 * time.Millisecond)

	// A one-second hitch spans six periods but yields a single step
	if !c.Tick(time.Second) {
		t.Fatal("long frame should fire")
	}
	if c.Elapsed() != 100*time.Millisecond {
		t.Errorf("elapsed = %s, expected remainder 100ms", c.Elapsed())
	}
	if c.Tick(0) {
		t.Error("zero delta after a long frame must not fire again")
	}
	if !c.Tick(50 * time.Millisecond) {
		t.Error("remainder plus 50ms should complete the next period")
	}
}

func TestClockFrameRateIndependence(t *testing.T) {
	tests := []struct {
		name  string
		frame time.Duration
		total time.Duration
		fires int
	}{
		{"60fps for 1.5s", time.Second / 60, 1500 * time.Millisecond, 10},
		{"30fps for 1.5s", time.Second / 30, 1500 * time.Millisecond, 10},
		{"10ms frames for 1.5s", 10 * time.Millisecond, 1500 * time.Millisecond, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClock(150 * time.Millisecond)
			fires := 0
			for elapsed := time.Duration(0); elapsed+tc.frame <= tc.total; elapsed += tc.frame {
				if c.Tick(tc.frame) {
					fires++
				}
			}
			// Integer frame durations can lose a fraction of the last period
			if fires < tc.fires-1 || fires > tc.fires {
				t.Errorf("fired %d times, expected about %d", fires, tc.fires)
			}
		})
	}
}

func TestClockNegativeDeltaAndReset(t *testing.T) {
	c := NewClock(150 * time.Millisecond)

	if c.Tick(-time.Second) {
		t.Error("negative delta should never fire")
	}
	if c.Elapsed() != 0 {
		t.Errorf("negative delta should count as zero, elapsed = %s", c.Elapsed())
	}

	c.Tick(120 * time.Millisecond)
	c.Reset()
	if c.Tick(100 * time.Millisecond) {
		t.Error("Reset should discard accumulated time")
	}
}
