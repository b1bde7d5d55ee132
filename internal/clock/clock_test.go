package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := &RealClock{}

	before := time.Now()
	actual := clock.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("RealClock.Now() = %v, expected between %v and %v", actual, before, after)
	}
}

func TestFakeClock(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := NewFakeClock(fixed)

	t.Run("holds its time", func(t *testing.T) {
		first := clock.Now()
		second := clock.Now()
		if !first.Equal(fixed) || !second.Equal(fixed) {
			t.Errorf("FakeClock drifted: %v, %v, want %v", first, second, fixed)
		}
	})

	t.Run("Advance moves forward", func(t *testing.T) {
		clock.Advance(2 * time.Second)
		if want := fixed.Add(2 * time.Second); !clock.Now().Equal(want) {
			t.Errorf("Now() = %v, want %v", clock.Now(), want)
		}
	})

	t.Run("Set overrides", func(t *testing.T) {
		target := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		clock.Set(target)
		if !clock.Now().Equal(target) {
			t.Errorf("Now() = %v, want %v", clock.Now(), target)
		}
	})
}
