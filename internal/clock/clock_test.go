package clock

import (
	"math"
	"testing"
)

// stepSource replays a fixed list of counter values.
type stepSource struct {
	values []uint64
	freq   uint64
	i      int
}

func (s *stepSource) Counter() uint64 {
	v := s.values[s.i]
	if s.i < len(s.values)-1 {
		s.i++
	}
	return v
}

func (s *stepSource) Frequency() uint64 {
	return s.freq
}

func TestClockAdvance(t *testing.T) {
	src := &stepSource{values: []uint64{1000, 1500, 3500}, freq: 1000}
	c := New(src)

	if c.Current() != 1000 || c.DT() != 0 {
		t.Fatalf("after New: current=%d dt=%f, expected 1000 and 0", c.Current(), c.DT())
	}

	c.Advance()
	if c.Last() != 1000 || c.Current() != 1500 {
		t.Errorf("after first Advance: last=%d current=%d", c.Last(), c.Current())
	}
	if c.DT() != 0.5 {
		t.Errorf("DT() = %f, expected 0.5", c.DT())
	}

	c.Advance()
	if c.DT() != 2.0 {
		t.Errorf("DT() = %f, expected 2.0", c.DT())
	}
}

func TestClockRepeatedTimestamp(t *testing.T) {
	src := &stepSource{values: []uint64{42, 42}, freq: 1000}
	c := New(src)
	c.Advance()

	if c.DT() != 0 {
		t.Errorf("identical samples should give dt 0, got %f", c.DT())
	}
}

func TestClockBackwardsCounter(t *testing.T) {
	src := &stepSource{values: []uint64{math.MaxUint64 - 10, 5}, freq: 1000}
	c := New(src)
	c.Advance()

	if c.DT() != 0 {
		t.Errorf("backwards counter should give dt 0, got %f", c.DT())
	}
	if c.DT() < 0 {
		t.Error("dt must never be negative")
	}
}

func TestClockZeroFrequency(t *testing.T) {
	src := &stepSource{values: []uint64{10, 20}, freq: 0}
	c := New(src)
	c.Advance()

	if c.DT() != 0 || math.IsNaN(c.DT()) || math.IsInf(c.DT(), 0) {
		t.Errorf("zero frequency should give dt 0, got %f", c.DT())
	}
}

func TestMonotonicSourceNeverDecreases(t *testing.T) {
	c := New(nil)
	for i := 0; i < 100; i++ {
		c.Advance()
		if c.Current() < c.Last() {
			t.Fatalf("monotonic source went backwards: %d < %d", c.Current(), c.Last())
		}
		if c.DT() < 0 {
			t.Fatalf("negative dt %f", c.DT())
		}
	}
}
