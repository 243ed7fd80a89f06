// Package clock provides the engine's monotonic frame clock.
package clock

import "time"

// Source is a monotonic high-resolution counter.
type Source interface {
	// Counter returns the current tick count.
	Counter() uint64
	// Frequency returns ticks per second.
	Frequency() uint64
}

// Clock tracks the last two samples of a Source and the delta between them.
// Advance must be called exactly once per frame, before anything reads DT.
type Clock struct {
	source  Source
	last    uint64
	current uint64
	dt      float64
}

// New creates a clock and takes its first sample.
func New(src Source) *Clock {
	if src == nil {
		src = NewMonotonic()
	}
	return &Clock{
		source:  src,
		current: src.Counter(),
	}
}

// Advance shifts the current sample into last, samples the source again and
// recomputes DT in seconds. A zero frequency or a counter that moved backwards
// produces a DT of zero; callers treat that as a valid, degenerate frame.
func (c *Clock) Advance() {
	c.last = c.current
	c.current = c.source.Counter()

	freq := c.source.Frequency()
	if freq == 0 || c.current < c.last {
		c.dt = 0
		return
	}
	c.dt = float64(c.current-c.last) / float64(freq)
}

// DT returns the delta computed by the last Advance, in seconds.
func (c *Clock) DT() float64 {
	return c.dt
}

// Last returns the previous sample.
func (c *Clock) Last() uint64 {
	return c.last
}

// Current returns the most recent sample.
func (c *Clock) Current() uint64 {
	return c.current
}

// Monotonic reads Go's monotonic clock as nanoseconds since creation.
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a source anchored at the current instant.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Counter returns nanoseconds elapsed since the source was created.
func (m *Monotonic) Counter() uint64 {
	return uint64(time.Since(m.start))
}

// Frequency returns 1e9, one tick per nanosecond.
func (m *Monotonic) Frequency() uint64 {
	return uint64(time.Second)
}
