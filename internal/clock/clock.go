// Package clock provides the controller's time source: monotonic
// milliseconds since process start, plus the settle sleep used between
// sensor samples. The fake implementation lets tests drive time by hand.
package clock

import "time"

// Clock is injected into everything that stamps time or waits.
type Clock interface {
	// NowMs returns monotonic milliseconds since the clock started.
	NowMs() int64

	// SleepMs blocks for the given number of milliseconds. This is a hard
	// block: the whole control loop waits, including other zones and
	// command processing. Accepted because the only caller is the sensor
	// sampler's short settle delay and soil changes slowly.
	SleepMs(ms int64)
}

// Monotonic is the real clock, anchored at creation time.
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a clock whose zero is now.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// NowMs returns monotonic milliseconds since the clock was created.
func (c *Monotonic) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// SleepMs blocks for ms milliseconds. Non-positive values return at once.
func (c *Monotonic) SleepMs(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
