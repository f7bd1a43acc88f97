package clock

// Fake is a manual clock for tests. SleepMs advances time instead of
// blocking, so sampler settle delays are visible in test timestamps.
type Fake struct {
	ms int64

	// Sleeps records every SleepMs call, in order.
	Sleeps []int64
}

// NewFake creates a fake clock starting at the given millisecond.
func NewFake(startMs int64) *Fake {
	return &Fake{ms: startMs}
}

// NowMs returns the current fake time.
func (c *Fake) NowMs() int64 {
	return c.ms
}

// SleepMs advances the clock by ms and records the call.
func (c *Fake) SleepMs(ms int64) {
	if ms > 0 {
		c.ms += ms
	}
	c.Sleeps = append(c.Sleeps, ms)
}

// Advance moves the clock forward by ms without recording a sleep.
func (c *Fake) Advance(ms int64) {
	c.ms += ms
}
