package sensor

import (
	"github.com/sweeney/soil-irrigator/internal/clock"
	"github.com/sweeney/soil-irrigator/internal/logic"
)

// MaxSamples bounds the sampling buffer regardless of configuration.
// Counts above it are clamped, not rejected.
const MaxSamples = 15

// Sampler takes a burst of readings with a settle delay between each and
// reduces them to the median, rejecting single-sample outliers and the
// high-frequency noise capacitive sensors produce.
//
// The settle delays go through Clock.SleepMs and block the whole control
// loop for their duration.
type Sampler struct {
	r        Reader
	clk      clock.Clock
	settleMs int64
}

// NewSampler creates a sampler over r with the given settle delay.
func NewSampler(r Reader, clk clock.Clock, settleMs int64) *Sampler {
	return &Sampler{r: r, clk: clk, settleMs: settleMs}
}

// Sample takes count readings from channel and returns their median.
// count is clamped via ClampSampleCount.
func (s *Sampler) Sample(channel, count int) int {
	count = ClampSampleCount(count)
	buf := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if i > 0 {
			s.clk.SleepMs(s.settleMs)
		}
		buf = append(buf, s.r.Read(channel))
	}
	return logic.Median(buf)
}

// ClampSampleCount forces n to an odd value of at least 3 and at most
// MaxSamples.
func ClampSampleCount(n int) int {
	if n < 3 {
		n = 3
	}
	if n > MaxSamples {
		n = MaxSamples
	}
	if n%2 == 0 {
		n++
	}
	return n
}
