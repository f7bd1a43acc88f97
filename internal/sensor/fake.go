package sensor

// Fake is a test double returning scripted readings per channel.
// Each Read consumes the next value for that channel; an exhausted
// channel repeats its last value. A channel with no script reads 0.
type Fake struct {
	// Samples holds the scripted readings, keyed by sensor channel.
	Samples map[int][]int

	// Closed tracks if Close was called.
	Closed bool

	index map[int]int
}

// NewFake creates a Fake with the given per-channel scripts.
func NewFake(samples map[int][]int) *Fake {
	return &Fake{Samples: samples, index: make(map[int]int)}
}

// Read returns the next scripted reading for channel.
func (f *Fake) Read(channel int) int {
	script := f.Samples[channel]
	if len(script) == 0 {
		return 0
	}
	i := f.index[channel]
	if i < len(script)-1 {
		f.index[channel] = i + 1
	}
	return script[i]
}

// Close marks the reader as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}

// Reset rewinds every channel's script.
func (f *Fake) Reset() {
	f.index = make(map[int]int)
	f.Closed = false
}
