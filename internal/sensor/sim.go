package sensor

// Sim generates a deterministic slow dry-out ramp with a little wiggle,
// for running the controller on a desk with no hardware. Each channel
// starts near the wet reference and drifts toward the dry reference, so a
// default configuration will eventually decide to water.
type Sim struct {
	dry int
	wet int
	n   map[int]int
}

// NewSim creates a simulated reader ramping between the given references.
func NewSim(dry, wet int) *Sim {
	return &Sim{dry: dry, wet: wet, n: make(map[int]int)}
}

// Read returns the next simulated raw reading for channel.
func (s *Sim) Read(channel int) int {
	n := s.n[channel]
	s.n[channel] = n + 1

	// Full wet-to-dry sweep over 1000 reads, plus a few counts of noise
	// for the median filter to chew on.
	span := s.dry - s.wet
	v := s.wet + span*n/1000
	v += (n%7 - 3) * 2
	if span >= 0 {
		if v > s.dry {
			v = s.dry
		}
		if v < s.wet {
			v = s.wet
		}
	} else {
		if v < s.dry {
			v = s.dry
		}
		if v > s.wet {
			v = s.wet
		}
	}
	return v
}

// Close is a no-op for the simulator.
func (s *Sim) Close() error {
	return nil
}
