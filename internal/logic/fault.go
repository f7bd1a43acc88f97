package logic

// FaultDetector counts consecutive near-rail readings for one zone.
// A reading at or below the min rail, or at or beyond the max rail,
// extends the matching run; a normal reading resets it. The detector only
// counts — the Zone latches the result, and only an explicit reset clears
// the latch.
type FaultDetector struct {
	nearMin int
	nearMax int
	limit   int

	minRun int
	maxRun int
}

// NewFaultDetector creates a detector for the given rails and run limit.
// A limit <= 0 disables detection.
func NewFaultDetector(nearMin, nearMax, limit int) FaultDetector {
	return FaultDetector{nearMin: nearMin, nearMax: nearMax, limit: limit}
}

// Observe feeds one raw reading and reports whether either rail run has
// reached the limit.
func (d *FaultDetector) Observe(raw int) bool {
	if raw <= d.nearMin {
		d.minRun++
	} else {
		d.minRun = 0
	}
	if raw >= d.nearMax {
		d.maxRun++
	} else {
		d.maxRun = 0
	}
	if d.limit <= 0 {
		return false
	}
	return d.minRun >= d.limit || d.maxRun >= d.limit
}

// Runs returns the current consecutive near-min and near-max counts.
func (d *FaultDetector) Runs() (nearMin, nearMax int) {
	return d.minRun, d.maxRun
}

// Reset clears both rail runs. Called on operator fault reset so a zone
// does not immediately re-latch off stale counts.
func (d *FaultDetector) Reset() {
	d.minRun = 0
	d.maxRun = 0
}
