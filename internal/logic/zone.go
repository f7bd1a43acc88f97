package logic

// Zone is the watering state machine for a single irrigation zone. It
// consumes de-noised readings and decides valve transitions under the
// timing guards: minimum on time, maximum on time, and cooldown.
//
// A Zone is not safe for concurrent use; the control loop owns it and the
// console mutates it only from the same goroutine.
type Zone struct {
	index int
	cfg   ZoneConfig
	state ZoneState
	rails FaultDetector
	gate  Gate
}

// NewZone creates a zone in the idle state. A nil gate permits watering
// at any time.
func NewZone(index int, cfg ZoneConfig, gate Gate) *Zone {
	if gate == nil {
		gate = Window{}
	}
	return &Zone{
		index: index,
		cfg:   cfg,
		rails: NewFaultDetector(cfg.NearMinRaw, cfg.NearMaxRaw, cfg.FaultRunLimit),
		gate:  gate,
	}
}

// Due reports whether the zone's sample interval has elapsed. A zone that
// has never sampled is always due.
func (z *Zone) Due(nowMs int64) bool {
	return z.state.LastSampleAt == 0 || nowMs-z.state.LastSampleAt >= z.cfg.SampleIntervalMs
}

// Step consumes one de-noised raw reading and advances the state machine,
// returning the transitions the control loop must act on.
//
// The fault check runs before everything else: a zone that latches closes
// its valve on the same tick and stays closed until an operator reset.
// While watering, the max-on cutoff is evaluated before (and instead of)
// the hysteresis-off rule; the on rule and the off rules are never both
// evaluated in one tick.
func (z *Zone) Step(raw int, nowMs int64) []Event {
	st := &z.state
	st.LastSampleAt = nowMs
	st.LastRaw = raw

	wasFaulted := st.Faulted
	if z.rails.Observe(raw) {
		st.Faulted = true
	}
	if st.Faulted {
		if st.Watering {
			st.Watering = false
			st.WateringEndedAt = nowMs
			st.Counts.ValveOff++
		}
		if wasFaulted {
			return nil
		}
		st.Counts.Faults++
		return []Event{z.event(EventFault, ReasonSensorFault, nowMs)}
	}

	st.LastPercent = Percent(raw, z.cfg.DryReference, z.cfg.WetReference)

	if st.Watering {
		elapsed := nowMs - st.WateringStartedAt
		if elapsed >= z.cfg.MaxOnTimeMs {
			return []Event{z.valveOff(ReasonMaxOnTime, nowMs)}
		}
		if elapsed >= z.cfg.MinOnTimeMs && st.LastPercent > z.cfg.OffThreshold {
			return []Event{z.valveOff(ReasonMoistureRecovered, nowMs)}
		}
		return nil
	}

	if st.LastPercent < z.cfg.OnThreshold && z.cooldownOver(nowMs) && z.gate.Allows(nowMs) {
		st.Watering = true
		st.WateringStartedAt = nowMs
		st.Counts.ValveOn++
		return []Event{z.event(EventValveOn, ReasonMoistureLow, nowMs)}
	}
	return nil
}

func (z *Zone) valveOff(reason string, nowMs int64) Event {
	z.state.Watering = false
	z.state.WateringEndedAt = nowMs
	z.state.Counts.ValveOff++
	return z.event(EventValveOff, reason, nowMs)
}

func (z *Zone) event(t EventType, reason string, nowMs int64) Event {
	return Event{
		Zone:    z.index,
		Type:    t,
		Reason:  reason,
		Raw:     z.state.LastRaw,
		Percent: z.state.LastPercent,
		AtMs:    nowMs,
	}
}

func (z *Zone) cooldownOver(nowMs int64) bool {
	if z.state.WateringEndedAt == 0 {
		return true
	}
	return nowMs-z.state.WateringEndedAt >= z.cfg.CooldownMs
}

// Mode returns the zone's current state machine mode.
func (z *Zone) Mode() ZoneMode {
	switch {
	case z.state.Faulted:
		return ModeFaulted
	case z.state.Watering:
		return ModeOn
	default:
		return ModeOff
	}
}

// Config returns a copy of the zone's configuration.
func (z *Zone) Config() ZoneConfig {
	return z.cfg
}

// SetCalibration updates one calibration reference. This is the only
// runtime mutation of ZoneConfig.
func (z *Zone) SetCalibration(point CalPoint, value int) {
	if point == CalWet {
		z.cfg.WetReference = value
		return
	}
	z.cfg.DryReference = value
}

// ResetFault clears the fault latch and both rail runs. This is the
// explicit operator reset; nothing clears a fault automatically.
func (z *Zone) ResetFault() {
	z.state.Faulted = false
	z.rails.Reset()
}

// Snapshot returns a point-in-time copy of the zone's observable state.
func (z *Zone) Snapshot() ZoneSnapshot {
	minRun, maxRun := z.rails.Runs()
	return ZoneSnapshot{
		Zone:         z.index,
		Name:         z.cfg.Name,
		Mode:         z.Mode(),
		Raw:          z.state.LastRaw,
		Percent:      z.state.LastPercent,
		Watering:     z.state.Watering,
		Faulted:      z.state.Faulted,
		NearMinRun:   minRun,
		NearMaxRun:   maxRun,
		DryReference: z.cfg.DryReference,
		WetReference: z.cfg.WetReference,
		Counts:       z.state.Counts,
	}
}
