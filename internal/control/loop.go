// Package control runs the round-robin poll loop across zones.
package control

import (
	"fmt"
	"log"

	"github.com/sweeney/soil-irrigator/internal/clock"
	"github.com/sweeney/soil-irrigator/internal/logic"
	"github.com/sweeney/soil-irrigator/internal/sensor"
	"github.com/sweeney/soil-irrigator/internal/status"
	"github.com/sweeney/soil-irrigator/internal/valve"
)

// CommandSource is the non-blocking command feed (see internal/console).
type CommandSource interface {
	TryRead() (string, bool)
	Respond(string)
}

// Loop owns the zones and runs one scheduler pass per Tick: at most one
// pending console command, then every due zone in ascending index order.
// A zone whose sample interval has not elapsed is skipped that pass, not
// queued. Everything here runs on a single goroutine.
type Loop struct {
	zones   []*logic.Zone
	sampler *sensor.Sampler
	valves  valve.Driver
	clk     clock.Clock

	cmds CommandSource
	exec func(line string) string

	heartbeatMs   int64
	lastHeartbeat int64
}

// New creates a Loop over the given zones and ports.
func New(zones []*logic.Zone, sampler *sensor.Sampler, valves valve.Driver, clk clock.Clock) *Loop {
	return &Loop{zones: zones, sampler: sampler, valves: valves, clk: clk}
}

// SetCommandSource attaches the console. exec parses and executes one
// line, returning the response text (empty = no response).
func (l *Loop) SetCommandSource(src CommandSource, exec func(string) string) {
	l.cmds = src
	l.exec = exec
}

// SetHeartbeat enables a per-zone summary log line every ms milliseconds.
// Zero or negative disables it.
func (l *Loop) SetHeartbeat(ms int64) {
	l.heartbeatMs = ms
	l.lastHeartbeat = l.clk.NowMs()
}

// Tick runs one loop iteration.
func (l *Loop) Tick() {
	if l.cmds != nil && l.exec != nil {
		if line, ok := l.cmds.TryRead(); ok {
			if resp := l.exec(line); resp != "" {
				l.cmds.Respond(resp)
			}
		}
	}

	for _, z := range l.zones {
		if !z.Due(l.clk.NowMs()) {
			continue
		}
		cfg := z.Config()
		raw := l.sampler.Sample(cfg.SensorChannel, cfg.MedianSamples)
		// Sampling slept through its settle delays; stamp the step with
		// the post-settle time so the timing guards see real elapsed time.
		for _, ev := range z.Step(raw, l.clk.NowMs()) {
			l.apply(ev)
		}
	}

	l.heartbeat(l.clk.NowMs())
}

// apply acts on one zone transition. Valve failures are logged and
// tolerated; the decision core has already moved on.
func (l *Loop) apply(ev logic.Event) {
	log.Printf("event: zone=%d type=%s reason=%s raw=%d moisture=%d%%",
		ev.Zone+1, ev.Type, ev.Reason, ev.Raw, ev.Percent)
	switch ev.Type {
	case logic.EventValveOn:
		l.setValve(ev.Zone, true)
	case logic.EventValveOff, logic.EventFault:
		// A fault forces the actuator off on the same tick, whether or
		// not the zone was watering.
		l.setValve(ev.Zone, false)
	}
}

func (l *Loop) setValve(zone int, on bool) {
	if err := l.valves.Set(zone, on); err != nil {
		log.Printf("valve: set zone %d on=%v: %v", zone+1, on, err)
	}
}

func (l *Loop) heartbeat(now int64) {
	if l.heartbeatMs <= 0 {
		return
	}
	if now-l.lastHeartbeat < l.heartbeatMs {
		return
	}
	l.lastHeartbeat = now
	for _, z := range l.zones {
		log.Printf("heartbeat: %s", status.FormatHeartbeat(z.Snapshot()))
	}
}

// ZoneCount returns the number of configured zones.
func (l *Loop) ZoneCount() int {
	return len(l.zones)
}

// Snapshots returns a point-in-time copy of every zone's state, in index
// order.
func (l *Loop) Snapshots() []logic.ZoneSnapshot {
	snaps := make([]logic.ZoneSnapshot, len(l.zones))
	for i, z := range l.zones {
		snaps[i] = z.Snapshot()
	}
	return snaps
}

// SetCalibration updates one calibration reference on a zone.
func (l *Loop) SetCalibration(zone int, point logic.CalPoint, value int) error {
	if zone < 0 || zone >= len(l.zones) {
		return fmt.Errorf("zone %d out of range", zone+1)
	}
	l.zones[zone].SetCalibration(point, value)
	return nil
}

// ResetFault clears a zone's fault latch.
func (l *Loop) ResetFault(zone int) error {
	if zone < 0 || zone >= len(l.zones) {
		return fmt.Errorf("zone %d out of range", zone+1)
	}
	l.zones[zone].ResetFault()
	return nil
}
