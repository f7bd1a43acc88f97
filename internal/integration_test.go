package internal

import (
	"strings"
	"testing"

	"github.com/sweeney/soil-irrigator/internal/clock"
	"github.com/sweeney/soil-irrigator/internal/console"
	"github.com/sweeney/soil-irrigator/internal/control"
	"github.com/sweeney/soil-irrigator/internal/logic"
	"github.com/sweeney/soil-irrigator/internal/sensor"
	"github.com/sweeney/soil-irrigator/internal/valve"
)

// scriptedCommands stands in for the console reader: tests queue lines
// and collect responses synchronously.
type scriptedCommands struct {
	pending   []string
	responses []string
}

func (s *scriptedCommands) TryRead() (string, bool) {
	if len(s.pending) == 0 {
		return "", false
	}
	line := s.pending[0]
	s.pending = s.pending[1:]
	return line, true
}

func (s *scriptedCommands) Respond(resp string) {
	s.responses = append(s.responses, resp)
}

func (s *scriptedCommands) queue(line string) {
	s.pending = append(s.pending, line)
}

// TestIntegrationWateringCycle walks one zone through a full life cycle
// with fakes only: dry soil -> valve on -> moisture recovery -> valve off
// -> cooldown -> restart -> sensor fault -> latched off -> operator reset.
func TestIntegrationWateringCycle(t *testing.T) {
	cfg := logic.ZoneConfig{
		Name:             "z-test",
		DryReference:     3200,
		WetReference:     1400,
		OnThreshold:      35,
		OffThreshold:     45,
		MinOnTimeMs:      2_000,
		MaxOnTimeMs:      10_000,
		CooldownMs:       5_000,
		SampleIntervalMs: 1_000,
		MedianSamples:    3,
		FaultRunLimit:    3,
		NearMinRaw:       5,
		NearMaxRaw:       4090,
		SensorChannel:    0,
	}

	dry := []int{3200, 3200, 3200}
	wet := []int{2300, 2300, 2300} // 50%
	rail := []int{4095, 4095, 4095}

	var script []int
	script = append(script, dry...)  // tick 1: turn on
	script = append(script, wet...)  // tick 2: min-on blocks
	script = append(script, wet...)  // tick 3: turn off
	script = append(script, dry...)  // tick 4: cooldown blocks
	script = append(script, dry...)  // tick 5: restart
	script = append(script, rail...) // ticks 6-8: fault run
	script = append(script, rail...)
	script = append(script, rail...)

	reader := sensor.NewFake(map[int][]int{0: script})
	clk := clock.NewFake(1_000)
	valves := valve.NewFake()
	sampler := sensor.NewSampler(reader, clk, 10)

	zone := logic.NewZone(0, cfg, nil)
	loop := control.New([]*logic.Zone{zone}, sampler, valves, clk)

	cmds := &scriptedCommands{}
	loop.SetCommandSource(cmds, console.NewHandler(loop).Execute)

	// Tick 1: bone dry, never watered -> valve on.
	loop.Tick()
	if !valves.IsOn(0) {
		t.Fatal("tick 1: valve should be on")
	}

	// Tick 2: moisture recovered but min-on time has not elapsed.
	clk.Advance(1_000)
	loop.Tick()
	if !valves.IsOn(0) {
		t.Fatal("tick 2: min-on time must keep the valve on")
	}

	// Tick 3: past min-on, 50% > off threshold -> valve off.
	clk.Advance(1_000)
	loop.Tick()
	if valves.IsOn(0) {
		t.Fatal("tick 3: valve should be off")
	}

	// Tick 4: dry again, but cooldown blocks. A STATUS command queued for
	// this iteration is answered before the zone runs.
	cmds.queue("STATUS")
	clk.Advance(1_000)
	loop.Tick()
	if valves.IsOn(0) {
		t.Fatal("tick 4: cooldown must block the restart")
	}
	if len(cmds.responses) != 1 {
		t.Fatalf("expected 1 console response, got %d", len(cmds.responses))
	}
	if !strings.Contains(cmds.responses[0], "zone 1 (z-test)") ||
		!strings.Contains(cmds.responses[0], "watering=off") {
		t.Errorf("STATUS response = %q", cmds.responses[0])
	}

	// Tick 5: cooldown elapsed -> valve on again.
	clk.Advance(6_000)
	loop.Tick()
	if !valves.IsOn(0) {
		t.Fatal("tick 5: valve should be on after cooldown")
	}

	// Ticks 6-8: stuck-high sensor. Third consecutive rail median latches
	// the fault and forces the valve off mid-cycle.
	for i := 0; i < 2; i++ {
		clk.Advance(1_000)
		loop.Tick()
		if !valves.IsOn(0) {
			t.Fatalf("rail tick %d: valve should still be on", i+1)
		}
	}
	clk.Advance(1_000)
	loop.Tick()
	if valves.IsOn(0) {
		t.Fatal("tick 8: fault must force the valve off")
	}
	snap := loop.Snapshots()[0]
	if !snap.Faulted || snap.Mode != logic.ModeFaulted {
		t.Fatalf("zone not faulted: %+v", snap)
	}

	// Operator reset over the console clears the latch.
	cmds.queue("RESET Z 1")
	clk.Advance(1_000)
	loop.Tick()
	if got := cmds.responses[len(cmds.responses)-1]; got != "zone 1 fault cleared" {
		t.Errorf("RESET response = %q", got)
	}
	if loop.Snapshots()[0].Faulted {
		t.Error("fault latch survived the operator reset")
	}

	// Full command history: on, off, on, off.
	want := []valve.Command{{Zone: 0, On: true}, {Zone: 0, On: false}, {Zone: 0, On: true}, {Zone: 0, On: false}}
	if len(valves.Commands) != len(want) {
		t.Fatalf("valve commands = %v, want %v", valves.Commands, want)
	}
	for i := range want {
		if valves.Commands[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, valves.Commands[i], want[i])
		}
	}
}

// TestIntegrationZonesRunIndependently checks the round-robin dispatch:
// zones sample on their own intervals, in ascending index order.
func TestIntegrationZonesRunIndependently(t *testing.T) {
	mk := func(channel int, intervalMs int64) logic.ZoneConfig {
		return logic.ZoneConfig{
			Name:             "z",
			DryReference:     3200,
			WetReference:     1400,
			OnThreshold:      35,
			OffThreshold:     45,
			MinOnTimeMs:      1_000,
			MaxOnTimeMs:      60_000,
			CooldownMs:       1_000,
			SampleIntervalMs: intervalMs,
			MedianSamples:    3,
			FaultRunLimit:    3,
			NearMinRaw:       5,
			NearMaxRaw:       4090,
			SensorChannel:    channel,
		}
	}

	// Zone 0 samples every second, zone 1 every three seconds. Both dry.
	// Zone 1's script drops to 1000 after the first burst so a premature
	// second sample is visible in its snapshot.
	reader := sensor.NewFake(map[int][]int{
		0: {3200},
		1: {3200, 3200, 3200, 1000},
	})
	clk := clock.NewFake(1_000)
	valves := valve.NewFake()
	sampler := sensor.NewSampler(reader, clk, 0)

	zones := []*logic.Zone{
		logic.NewZone(0, mk(0, 1_000), nil),
		logic.NewZone(1, mk(1, 3_000), nil),
	}
	loop := control.New(zones, sampler, valves, clk)

	loop.Tick() // both zones due on first pass
	if !valves.IsOn(0) || !valves.IsOn(1) {
		t.Fatal("both zones should water on the first pass")
	}
	if len(valves.Commands) != 2 || valves.Commands[0].Zone != 0 || valves.Commands[1].Zone != 1 {
		t.Fatalf("zones not dispatched in index order: %v", valves.Commands)
	}

	// One second later only zone 0 is due; zone 1 must not have been
	// sampled again (its script would read 1000 on a premature sample).
	clk.Advance(1_000)
	loop.Tick()
	if got := loop.Snapshots()[1].Raw; got != 3200 {
		t.Errorf("zone 1 raw = %d, want 3200 (sampled before its interval elapsed)", got)
	}

	// Two more seconds on, zone 1 is due again and picks up the new value.
	clk.Advance(2_000)
	loop.Tick()
	if got := loop.Snapshots()[1].Raw; got != 1000 {
		t.Errorf("zone 1 raw = %d, want 1000 after its interval", got)
	}
}
