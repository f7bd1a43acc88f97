// Package config loads the controller configuration from a JSON file.
// A missing file yields built-in defaults; a present file is taken as
// written, with suspicious values surfaced as warnings rather than
// rejected (see Validate).
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sweeney/soil-irrigator/internal/logic"
	"github.com/sweeney/soil-irrigator/internal/sensor"
)

// Config is the top-level structure read from the config file.
type Config struct {
	// PollMs is the control-loop iteration interval.
	PollMs int64 `json:"poll_ms"`

	// SettleMs is the delay between the readings of one median burst.
	SettleMs int64 `json:"settle_ms"`

	// HeartbeatMs is the summary log interval; 0 disables.
	HeartbeatMs int64 `json:"heartbeat_ms"`

	Window logic.Window       `json:"watering_window"`
	Zones  []logic.ZoneConfig `json:"zones"`
}

// Default returns a two-zone configuration matching a capacitive sensor
// on a 12-bit ADC: raw ~3200 in dry air, ~1400 in water.
func Default() Config {
	return Config{
		PollMs:      50,
		SettleMs:    10,
		HeartbeatMs: 15 * 60 * 1000,
		// Window disabled: the hour source is a placeholder until a real
		// calendar clock exists.
		Window: logic.Window{
			Morning: logic.HourRange{Start: 6, End: 9},
			Evening: logic.HourRange{Start: 18, End: 21},
		},
		Zones: []logic.ZoneConfig{
			DefaultZone("bed-a", 0, 17),
			DefaultZone("bed-b", 1, 27),
		},
	}
}

// DefaultZone returns the stock zone parameters for the given sensor
// channel and valve pin.
func DefaultZone(name string, channel, pin int) logic.ZoneConfig {
	return logic.ZoneConfig{
		Name:             name,
		DryReference:     3200,
		WetReference:     1400,
		OnThreshold:      35,
		OffThreshold:     45,
		MinOnTimeMs:      10_000,
		MaxOnTimeMs:      30_000,
		CooldownMs:       60_000,
		SampleIntervalMs: 2_000,
		MedianSamples:    5,
		FaultRunLimit:    3,
		NearMinRaw:       5,
		NearMaxRaw:       4090,
		SensorChannel:    channel,
		ValvePin:         pin,
		ValveActiveLow:   true,
	}
}

// Load reads path. A missing file yields Default(); any other failure is
// an error. Zero loop settings are filled from defaults so a minimal file
// only has to list zones.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Zones) == 0 {
		return Config{}, fmt.Errorf("config %s: no zones defined", path)
	}

	def := Default()
	if cfg.PollMs <= 0 {
		cfg.PollMs = def.PollMs
	}
	if cfg.SettleMs <= 0 {
		cfg.SettleMs = def.SettleMs
	}
	return cfg, nil
}

// Validate returns human-readable warnings for configurations that are
// legal but probably wrong. The controller still runs with them: a
// degenerate calibration pins moisture at 0%, which reads as bone-dry
// and waters to the max-on cutoff every cycle — bounded, visible in the
// log, and recoverable by recalibrating over the console.
func (c Config) Validate() []string {
	var warns []string
	for i, z := range c.Zones {
		tag := fmt.Sprintf("zone %d (%s)", i+1, z.Name)
		if z.OffThreshold <= z.OnThreshold {
			warns = append(warns, fmt.Sprintf("%s: off_threshold %d <= on_threshold %d: hysteresis is inverted, zone may never stop on moisture",
				tag, z.OffThreshold, z.OnThreshold))
		}
		if z.DryReference == z.WetReference {
			warns = append(warns, fmt.Sprintf("%s: degenerate calibration (dry == wet == %d): moisture pinned at 0%%, zone will water to the max-on cutoff every cycle",
				tag, z.DryReference))
		}
		if z.MedianSamples != sensor.ClampSampleCount(z.MedianSamples) {
			warns = append(warns, fmt.Sprintf("%s: median_samples %d adjusted to %d (odd, 3..%d)",
				tag, z.MedianSamples, sensor.ClampSampleCount(z.MedianSamples), sensor.MaxSamples))
		}
		if z.MaxOnTimeMs < z.MinOnTimeMs {
			warns = append(warns, fmt.Sprintf("%s: max_on_time_ms %d < min_on_time_ms %d: the max-on cutoff wins",
				tag, z.MaxOnTimeMs, z.MinOnTimeMs))
		}
		if z.FaultRunLimit <= 0 {
			warns = append(warns, fmt.Sprintf("%s: fault_run_limit %d disables sensor fault detection",
				tag, z.FaultRunLimit))
		}
	}
	return warns
}
