// Package logic contains the pure decision core for irrigation zones.
// This package has NO external dependencies (no GPIO, i2c, OS, or time.Sleep).
// Time is always injected as monotonic milliseconds; 0 means "never".
package logic

// ZoneMode represents the logical state of a zone's watering state machine.
type ZoneMode string

const (
	ModeOff     ZoneMode = "OFF"
	ModeOn      ZoneMode = "ON"
	ModeFaulted ZoneMode = "FAULTED"
)

// EventType represents a zone transition event.
type EventType string

const (
	EventValveOn  EventType = "VALVE_ON"
	EventValveOff EventType = "VALVE_OFF"
	EventFault    EventType = "FAULT"
)

// Transition reasons carried on events for logging.
const (
	ReasonMoistureLow       = "moisture-low"
	ReasonMoistureRecovered = "moisture-recovered"
	ReasonMaxOnTime         = "max-on-time"
	ReasonSensorFault       = "sensor-fault"
)

// Event represents a transition to be acted on by the control loop.
type Event struct {
	Zone    int // zero-based zone index
	Type    EventType
	Reason  string
	Raw     int
	Percent int
	AtMs    int64
}

// CalPoint names one of the two calibration references.
type CalPoint string

const (
	CalDry CalPoint = "DRY"
	CalWet CalPoint = "WET"
)

// ZoneConfig holds one zone's calibration, thresholds, and timing
// parameters. It is owned by its Zone and mutated only through
// SetCalibration; nothing is shared across zones.
type ZoneConfig struct {
	Name string `json:"name"`

	// Raw-unit calibration references. Wet is usually lower than dry for
	// capacitive sensors, but the mapping tolerates either ordering.
	DryReference int `json:"dry_reference"`
	WetReference int `json:"wet_reference"`

	// Hysteresis thresholds in percent. Watering starts below OnThreshold
	// and stops above OffThreshold; OffThreshold should be the larger.
	OnThreshold  int `json:"on_threshold"`
	OffThreshold int `json:"off_threshold"`

	MinOnTimeMs      int64 `json:"min_on_time_ms"`
	MaxOnTimeMs      int64 `json:"max_on_time_ms"`
	CooldownMs       int64 `json:"cooldown_ms"`
	SampleIntervalMs int64 `json:"sample_interval_ms"`

	MedianSamples int `json:"median_samples"`

	// Rail fault detection: this many consecutive readings at or beyond a
	// rail latches the zone faulted.
	FaultRunLimit int `json:"fault_run_limit"`
	NearMinRaw    int `json:"near_min_raw"`
	NearMaxRaw    int `json:"near_max_raw"`

	// Hardware mapping, consumed by the ports rather than by this package.
	SensorChannel  int  `json:"sensor_channel"`
	ValvePin       int  `json:"valve_pin"`
	ValveActiveLow bool `json:"valve_active_low"`
}

// ZoneState is the mutable per-zone state, exclusively owned by its Zone.
type ZoneState struct {
	Watering bool
	Faulted  bool

	// Monotonic millisecond timestamps; 0 = never.
	LastSampleAt      int64
	WateringStartedAt int64
	WateringEndedAt   int64

	// Most recent observations, exposed read-only for inspection.
	LastRaw     int
	LastPercent int

	Counts EventCounts
}

// EventCounts tracks the number of each event type since startup.
type EventCounts struct {
	ValveOn  int
	ValveOff int
	Faults   int
}

// ZoneSnapshot is a point-in-time copy of a zone's observable state.
// It is a value type, safe to hold after the zone has moved on.
type ZoneSnapshot struct {
	Zone         int // zero-based zone index
	Name         string
	Mode         ZoneMode
	Raw          int
	Percent      int
	Watering     bool
	Faulted      bool
	NearMinRun   int
	NearMaxRun   int
	DryReference int
	WetReference int
	Counts       EventCounts
}
