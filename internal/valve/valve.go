// Package valve drives the zone actuators (pump/valve relays) with
// hardware abstraction. The real implementation uses the Linux GPIO
// character device; the fake records commands for tests.
package valve

// Driver commands one binary actuator per zone. Callers speak logical
// on/off; active-low relay boards are the driver's problem.
type Driver interface {
	// Set commands the actuator for the given zero-based zone.
	Set(zone int, on bool) error

	// Close releases hardware resources, commanding every valve off first.
	Close() error
}
