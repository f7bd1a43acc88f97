// Package sensor provides analog moisture input with hardware abstraction.
// The real implementation reads an i2c analog sensor hub; the fake returns
// scripted readings for tests, and the sim generates a dry-out ramp for
// running without hardware.
package sensor

// Reader reads one raw analog sample for a zone's sensor channel.
//
// Read signals no errors: a failed or unreachable sensor reads as the low
// rail (0), which the fault detector latches after enough consecutive
// misses. A dead bus and a stuck-low sensor are deliberately the same
// failure.
type Reader interface {
	Read(channel int) int

	// Close releases the underlying bus or device.
	Close() error
}
