//go:build linux

package valve

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealDriver drives relay outputs via the Linux GPIO character device,
// one requested line per zone. Polarity inversion for active-low relay
// boards happens here; everything above speaks logical on/off.
type RealDriver struct {
	chip      *gpiocdev.Chip
	lines     []*gpiocdev.Line
	activeLow []bool
}

// NewReal opens chipName and requests one output line per pin, driven to
// the off state immediately. pins and activeLow are indexed by zone and
// must be the same length.
func NewReal(chipName string, pins []int, activeLow []bool) (*RealDriver, error) {
	if len(pins) != len(activeLow) {
		return nil, fmt.Errorf("valve: %d pins but %d polarity flags", len(pins), len(activeLow))
	}

	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	d := &RealDriver{chip: chip, activeLow: activeLow}
	for zone, pin := range pins {
		line, err := chip.RequestLine(pin, gpiocdev.AsOutput(d.level(zone, false)))
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("request valve pin %d (zone %d): %w", pin, zone+1, err)
		}
		d.lines = append(d.lines, line)
	}
	return d, nil
}

// Set commands the actuator for zone.
func (d *RealDriver) Set(zone int, on bool) error {
	if zone < 0 || zone >= len(d.lines) {
		return fmt.Errorf("valve: zone %d out of range", zone)
	}
	if err := d.lines[zone].SetValue(d.level(zone, on)); err != nil {
		return fmt.Errorf("set valve zone %d: %w", zone, err)
	}
	return nil
}

// level translates a logical state to a line value for zone.
func (d *RealDriver) level(zone int, on bool) int {
	v := 0
	if on {
		v = 1
	}
	if d.activeLow[zone] {
		v = 1 - v
	}
	return v
}

// Close commands every valve off before releasing the lines, so a restart
// never leaves water running.
func (d *RealDriver) Close() error {
	var errs []error
	for zone, line := range d.lines {
		if err := line.SetValue(d.level(zone, false)); err != nil {
			errs = append(errs, fmt.Errorf("off valve zone %d: %w", zone, err))
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close valve zone %d: %w", zone, err))
		}
	}
	if d.chip != nil {
		if err := d.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
