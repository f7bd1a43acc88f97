//go:build !linux

package valve

import "errors"

// RealDriver is not available on non-Linux platforms.
type RealDriver struct{}

// NewReal returns an error on non-Linux platforms.
func NewReal(chipName string, pins []int, activeLow []bool) (*RealDriver, error) {
	return nil, errors.New("valve: not supported on this platform (requires Linux)")
}

// Set is not implemented on non-Linux platforms.
func (d *RealDriver) Set(zone int, on bool) error {
	return errors.New("valve: not supported")
}

// Close is not implemented on non-Linux platforms.
func (d *RealDriver) Close() error {
	return nil
}
