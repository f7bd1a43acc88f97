package sensor

import (
	"encoding/binary"
	"fmt"
	"log"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// I2CHub reads raw moisture values from an analog sensor hub on the i2c
// bus: one 16-bit little-endian reading per zone, channel selected by
// writing register 0x20+channel.
type I2CHub struct {
	bus i2c.BusCloser
	dev i2c.Dev
}

const channelRegBase = 0x20

// NewI2CHub opens the named i2c bus and targets the hub at addr.
// busName follows i2creg conventions ("1", "/dev/i2c-1", or "" for the
// first available bus).
func NewI2CHub(busName string, addr uint16) (*I2CHub, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}
	return &I2CHub{
		bus: bus,
		dev: i2c.Dev{Bus: bus, Addr: addr},
	}, nil
}

// Read returns the raw reading for channel. Bus errors read as 0 so a
// dead sensor trips the rail fault detector instead of surfacing an error
// the decision core has no use for.
func (h *I2CHub) Read(channel int) int {
	write := []byte{byte(channelRegBase + channel)}
	read := make([]byte, 2)
	if err := h.dev.Tx(write, read); err != nil {
		log.Printf("sensor: i2c read channel %d: %v", channel, err)
		return 0
	}
	return int(binary.LittleEndian.Uint16(read))
}

// Close releases the i2c bus.
func (h *I2CHub) Close() error {
	return h.bus.Close()
}
