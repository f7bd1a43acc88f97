// Command soil-irrigator polls soil-moisture sensors per zone and drives
// the zone valves under hysteresis and safety timing guards. Operator
// commands (STATUS, SHOWCAL, CAL, RESET) are read line by line on stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/soil-irrigator/internal/clock"
	"github.com/sweeney/soil-irrigator/internal/config"
	"github.com/sweeney/soil-irrigator/internal/console"
	"github.com/sweeney/soil-irrigator/internal/control"
	"github.com/sweeney/soil-irrigator/internal/logic"
	"github.com/sweeney/soil-irrigator/internal/sensor"
	"github.com/sweeney/soil-irrigator/internal/valve"
)

func main() {
	configPath := flag.String("config", "irrigator.json", "Path to JSON config (missing file uses built-in defaults)")
	sim := flag.Bool("sim", false, "Use simulated sensors and valves (no hardware)")
	printStatus := flag.Bool("print-status", false, "Sample every zone once, print status, and exit")
	i2cBus := flag.String("i2c-bus", "1", "I2C bus name for the sensor hub")
	i2cAddr := flag.Int("i2c-addr", 0x20, "I2C address of the sensor hub")
	gpioChip := flag.String("gpiochip", "gpiochip0", "GPIO chip for valve outputs")

	flag.Parse()

	if err := run(*configPath, *sim, *printStatus, *i2cBus, uint16(*i2cAddr), *gpioChip); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(configPath string, sim, printStatus bool, i2cBus string, i2cAddr uint16, gpioChip string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	for _, w := range cfg.Validate() {
		log.Printf("config warning: %s", w)
	}

	clk := clock.NewMonotonic()

	reader, valves, err := openHardware(cfg, sim, i2cBus, i2cAddr, gpioChip)
	if err != nil {
		return err
	}
	defer valves.Close()
	defer reader.Close()

	sampler := sensor.NewSampler(reader, clk, cfg.SettleMs)

	if printStatus {
		return printStatusOnce(os.Stdout, cfg, sampler)
	}

	zones := make([]*logic.Zone, len(cfg.Zones))
	for i, zc := range cfg.Zones {
		zones[i] = logic.NewZone(i, zc, cfg.Window)
	}

	loop := control.New(zones, sampler, valves, clk)
	loop.SetHeartbeat(cfg.HeartbeatMs)

	cons := console.New(os.Stdin, os.Stdout)
	loop.SetCommandSource(cons, console.NewHandler(loop).Execute)

	log.Printf("started: zones=%d poll=%dms settle=%dms window=%v sim=%v config=%s",
		len(cfg.Zones), cfg.PollMs, cfg.SettleMs, cfg.Window.Enabled, sim, configPath)

	ticker := time.NewTicker(time.Duration(cfg.PollMs) * time.Millisecond)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case s := <-sigCh:
			// The deferred valve Close commands everything off.
			log.Printf("received %v, shutting down", s)
			return nil
		case <-ticker.C:
			loop.Tick()
		}
	}
}

// openHardware wires the sensor and valve ports, real or simulated.
func openHardware(cfg config.Config, sim bool, i2cBus string, i2cAddr uint16, gpioChip string) (sensor.Reader, valve.Driver, error) {
	if sim {
		z := cfg.Zones[0]
		return sensor.NewSim(z.DryReference, z.WetReference), valve.NewLog(), nil
	}

	reader, err := sensor.NewI2CHub(i2cBus, i2cAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("open sensor hub: %w", err)
	}

	pins := make([]int, len(cfg.Zones))
	activeLow := make([]bool, len(cfg.Zones))
	for i, z := range cfg.Zones {
		pins[i] = z.ValvePin
		activeLow[i] = z.ValveActiveLow
	}
	valves, err := valve.NewReal(gpioChip, pins, activeLow)
	if err != nil {
		reader.Close()
		return nil, nil, fmt.Errorf("open valve driver: %w", err)
	}
	return reader, valves, nil
}

// printStatusOnce samples every zone once and prints a status block.
// Pure inspection: no valve is ever commanded.
func printStatusOnce(w io.Writer, cfg config.Config, sampler *sensor.Sampler) error {
	for i, z := range cfg.Zones {
		raw := sampler.Sample(z.SensorChannel, z.MedianSamples)
		pct := logic.Percent(raw, z.DryReference, z.WetReference)
		fmt.Fprintf(w, "zone %d (%s): raw=%d moisture=%d%%\n", i+1, z.Name, raw, pct)
	}
	return nil
}
