// Package status formats zone snapshots for the operator console and the
// periodic heartbeat log lines.
package status

import (
	"fmt"
	"strings"

	"github.com/sweeney/soil-irrigator/internal/logic"
)

// FormatStatus renders one line per zone for the STATUS command:
//
//	zone 1 (bed-a): raw=3200 moisture=0% watering=off fault=none
func FormatStatus(snaps []logic.ZoneSnapshot) string {
	var b strings.Builder
	for i, s := range snaps {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "zone %d (%s): raw=%d moisture=%d%% watering=%s fault=%s",
			s.Zone+1, s.Name, s.Raw, s.Percent, onOff(s.Watering), faultString(s.Faulted))
	}
	return b.String()
}

// FormatCalibration renders one line per zone for the SHOWCAL command:
//
//	zone 1 (bed-a): dry=3200 wet=1400
func FormatCalibration(snaps []logic.ZoneSnapshot) string {
	var b strings.Builder
	for i, s := range snaps {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "zone %d (%s): dry=%d wet=%d", s.Zone+1, s.Name, s.DryReference, s.WetReference)
	}
	return b.String()
}

// FormatHeartbeat renders one zone's heartbeat summary:
//
//	zone 1 (bed-a): mode=OFF moisture=12% on=3 off=3 faults=0
func FormatHeartbeat(s logic.ZoneSnapshot) string {
	return fmt.Sprintf("zone %d (%s): mode=%s moisture=%d%% on=%d off=%d faults=%d",
		s.Zone+1, s.Name, s.Mode, s.Percent, s.Counts.ValveOn, s.Counts.ValveOff, s.Counts.Faults)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func faultString(b bool) string {
	if b {
		return "LATCHED"
	}
	return "none"
}
