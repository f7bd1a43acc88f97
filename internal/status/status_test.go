package status

import (
	"testing"

	"github.com/sweeney/soil-irrigator/internal/logic"
)

func snaps() []logic.ZoneSnapshot {
	return []logic.ZoneSnapshot{
		{Zone: 0, Name: "bed-a", Mode: logic.ModeOff, Raw: 3200, Percent: 0, DryReference: 3200, WetReference: 1400},
		{Zone: 1, Name: "bed-b", Mode: logic.ModeOn, Raw: 2300, Percent: 50, Watering: true, DryReference: 3100, WetReference: 1500,
			Counts: logic.EventCounts{ValveOn: 2, ValveOff: 1}},
	}
}

func TestFormatStatus(t *testing.T) {
	got := FormatStatus(snaps())
	want := "zone 1 (bed-a): raw=3200 moisture=0% watering=off fault=none\n" +
		"zone 2 (bed-b): raw=2300 moisture=50% watering=on fault=none"
	if got != want {
		t.Errorf("FormatStatus =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatStatusFaulted(t *testing.T) {
	s := snaps()
	s[0].Faulted = true
	got := FormatStatus(s[:1])
	want := "zone 1 (bed-a): raw=3200 moisture=0% watering=off fault=LATCHED"
	if got != want {
		t.Errorf("FormatStatus = %q, want %q", got, want)
	}
}

func TestFormatCalibration(t *testing.T) {
	got := FormatCalibration(snaps())
	want := "zone 1 (bed-a): dry=3200 wet=1400\n" +
		"zone 2 (bed-b): dry=3100 wet=1500"
	if got != want {
		t.Errorf("FormatCalibration = %q, want %q", got, want)
	}
}

func TestFormatHeartbeat(t *testing.T) {
	got := FormatHeartbeat(snaps()[1])
	want := "zone 2 (bed-b): mode=ON moisture=50% on=2 off=1 faults=0"
	if got != want {
		t.Errorf("FormatHeartbeat = %q, want %q", got, want)
	}
}

func TestFormatStatusEmpty(t *testing.T) {
	if got := FormatStatus(nil); got != "" {
		t.Errorf("FormatStatus(nil) = %q, want empty", got)
	}
}
